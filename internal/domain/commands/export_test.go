package commands

import "time"

// SetBumpClock replaces the clock used to date changelog entries.
func SetBumpClock(cmd *BumpCommand, now func() time.Time) {
	cmd.now = now
}

// SetChangelogClock replaces the clock used to date changelog entries.
func SetChangelogClock(cmd *ChangelogCommand, now func() time.Time) {
	cmd.now = now
}

// LazyGit exports lazyGit for testing.
var LazyGit = lazyGit //nolint:gochecknoglobals // test export
