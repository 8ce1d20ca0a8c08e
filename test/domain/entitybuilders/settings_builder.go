//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/verbump/internal/domain/entities"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	settings entities.Settings
}

// NewSettingsBuilder creates a new settings builder holding the defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		settings:    *entities.DefaultSettings(),
	}
}

// WithManifest sets the manifest path.
func (b *SettingsBuilder) WithManifest(manifest string) *SettingsBuilder {
	b.settings.Manifest = manifest
	return b
}

// WithChangelogFile sets the changelog path.
func (b *SettingsBuilder) WithChangelogFile(name string) *SettingsBuilder {
	b.settings.ChangelogFile = name
	return b
}

// WithUpdateChangelog enables or disables the changelog update.
func (b *SettingsBuilder) WithUpdateChangelog(enabled bool) *SettingsBuilder {
	b.settings.UpdateChangelog = enabled
	return b
}

// WithGenerateChangelog enables or disables commit-based changelog entries.
func (b *SettingsBuilder) WithGenerateChangelog(enabled bool) *SettingsBuilder {
	b.settings.GenerateChangelogFromCommits = enabled
	return b
}

// WithUpdateVersionReferences enables or disables the reference update.
func (b *SettingsBuilder) WithUpdateVersionReferences(enabled bool) *SettingsBuilder {
	b.settings.UpdateVersionReferences = enabled
	return b
}

// WithPush enables or disables pushing after tagging.
func (b *SettingsBuilder) WithPush(enabled bool) *SettingsBuilder {
	b.settings.Push = enabled
	return b
}

// WithFiles sets the file specifiers.
func (b *SettingsBuilder) WithFiles(files ...string) *SettingsBuilder {
	b.settings.Files = files
	return b
}

// WithPatterns sets the custom patterns.
func (b *SettingsBuilder) WithPatterns(patterns ...entities.PatternSpec) *SettingsBuilder {
	b.settings.Patterns = patterns
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := b.settings
	settings.Files = append([]string(nil), b.settings.Files...)
	settings.Patterns = append([]entities.PatternSpec(nil), b.settings.Patterns...)
	return &settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.settings = *entities.DefaultSettings()
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		settings:    *b.BuildSettings(),
	}
}
