//go:build unit

package controllers_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/verbump/internal/domain/entities"
)

// newCommand builds a cobra command carrying the root persistent flags and the controller flags.
func newCommand(t *testing.T, controller entities.Controller, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := &cobra.Command{Use: controller.GetBind().Use, RunE: controller.Execute}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().StringP("dir", "C", t.TempDir(), "")
	cmd.Flags().Bool("dry-run", false, "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	controller.AddFlags(cmd)
	cmd.SetOut(out)
	cmd.SetErr(out)

	require.NoError(t, cmd.ParseFlags(args))
	return cmd, out
}
