//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/debbrush/internal/domain/commands"
	"github.com/rios0rios0/debbrush/internal/domain/entities"
	"github.com/rios0rios0/debbrush/internal/infrastructure/controllers"
	"github.com/rios0rios0/debbrush/test/domain/commanddoubles"
)

// newCommand builds a cobra command carrying the flags main would register
// and parses flags into it.
func newCommand(t *testing.T, controller entities.Controller, flags ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	//nolint:exhaustruct // test command
	cmd := &cobra.Command{Use: "test"}
	controllers.AddGlobalFlags(cmd)
	if flagged, ok := controller.(entities.FlaggedController); ok {
		flagged.AddFlags(cmd)
	}
	require.NoError(t, cmd.ParseFlags(flags))
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	return cmd, out
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "debbrush.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEnsureDebhelperController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should pass version, directory and dry-run to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubEnsureDebhelperCommand{}
		controller := controllers.NewEnsureDebhelperController(stub)
		config := writeConfig(t, "update-changelog: true\n")
		cmd, _ := newCommand(t, controller, "--dry-run", "--config", config)

		// when
		controller.Execute(cmd, []string{"12", "/pkg"})

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "12", stub.LastOpts.MinimumVersion)
		assert.Equal(t, "/pkg", stub.LastOpts.Dir)
		assert.True(t, stub.LastOpts.DryRun)
		require.NotNil(t, stub.LastOpts.Settings)
		assert.True(t, stub.LastOpts.Settings.UpdatesChangelog())
	})

	t.Run("should not run the command when the config cannot be loaded", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubEnsureDebhelperCommand{}
		controller := controllers.NewEnsureDebhelperController(stub)
		missing := filepath.Join(t.TempDir(), "missing.yaml")
		cmd, _ := newCommand(t, controller, "--config", missing)

		// when
		controller.Execute(cmd, []string{"12"})

		// then
		assert.Zero(t, stub.ExecuteCallCount)
	})
}

func TestCompatController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should default the release to the compat-release setting", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCompatCommand{ExecuteResult: &commands.CompatReport{
			Level: 13, HasLevel: true, Sequences: []string{"python3"}, Release: "bookworm", MaximumLevel: 13,
			HighestStable: 14,
		}}
		controller := controllers.NewCompatController(stub)
		config := writeConfig(t, "compat-release: bookworm\n")
		cmd, out := newCommand(t, controller, "--config", config)

		// when
		controller.Execute(cmd, []string{"/pkg"})

		// then
		assert.Equal(t, commands.CompatOptions{Dir: "/pkg", Release: "bookworm"}, stub.LastOpts)
		assert.Equal(t,
			"Compat level: 13\nSequences: python3\nMaximum compat level for bookworm: 13\n"+
				"Highest stable compat level: 14\n",
			out.String())
	})

	t.Run("should prefer the --release flag", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCompatCommand{ExecuteResult: &commands.CompatReport{Release: "sid"}}
		controller := controllers.NewCompatController(stub)
		cmd, out := newCommand(t, controller, "--release", "sid")

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, commands.CompatOptions{Dir: ".", Release: "sid"}, stub.LastOpts)
		assert.Contains(t, out.String(), "Compat level: none\n")
	})
}

func TestMaintainerController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should collect repeated uploaders", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubMaintainerCommand{}
		controller := controllers.NewMaintainerController(stub)
		cmd, _ := newCommand(t, controller, "--uploader", "A <a@example.com>", "--uploader", "B <b@example.com>")

		// when
		controller.Execute(cmd, []string{"Team <team@example.com>", "/pkg"})

		// then
		assert.Equal(t, "Team <team@example.com>", stub.LastOpts.Maintainer)
		assert.Equal(t, []string{"A <a@example.com>", "B <b@example.com>"}, stub.LastOpts.Uploaders)
		assert.True(t, stub.LastOpts.SetUploaders)
	})

	t.Run("should leave uploaders alone without flags", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubMaintainerCommand{}
		controller := controllers.NewMaintainerController(stub)
		cmd, _ := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"Team <team@example.com>", "/pkg"})

		// then
		assert.False(t, stub.LastOpts.SetUploaders)
	})
}

func TestVcsController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should take a URL-looking second argument as the URL", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubVcsCommand{ExecuteResult: &commands.VcsResult{Changed: true}}
		controller := controllers.NewVcsController(stub)
		cmd, _ := newCommand(t, controller, "--force")

		// when
		controller.Execute(cmd, []string{"Git", "https://salsa.debian.org/debian/foo.git", "/pkg"})

		// then
		assert.Equal(t, "Git", stub.LastOpts.Type)
		assert.Equal(t, "https://salsa.debian.org/debian/foo.git", stub.LastOpts.URL)
		assert.Equal(t, "/pkg", stub.LastOpts.Dir)
		assert.True(t, stub.LastOpts.Force)
	})

	t.Run("should print the URL of a lookup", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubVcsCommand{ExecuteResult: &commands.VcsResult{
			URLs: []commands.VcsURL{{Type: "Browser", URL: "https://salsa.debian.org/debian/foo"}},
		}}
		controller := controllers.NewVcsController(stub)
		cmd, out := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"Browser", "/pkg"})

		// then
		assert.Empty(t, stub.LastOpts.URL)
		assert.Equal(t, "/pkg", stub.LastOpts.Dir)
		assert.Equal(t, "https://salsa.debian.org/debian/foo\n", out.String())
	})

	t.Run("should take the directory as sole argument with --from-remote", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubVcsCommand{ExecuteResult: &commands.VcsResult{}}
		controller := controllers.NewVcsController(stub)
		cmd, _ := newCommand(t, controller, "--from-remote")

		// when
		controller.Execute(cmd, []string{"/pkg"})

		// then
		assert.True(t, stub.LastOpts.FromRemote)
		assert.Equal(t, "/pkg", stub.LastOpts.Dir)
		assert.Empty(t, stub.LastOpts.Type)
	})

	t.Run("should require a type without --from-remote", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubVcsCommand{}
		controller := controllers.NewVcsController(stub)
		cmd, _ := newCommand(t, controller)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Zero(t, stub.ExecuteCallCount)
	})
}

func TestDhArgumentController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should read the replacement and the directory of replace", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubDhArgumentCommand{ExecuteResult: 1}
		controller := controllers.NewDhArgumentController(stub)
		cmd, _ := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"replace", "--parallel", "--no-parallel", "/pkg"})

		// then
		assert.Equal(t, commands.ActionReplace, stub.LastOpts.Action)
		assert.Equal(t, "--parallel", stub.LastOpts.Argument)
		assert.Equal(t, "--no-parallel", stub.LastOpts.Replacement)
		assert.Equal(t, "/pkg", stub.LastOpts.Dir)
	})

	t.Run("should read the directory of drop", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubDhArgumentCommand{}
		controller := controllers.NewDhArgumentController(stub)
		cmd, _ := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"drop", "--parallel", "/pkg"})

		// then
		assert.Equal(t, commands.ActionDrop, stub.LastOpts.Action)
		assert.Equal(t, "/pkg", stub.LastOpts.Dir)
		assert.Empty(t, stub.LastOpts.Replacement)
	})
}

func TestDhWithController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should pass action and sequence to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubDhWithCommand{ExecuteErr: errors.New("boom")}
		controller := controllers.NewDhWithController(stub)
		cmd, _ := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"add", "python3"})

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, commands.ActionAdd, stub.LastOpts.Action)
		assert.Equal(t, "python3", stub.LastOpts.Value)
		assert.Equal(t, ".", stub.LastOpts.Dir)
	})
}

func TestPruneOverridesController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should print the number of pruned rules", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPruneOverridesCommand{ExecuteResult: 2}
		controller := controllers.NewPruneOverridesController(stub)
		cmd, out := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"/pkg"})

		// then
		assert.Equal(t, "/pkg", stub.LastOpts.Dir)
		assert.Equal(t, "2\n", out.String())
	})
}

func TestInfoController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should print the package summary", func(t *testing.T) {
		t.Parallel()

		// given
		binaries := []commands.BinaryInfo{
			{Name: "librust-foo-dev", Summary: "Foo things - Rust source code", Provides: []string{"librust-foo-1-dev"}},
			{Name: "foo"},
		}
		stub := &commanddoubles.StubInfoCommand{ExecuteResult: &commands.PackageInfo{
			Backend:     entities.BackendManifest,
			Path:        "/pkg/debian/debcargo.toml",
			Source:      "rust-foo",
			Binaries:    binaries,
			CompatLevel: 12,
			HasCompat:   true,
			Vcs:         []commands.VcsURL{{Type: "Git", URL: "https://example.com/foo.git"}},
		}}
		controller := controllers.NewInfoController(stub)
		cmd, out := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"/pkg"})

		// then
		assert.Equal(t, commands.InfoOptions{Dir: "/pkg"}, stub.LastOpts)
		assert.Equal(t, "Backend: manifest (/pkg/debian/debcargo.toml)\n"+
			"Source: rust-foo\n"+
			"Binaries:\n"+
			"  librust-foo-dev: Foo things - Rust source code (provides librust-foo-1-dev)\n"+
			"  foo\n"+
			"Compat level: 12\n"+
			"Sequences: \n"+
			"Vcs-Git: https://example.com/foo.git\n", out.String())
	})

	t.Run("should flag a CDBS build system", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubInfoCommand{ExecuteResult: &commands.PackageInfo{
			Backend:  entities.BackendStanza,
			Path:     "/pkg/debian/control",
			Source:   "foo",
			UsesCdbs: true,
		}}
		controller := controllers.NewInfoController(stub)
		cmd, out := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"/pkg"})

		// then
		assert.Equal(t, "Backend: stanza (/pkg/debian/control)\n"+
			"Source: foo\n"+
			"Binaries:\n"+
			"Compat level: none\n"+
			"Sequences: \n"+
			"Build system: cdbs\n", out.String())
	})
}
