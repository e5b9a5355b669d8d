package cli_test

import (
	"bytes"
	"testing"

	"github.com/rshade/leafco2/internal/cli"
	"github.com/rshade/leafco2/internal/config"
)

// setupCLITest isolates the config directory and global config for one test.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvOutputFormat, "")
	t.Setenv(config.EnvLeafType, "")
	t.Setenv(config.EnvLocale, "")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
