package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs a command with the given args and captures output.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := executeCommand("--help")
	require.NoError(t, err)
	assert.Contains(t, out, "serve")
	assert.Contains(t, out, "migrate")
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	envFlag := root.PersistentFlags().Lookup("env-file")
	require.NotNil(t, envFlag)
	assert.Equal(t, "", envFlag.DefValue)
}

func TestServeFlags(t *testing.T) {
	cmd := newServeCmd()
	require.NotNil(t, cmd.Flags().Lookup("addr"))
}

func TestCommandsRejectArgs(t *testing.T) {
	for _, name := range []string{"serve", "migrate"} {
		t.Run(name, func(t *testing.T) {
			_, err := executeCommand(name, "extra")
			assert.Error(t, err)
		})
	}
}

func TestServeRequiresAPIKey(t *testing.T) {
	t.Setenv("BLOG_API_KEY", "")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", filepath.Join(t.TempDir(), "unused.db"))

	_, err := executeCommand("serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BLOG_API_KEY")
}

func TestMigrate(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", filepath.Join(t.TempDir(), "data", "homebase.db"))

	out, err := executeCommand("migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema at version 1")

	out, err = executeCommand("migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema at version 1")
}

func TestMigrateUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	t.Setenv("DB_DSN", "whatever")

	_, err := executeCommand("migrate")
	assert.Error(t, err)
}

func TestMissingEnvFile(t *testing.T) {
	_, err := executeCommand("migrate", "--env-file", filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}
