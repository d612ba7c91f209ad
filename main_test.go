package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sshmisc/util"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	output := &bytes.Buffer{}
	app.Writer = output
	app.ErrWriter = &bytes.Buffer{}
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"sshmisc"}, args...))
	return output.String(), err
}

func TestDirnameAndBasenameCommands(t *testing.T) {
	output, err := runApp(t, "", "dirname", "/usr/lib/", "file", "")
	require.NoError(t, err)
	assert.Equal(t, "/usr\n.\n.\n", output)

	output, err = runApp(t, "", "basename", "/usr/lib/", "//", "a/b")
	require.NoError(t, err)
	assert.Equal(t, "lib\n/\nb\n", output)

	_, err = runApp(t, "", "basename")
	assert.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
}

func TestVersionCommand(t *testing.T) {
	output, err := runApp(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output, util.VersionString()+"/"))

	output, err = runApp(t, "", "version", "--min", "0.2.1")
	require.NoError(t, err)
	assert.NotEmpty(t, output)

	_, err = runApp(t, "", "version", "--min", "99.0.0")
	assert.Equal(t, util.ERROR_VERSION_TOO_OLD, exitCode(err))

	_, err = runApp(t, "", "version", "--min", "x.y")
	assert.Equal(t, util.ERROR_BAD_VERSION, exitCode(err))
}

func TestHomeCommand(t *testing.T) {
	home, ok := util.HomeDir()
	output, err := runApp(t, "", "home")
	if !ok {
		assert.Equal(t, util.ERROR_NO_HOME_DIR, exitCode(err))
		return
	}
	require.NoError(t, err)
	assert.Equal(t, home+"\n", output)
}

func TestReadableCommand(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")
	require.NoError(t, os.WriteFile(first, []byte("1"), 0600))
	require.NoError(t, os.WriteFile(second, []byte("2"), 0600))

	output, err := runApp(t, "", "readable", "--workers", "2", first, second)
	require.NoError(t, err)
	assert.Empty(t, output)

	missingA := filepath.Join(dir, "missing-a")
	missingB := filepath.Join(dir, "missing-b")
	output, err = runApp(t, "", "--vv", "readable", missingA, first, missingB)
	assert.Equal(t, util.ERROR_UNREADABLE, exitCode(err))
	assert.Equal(t, missingA+"\n"+missingB+"\n", output)

	_, err = runApp(t, "", "readable", "--workers", "0", first)
	assert.Equal(t, util.ERROR_BAD_WORKERS, exitCode(err))
}

func TestFilterCommandFromStdin(t *testing.T) {
	stdin := "src/main.go\nnode_modules/x/index.js\nREADME.md\r\nsrc/util/list.go\n"

	output, err := runApp(t, stdin, "filter", "--exclude", "**/node_modules/**, *.md")
	require.NoError(t, err)
	assert.Equal(t, "src/main.go\nsrc/util/list.go\n", output)

	output, err = runApp(t, stdin, "filter", "--include", "**.go", "--dirname")
	require.NoError(t, err)
	assert.Equal(t, "src\nsrc/util\n", output)

	output, err = runApp(t, stdin, "filter", "--include", "**.go", "--basename")
	require.NoError(t, err)
	assert.Equal(t, "main.go\nlist.go\n", output)

	_, err = runApp(t, stdin, "filter", "--dirname", "--basename")
	assert.Error(t, err)
	assert.Equal(t, 1, exitCode(err))

	_, err = runApp(t, stdin, "filter", "--include", "[a-")
	assert.Equal(t, util.ERROR_BAD_PATTERN, exitCode(err))
}

func TestFilterCommandFromFile(t *testing.T) {
	input := filepath.Join(t.TempDir(), "paths.txt")
	require.NoError(t, os.WriteFile(input, []byte("Docs/Guide.MD\ncmd/tool.go\n"), 0600))

	output, err := runApp(t, "", "filter", "--input", input, "--exclude", "**.md", "--ignore-case")
	require.NoError(t, err)
	assert.Equal(t, "cmd/tool.go\n", output)

	_, err = runApp(t, "", "filter", "--input", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, util.ERROR_BAD_INPUT_PATH, exitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(errors.New("plain")))
	assert.Equal(t, util.ERROR_UNREADABLE, exitCode(&util.ErrorWithCode{
		StatusCode:    util.ERROR_UNREADABLE,
		InternalError: errors.New("coded"),
	}))
	assert.Equal(t, util.ERROR_BAD_PATTERN, exitCode(errors.Join(errors.New("context"), &util.ErrorWithCode{
		StatusCode:    util.ERROR_BAD_PATTERN,
		InternalError: errors.New("nested"),
	})))
}
