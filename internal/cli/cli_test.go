package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/catspeak-dev/catspeak/internal/errors"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command in-process with HOME pointed at a
// temp dir, so no real config file is read.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEncode(t *testing.T) {
	out, _, err := runCLI(t, "", "encode", "i")
	require.NoError(t, err)
	assert.Equal(t, "meow mreow mrrp\n", out)
}

func TestEncode_Stdin(t *testing.T) {
	out, _, err := runCLI(t, "I\n", "encode")
	require.NoError(t, err)
	assert.Equal(t, "meow mreow mrrp\n", out)
}

func TestEncode_Base16Bytes(t *testing.T) {
	out, _, err := runCLI(t, "", "encode", "--base", "16", "--bytes", "z")
	require.NoError(t, err)
	assert.Equal(t, "mew purrrr\n", out)
}

func TestEncode_InvalidCharacter(t *testing.T) {
	_, _, err := runCLI(t, "", "encode", "hi!")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidCharacter))
}

func TestDecode(t *testing.T) {
	encoded, _, err := runCLI(t, "", "encode", "--base", "7", "i", "love", "cats")
	require.NoError(t, err)

	out, _, err := runCLI(t, "", "decode", "--base", "7", strings.TrimSpace(encoded))
	require.NoError(t, err)
	assert.Equal(t, "i love cats\n", out)
}

func TestDecode_Bytes(t *testing.T) {
	out, _, err := runCLI(t, "", "decode", "--base", "16", "--bytes", "mrow~ mrow~")
	require.NoError(t, err)
	assert.Equal(t, "255\n", out)
}

func TestDecode_WrongBase(t *testing.T) {
	_, _, err := runCLI(t, "", "decode", "mrow~ meow meow")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrUnknownToken))
}

func TestWidthFlag(t *testing.T) {
	out, _, err := runCLI(t, "", "encode", "--bytes", "--width", "3", "\t\x01")
	require.NoError(t, err)
	assert.Equal(t, "meow mreow mrrp meow meow mrrp\n", out)
}

func TestBaseOutOfRange(t *testing.T) {
	_, _, err := runCLI(t, "", "encode", "--base", "17", "hi")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrBaseOutOfRange))
}

func TestConfigFileApplies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catspeak.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base: 2\nalphabet: [purr, hiss]\n"), 0644))

	out, _, err := runCLI(t, "", "--config", path, "encode", "a")
	require.NoError(t, err)
	assert.Equal(t, "purr purr purr purr hiss\n", out)
}

func TestConfigFileMissing(t *testing.T) {
	_, _, err := runCLI(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "encode", "a")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrConfigNotFound))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("CATSPEAK_BASE", "16")

	out, _, err := runCLI(t, "", "encode", "z")
	require.NoError(t, err)
	assert.Equal(t, "mrrp purrrr\n", out)
}

func TestBenchmark(t *testing.T) {
	out, _, err := runCLI(t, "", "benchmark", "-i", "10", "i", "love", "cats")
	require.NoError(t, err)
	assert.Contains(t, out, "Iterations:  10")
	assert.Contains(t, out, "Encode time:")
	assert.Contains(t, out, "Decode time:")
}

func TestBenchmark_JSON(t *testing.T) {
	out, _, err := runCLI(t, "", "benchmark", "--iterations", "3", "--format", "json", "--bytes", "hi")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, float64(3), res["iterations"])
	assert.Equal(t, "bytes", res["mode"])
}

func TestBenchmark_BadFormat(t *testing.T) {
	_, _, err := runCLI(t, "", "benchmark", "--format", "xml", "hi")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrConfigInvalid))
}

func TestRepl(t *testing.T) {
	out, _, err := runCLI(t, "2\ni\nq\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "1) cat to text")
	assert.Contains(t, out, "meow mreow mrrp")
	assert.Contains(t, out, "Invalid input, exiting...")
}

func TestAlphabet(t *testing.T) {
	out, _, err := runCLI(t, "", "alphabet", "--base", "16")
	require.NoError(t, err)
	assert.Contains(t, out, "Base 16")
	assert.Contains(t, out, "2 tokens per letter")
	assert.Contains(t, out, "15  mrow~")
	assert.NotContains(t, out, "Custom alphabet")
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, _, err := runCLI(t, "", "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")
	assert.FileExists(t, path)

	out, _, err = runCLI(t, "", "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	out, _, err = runCLI(t, "", "--config", path, "--base", "9", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "base: 9")
	assert.Contains(t, out, "mode: text")
}

func TestConfigInit_OverwritesBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base: 99\n"), 0644))

	out, _, err := runCLI(t, "", "--config", path, "config", "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "base: 4")
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "catspeak dev\n", out)
}

func TestCompletion(t *testing.T) {
	out, _, err := runCLI(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "catspeak")
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := runCLI(t, "", "--log-level", "debug", "encode", "a")
	require.NoError(t, err)
	assert.Contains(t, stderr, "config loaded")
	assert.Contains(t, stderr, "encoded")
}

func TestPrintErrorWithHint(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	printErrorWithHint(&buf, errors.BaseOutOfRange(17, 16))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "✗")
	assert.Contains(t, lines[1], "--base")
}

func TestReadInput(t *testing.T) {
	got, err := readInput(strings.NewReader("ignored"), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a b", got)

	got, err = readInput(strings.NewReader("hello world\r\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}
