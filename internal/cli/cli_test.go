package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		configFlag = ""
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "docstract version test-version-1.0.0")
}

func TestPluginsCmd_ListsBuiltins(t *testing.T) {
	out, err := execute(t, "plugins")
	require.NoError(t, err)

	assert.Contains(t, out, "plaintext")
	assert.Contains(t, out, "html")
	assert.Contains(t, out, "pdf")
	assert.Contains(t, out, "docx")
	assert.Contains(t, out, "eml")
	assert.Contains(t, out, "tesseract")
	assert.Contains(t, out, "quality")
	assert.Contains(t, out, "chunker")
}

func TestMimeCmd_DetectsTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hello, world!"), 0o600))

	out, err := execute(t, "mime", path)
	require.NoError(t, err)
	assert.Contains(t, out, "text/")
}

func TestMimeCmd_MissingFile(t *testing.T) {
	_, err := execute(t, "mime", filepath.Join(t.TempDir(), "absent.bin"))
	assert.Error(t, err)
}

func TestExtractCmd_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n\nSome body text here."), 0o600))

	out, err := execute(t, "extract", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Some body text here.")
}

func TestExtractCmd_JSONOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("json please"), 0o600))

	out, err := execute(t, "extract", "--json", path)
	require.NoError(t, err)

	assert.Contains(t, out, `"content"`)
	assert.Contains(t, out, "json please")
}

func TestConfigShowCmd_PrintsDefaults(t *testing.T) {
	out, err := execute(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "[chunking]")
	assert.Contains(t, out, "max_chars")
}

func TestConfigShowCmd_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docstract.toml")
	require.NoError(t, os.WriteFile(path, []byte("[chunking]\nmax_chars = 77\n"), 0o600))

	out, err := execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "77")
}

func TestConfigShowCmd_MissingExplicitFile(t *testing.T) {
	_, err := execute(t, "config", "show", "--config", filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
