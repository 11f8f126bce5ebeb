package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figgo/figgo/pkg/export"
	"github.com/figgo/figgo/pkg/ui"
)

// isolateEnv points every XDG directory at a temp dir so tests never
// touch the real user configuration
func isolateEnv(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootWithoutSubcommand(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t)
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "figgo version")
}

func TestGenerateToStdout(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "generate", "Hi")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
	assert.Greater(t, len(strings.Split(strings.TrimRight(out, "\n"), "\n")), 1,
		"glyph output spans multiple lines")
}

func TestGenerateWithBorderAndPadding(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "generate", "--border", "ascii", "--padding", "1", "Hi")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "+"))
	assert.True(t, strings.HasSuffix(lines[0], "+"))
}

func TestGenerateRejectsUnknownFont(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, "generate", "--font", "no-such-font", "Hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-font")
}

func TestGenerateRejectsUnknownBorder(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, "generate", "--border", "wavy", "Hi")
	assert.Error(t, err)
}

func TestGenerateExportsFile(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "banner.txt")

	out, err := execute(t, "generate", "-o", path, "Hi")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.Contains(t, out, ui.SuccessIndicator)
	assert.FileExists(t, path)
}

func TestGenerateExportsStructuredDocument(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "banner.json")

	_, err := execute(t, "generate", "-o", path, "--template", "retro", "Hi")
	require.NoError(t, err)

	doc, err := export.LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "Hi", doc.Text)
	assert.NotEmpty(t, doc.Output.Plain)
}

func TestGenerateFromTemplateWithOverride(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "banner.json")

	_, err := execute(t, "generate", "-o", path, "--template", "minimal", "--border", "hash", "Hi")
	require.NoError(t, err)

	doc, err := export.LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "hash", string(doc.Style.Border))
}

func TestFontsList(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "fonts")
	require.NoError(t, err)
	assert.Contains(t, out, "standard")
	assert.Contains(t, out, "slant")
}

func TestFontsSearch(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "fonts", "--search", "slant")
	require.NoError(t, err)
	assert.Contains(t, out, "slant")
	assert.NotContains(t, out, "doom")
}

func TestFontsInfo(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "fonts", "info", "standard")
	require.NoError(t, err)
	assert.Contains(t, out, "standard")
	assert.Contains(t, out, "bundled")
}

func TestFontsRejectsUnknownCategory(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, "fonts", "--category", "cursive")
	assert.Error(t, err)
}

func TestTemplatesList(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "templates")
	require.NoError(t, err)
	for _, builtin := range []string{"corporate", "retro", "minimal", "neon"} {
		assert.Contains(t, out, builtin)
	}
}

func TestTemplatesSaveThenGenerate(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "templates", "save", "mystyle", "--border", "star", "--padding", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "mystyle")
	assert.Contains(t, out, ui.SuccessIndicator)

	path := filepath.Join(t.TempDir(), "banner.json")
	_, err = execute(t, "generate", "-o", path, "--template", "mystyle", "Hi")
	require.NoError(t, err)

	doc, err := export.LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "star", string(doc.Style.Border))
	assert.Equal(t, 1, doc.Style.Padding)
}

func TestTemplatesShow(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "templates", "show", "minimal")
	require.NoError(t, err)
	assert.Contains(t, out, "minimal")
}

func TestPreviewLimitsFonts(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "preview", "--font", "standard", "--font", "slant", "Hi")
	require.NoError(t, err)
	assert.Contains(t, out, "standard")
	assert.Contains(t, out, "slant")
}

func TestDocsListsTopics(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "docs")
	require.NoError(t, err)
	for _, topic := range []string{"styling", "fonts", "templates", "exports", "configuration"} {
		assert.Contains(t, out, topic)
	}
}

func TestHelpRendersTopic(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "help", "styling")
	require.NoError(t, err)
	assert.Contains(t, out, "pipeline")
}

func TestCompletionBash(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "figgo")
}

func TestConfigDefaultFontApplies(t *testing.T) {
	isolateEnv(t)

	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "figgo")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("font = \"slant\"\n"), 0644))

	path := filepath.Join(t.TempDir(), "banner.json")
	_, err := execute(t, "generate", "-o", path, "Hi")
	require.NoError(t, err)

	doc, err := export.LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "slant", doc.Style.Font)
}
