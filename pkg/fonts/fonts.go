// Package fonts enumerates, searches, and renders figlet fonts. Glyph
// rendering is delegated to go-figure; this package adds the catalog,
// category/use-case tables, and the custom .flf font directory.
package fonts

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/figgo/figgo/pkg/errors"
	"github.com/figgo/figgo/pkg/logging"
	"github.com/figgo/figgo/pkg/paths"
)

// Manager resolves font names against the bundled catalog and the
// custom font directory ($XDG_DATA_HOME/figgo/fonts by default)
type Manager struct {
	customDir string
	names     []string // merged sorted catalog, built lazily
	log       zerolog.Logger
}

// Info describes a single font
type Info struct {
	Name        string
	Custom      bool
	Categories  []string
	Recommended []string
	Height      int
	Width       int
	Description string
	Author      string
}

// Meta is optional descriptive metadata for a custom font, stored as a
// TOML sidecar next to the .flf file
type Meta struct {
	Description string `toml:"description,omitempty"`
	Author      string `toml:"author,omitempty"`
}

// NewManager creates a font manager using the default custom font directory
func NewManager() *Manager {
	return NewManagerWithDir(paths.FontsDir())
}

// NewManagerWithDir creates a font manager with an explicit custom font
// directory, used by tests and the --font-dir override
func NewManagerWithDir(dir string) *Manager {
	return &Manager{
		customDir: dir,
		log:       logging.GetLogger("fonts"),
	}
}

// List returns all available font names, sorted
func (m *Manager) List() []string {
	if m.names != nil {
		return m.names
	}

	seen := make(map[string]bool, len(bundled))
	names := make([]string, 0, len(bundled))
	for _, name := range bundled {
		seen[name] = true
		names = append(names, name)
	}

	if entries, err := os.ReadDir(m.customDir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".flf") {
				continue
			}
			name := strings.TrimSuffix(entry.Name(), ".flf")
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	sort.Strings(names)
	m.names = names
	return names
}

// Validate reports whether a font name is available
func (m *Manager) Validate(name string) bool {
	for _, n := range m.List() {
		if n == name {
			return true
		}
	}
	return false
}

// Search returns fonts whose name contains the query, case-insensitive
func (m *Manager) Search(query string) []string {
	query = strings.ToLower(query)
	var matches []string
	for _, name := range m.List() {
		if strings.Contains(strings.ToLower(name), query) {
			matches = append(matches, name)
		}
	}
	return matches
}

// Categories returns all category names, sorted
func (m *Manager) Categories() []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByCategory returns the available fonts in a category
func (m *Manager) ByCategory(category string) []string {
	var available []string
	for _, name := range categories[category] {
		if m.Validate(name) {
			available = append(available, name)
		}
	}
	return available
}

// UseCases returns all recommendation use cases, sorted
func (m *Manager) UseCases() []string {
	names := make([]string, 0, len(recommended))
	for name := range recommended {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Recommended returns the available fonts suggested for a use case
func (m *Manager) Recommended(useCase string) []string {
	var available []string
	for _, name := range recommended[useCase] {
		if m.Validate(name) {
			available = append(available, name)
		}
	}
	return available
}

// Info returns catalog details for a font, probing its dimensions from
// a one-letter sample
func (m *Manager) Info(name string) (Info, error) {
	if !m.Validate(name) {
		return Info{}, errors.Newf(errors.ErrFontNotFound, "font %q not found", name)
	}

	info := Info{
		Name:   name,
		Custom: m.isCustom(name),
	}
	if info.Custom {
		meta := m.loadMeta(name)
		info.Description = meta.Description
		info.Author = meta.Author
	}
	for category, names := range categories {
		for _, n := range names {
			if n == name {
				info.Categories = append(info.Categories, category)
			}
		}
	}
	for useCase, names := range recommended {
		for _, n := range names {
			if n == name {
				info.Recommended = append(info.Recommended, useCase)
			}
		}
	}
	sort.Strings(info.Categories)
	sort.Strings(info.Recommended)

	lines, err := m.Render(name, "A")
	if err != nil {
		return Info{}, err
	}
	info.Height = len(lines)
	for _, line := range lines {
		if w := len([]rune(line)); w > info.Width {
			info.Width = w
		}
	}
	return info, nil
}

// Render produces the raw glyph lines for text in the named font
func (m *Manager) Render(name, text string) ([]string, error) {
	if !m.Validate(name) {
		return nil, errors.Newf(errors.ErrFontNotFound,
			"font %q not found (run 'figgo fonts' to list available fonts)", name)
	}

	if m.isCustom(name) {
		f, err := os.Open(filepath.Join(m.customDir, name+".flf"))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFontRender, "cannot open custom font %q", name)
		}
		defer func() { _ = f.Close() }()
		lines := renderWithFont(text, f)
		if len(lines) == 0 {
			return nil, errors.Newf(errors.ErrFontRender, "custom font %q failed to render", name)
		}
		return lines, nil
	}

	return figure.NewFigure(text, name, false).Slicify(), nil
}

// Sample renders sample text in the named font as a single string
func (m *Manager) Sample(name, text string) (string, error) {
	if text == "" {
		text = "SAMPLE"
	}
	lines, err := m.Render(name, text)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Add copies a .flf font file into the custom font directory. When
// meta is non-nil it is persisted as a TOML sidecar next to the font
// and surfaced by Info.
func (m *Manager) Add(path string, meta *Meta) error {
	if !strings.HasSuffix(path, ".flf") {
		return errors.Newf(errors.ErrFontInvalid, "%s is not a .flf font file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFontInvalid, "cannot read font file %s", path)
	}
	if err := os.MkdirAll(m.customDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot create font directory %s", m.customDir)
	}
	target := filepath.Join(m.customDir, filepath.Base(path))
	if err := os.WriteFile(target, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot install font to %s", target)
	}

	if meta != nil {
		encoded, err := toml.Marshal(meta)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "cannot encode font metadata")
		}
		name := strings.TrimSuffix(filepath.Base(path), ".flf")
		sidecar := filepath.Join(m.customDir, name+".toml")
		if err := os.WriteFile(sidecar, encoded, 0644); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot write font metadata %s", sidecar)
		}
	}

	m.names = nil // catalog changed
	m.log.Info().Str("font", filepath.Base(path)).Str("path", target).Msg("Custom font installed")
	return nil
}

// loadMeta reads a custom font's metadata sidecar; fonts without one
// yield a zero Meta
func (m *Manager) loadMeta(name string) Meta {
	data, err := os.ReadFile(filepath.Join(m.customDir, name+".toml"))
	if err != nil {
		return Meta{}
	}
	var meta Meta
	if err := toml.Unmarshal(data, &meta); err != nil {
		m.log.Warn().Err(err).Str("font", name).Msg("Ignoring malformed font metadata")
		return Meta{}
	}
	return meta
}

func (m *Manager) isCustom(name string) bool {
	_, err := os.Stat(filepath.Join(m.customDir, name+".flf"))
	return err == nil
}

// renderWithFont isolates the go-figure call so a malformed .flf file
// surfaces as an empty render rather than a panic
func renderWithFont(text string, r io.Reader) (lines []string) {
	defer func() {
		if recover() != nil {
			lines = nil
		}
	}()
	return figure.NewFigureWithFont(text, r, false).Slicify()
}
