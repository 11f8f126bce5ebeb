package style

import (
	"embed"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/figgo/figgo/pkg/errors"
	"github.com/figgo/figgo/pkg/logging"
	"github.com/figgo/figgo/pkg/paths"
)

//go:embed templates/*.toml
var builtinTemplates embed.FS

// Template is a named, persisted style bundle. Built-in templates ship
// embedded in the binary; user templates are TOML files on disk.
type Template struct {
	Name    string
	Style   Style
	Builtin bool
}

// TemplateManager resolves template names against the user template
// directory first, then the embedded built-ins.
type TemplateManager struct {
	userDir string
}

// NewTemplateManager creates a manager rooted at the default user
// template directory ($XDG_CONFIG_HOME/figgo/templates)
func NewTemplateManager() *TemplateManager {
	return &TemplateManager{userDir: paths.TemplatesDir()}
}

// NewTemplateManagerWithDir creates a manager with an explicit user
// template directory, used by tests and the --template-dir override
func NewTemplateManagerWithDir(dir string) *TemplateManager {
	return &TemplateManager{userDir: dir}
}

// UserDir returns the directory user templates are read from and saved to
func (m *TemplateManager) UserDir() string {
	return m.userDir
}

// List returns all templates sorted by name. A user template with the
// same name as a built-in shadows it.
func (m *TemplateManager) List() ([]Template, error) {
	byName := make(map[string]Template)

	entries, err := builtinTemplates.ReadDir("templates")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "embedded templates unreadable")
	}
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".toml")
		st, err := m.loadBuiltin(name)
		if err != nil {
			return nil, err
		}
		byName[name] = Template{Name: name, Style: st, Builtin: true}
	}

	if userEntries, err := os.ReadDir(m.userDir); err == nil {
		for _, entry := range userEntries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
				continue
			}
			name := strings.TrimSuffix(entry.Name(), ".toml")
			st, err := m.loadUser(name)
			if err != nil {
				log := logging.GetLogger("style.templates")
				log.Warn().Err(err).Str("template", name).Msg("Skipping unreadable user template")
				continue
			}
			byName[name] = Template{Name: name, Style: st}
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	templates := make([]Template, 0, len(names))
	for _, name := range names {
		templates = append(templates, byName[name])
	}
	return templates, nil
}

// Load resolves a template by name, user templates taking precedence
func (m *TemplateManager) Load(name string) (Style, error) {
	if st, err := m.loadUser(name); err == nil {
		return st, nil
	}
	if st, err := m.loadBuiltin(name); err == nil {
		return st, nil
	}
	return Style{}, errors.Newf(errors.ErrTemplateNotFound,
		"template %q not found (run 'figgo templates' to list available templates)", name)
}

// Save persists a style as a user template and returns the written path
func (m *TemplateManager) Save(name string, st Style) (string, error) {
	if name == "" {
		return "", errors.New(errors.ErrInvalidInput, "template name must not be empty")
	}
	if err := st.Validate(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(m.userDir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite,
			"cannot create template directory %s", m.userDir)
	}
	data, err := toml.Marshal(st)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot encode template")
	}
	path := filepath.Join(m.userDir, name+".toml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot write template %s", path)
	}
	log := logging.GetLogger("style.templates")
	log.Info().Str("template", name).Str("path", path).Msg("Template saved")
	return path, nil
}

func (m *TemplateManager) loadBuiltin(name string) (Style, error) {
	data, err := builtinTemplates.ReadFile("templates/" + name + ".toml")
	if err != nil {
		return Style{}, errors.Newf(errors.ErrTemplateNotFound, "no built-in template %q", name)
	}
	return decodeTemplate(name, data)
}

func (m *TemplateManager) loadUser(name string) (Style, error) {
	data, err := os.ReadFile(filepath.Join(m.userDir, name+".toml"))
	if err != nil {
		return Style{}, errors.Newf(errors.ErrTemplateNotFound, "no user template %q", name)
	}
	return decodeTemplate(name, data)
}

func decodeTemplate(name string, data []byte) (Style, error) {
	var st Style
	if err := toml.Unmarshal(data, &st); err != nil {
		return Style{}, errors.Wrapf(err, errors.ErrTemplateInvalid,
			"template %q is not valid TOML", name)
	}
	st.Normalize()
	if err := st.Validate(); err != nil {
		return Style{}, errors.Wrapf(err, errors.ErrTemplateInvalid,
			"template %q has invalid values", name)
	}
	return st, nil
}
