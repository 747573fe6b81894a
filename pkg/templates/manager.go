package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/pkg/logger"
)

// Renderer interface for template rendering (for dependency injection)
type Renderer interface {
	ExecuteTemplate(name string, data any) (string, error)
	TemplateExists(name string) bool
}

// Manager holds parsed prompt templates
type Manager struct {
	templates *template.Template
}

// DefaultFuncMap returns common template helper functions
func DefaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"upper": strings.ToUpper,
		"truncate": func(s string, n int) string {
			r := []rune(s)
			if len(r) <= n {
				return s
			}
			return string(r[:n]) + "..."
		},
		"join": strings.Join,
	}
}

// NewManager parses every template in fsys matching patterns
func NewManager(fsys fs.FS, patterns ...string) (*Manager, error) {
	if len(patterns) == 0 {
		patterns = []string{"*.tmpl"}
	}

	tmpl, err := template.New("root").Funcs(DefaultFuncMap()).ParseFS(fsys, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	// "root" itself doesn't count
	if len(tmpl.Templates()) <= 1 {
		return nil, fmt.Errorf("no templates found for %v", patterns)
	}

	logger.Debug("templates loaded",
		zap.Int("count", len(tmpl.Templates())-1),
		zap.Strings("patterns", patterns),
	)

	return &Manager{templates: tmpl}, nil
}

// ExecuteTemplate renders template with data
func (m *Manager) ExecuteTemplate(name string, data any) (string, error) {
	tmpl := m.templates.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("template %s not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

// TemplateExists checks if template exists
func (m *Manager) TemplateExists(name string) bool {
	return m.templates.Lookup(name) != nil
}
