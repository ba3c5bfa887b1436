package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

//go:embed prompts/*.prompt
var promptFiles embed.FS

// Variant selects a provider-specific template; DefaultVariant is the fallback.
type Variant string
type Key string

const (
	DefaultVariant Variant = "default"

	ReviewSystemPrompt Key = "review_system"
	OriginalFilePrompt Key = "original_file"
	ChangesPrompt      Key = "changes"
)

// Manager holds the embedded review templates. A template file is named
// "<key>_<variant>.prompt"; the key itself may contain underscores.
type Manager struct {
	prompts map[Key]map[Variant]*template.Template
}

func NewManager() (*Manager, error) {
	names, err := fs.Glob(promptFiles, "prompts/*.prompt")
	if err != nil {
		return nil, fmt.Errorf("list prompt templates: %w", err)
	}

	pm := &Manager{prompts: make(map[Key]map[Variant]*template.Template, len(names))}
	for _, name := range names {
		key, variant, err := splitName(path.Base(name))
		if err != nil {
			return nil, err
		}
		tmpl, err := template.ParseFS(promptFiles, name)
		if err != nil {
			return nil, fmt.Errorf("parse prompt %s: %w", name, err)
		}
		if pm.prompts[key] == nil {
			pm.prompts[key] = make(map[Variant]*template.Template)
		}
		pm.prompts[key][variant] = tmpl
	}
	return pm, nil
}

// splitName cuts a template file name at its last underscore.
func splitName(file string) (Key, Variant, error) {
	base := strings.TrimSuffix(file, path.Ext(file))
	i := strings.LastIndex(base, "_")
	if i <= 0 || i == len(base)-1 {
		return "", "", fmt.Errorf("prompt file %q is not named <key>_<variant>.prompt", file)
	}
	return Key(base[:i]), Variant(base[i+1:]), nil
}

// Get looks up key for variant. Variants without their own file share the
// default template.
func (pm *Manager) Get(key Key, variant Variant) (*template.Template, error) {
	variants := pm.prompts[key]
	if len(variants) == 0 {
		return nil, fmt.Errorf("unknown prompt %q", key)
	}
	if tmpl := variants[variant]; tmpl != nil {
		return tmpl, nil
	}
	if tmpl := variants[DefaultVariant]; tmpl != nil {
		return tmpl, nil
	}
	return nil, fmt.Errorf("prompt %q has no %q or %q variant", key, variant, DefaultVariant)
}

func (pm *Manager) Render(key Key, variant Variant, data any) (string, error) {
	tmpl, err := pm.Get(key, variant)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
