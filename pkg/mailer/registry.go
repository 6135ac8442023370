package mailer

import (
	"fmt"
	"html/template"
	"regexp"
	"slices"
	"sort"
	"sync"
)

// Style holds the CSS a template is rendered with.
type Style struct {
	Container    string `yaml:"container"`
	Notification string `yaml:"notification"`
}

// Template is a named HTML layout with html/template placeholders.
//
// Layouts are executed with the fields Subject, Blocks, Content (all blocks
// pre-rendered), Metadata and Style, and may call the formatBlock and
// priorityBadge functions.
type Template struct {
	ID           string
	Name         string
	HTML         string
	Variables    []string
	DefaultStyle Style
}

// contentPlaceholder matches a template action referencing the document body.
var contentPlaceholder = regexp.MustCompile(`\{\{[^}]*\.(Blocks|Content)\b[^}]*\}\}`)

// Validate checks the template has the required fields and a content placeholder.
func (t *Template) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: template is nil", ErrTemplateValidation)
	}
	if t.ID == "" || t.HTML == "" || len(t.Variables) == 0 {
		return fmt.Errorf("%w: missing required fields (id, html, variables)", ErrTemplateValidation)
	}
	if !contentPlaceholder.MatchString(t.HTML) {
		return fmt.Errorf("%w: %s: missing required content placeholder", ErrTemplateValidation, t.ID)
	}
	return nil
}

// compiledTemplate pairs a registered template with its parsed layout.
type compiledTemplate struct {
	meta *Template
	tmpl *template.Template
}

// Registry holds named templates.
//
// Templates are normally registered once at startup; registering an id that
// already exists replaces the previous entry.
type Registry struct {
	templates map[string]*compiledTemplate
	mu        sync.RWMutex
}

// NewRegistry creates a registry pre-populated with the built-in
// "default" and "notification" templates.
func NewRegistry() *Registry {
	r := &Registry{templates: make(map[string]*compiledTemplate)}
	for _, t := range builtinTemplates() {
		r.MustRegister(t)
	}
	return r
}

// Register validates, compiles and stores a template under its id.
func (r *Registry) Register(t *Template) error {
	if err := t.Validate(); err != nil {
		return err
	}

	stored := *t
	stored.Variables = slices.Clone(t.Variables)

	tmpl, err := template.New(stored.ID).Funcs(template.FuncMap{
		"formatBlock":   FormatBlock,
		"priorityBadge": priorityBadge,
	}).Parse(stored.HTML)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTemplateValidation, stored.ID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[stored.ID] = &compiledTemplate{meta: &stored, tmpl: tmpl}
	return nil
}

// MustRegister is like Register but panics on an invalid template.
func (r *Registry) MustRegister(t *Template) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Get returns a copy of the template registered under id. Unlike rendering,
// it does not fall back to the default template.
func (r *Registry) Get(id string) (*Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ct, ok := r.templates[id]
	if !ok {
		return nil, false
	}
	t := *ct.meta
	t.Variables = slices.Clone(ct.meta.Variables)
	return &t, true
}

// IDs returns the registered template ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// lookup resolves id, falling back to the default template for unknown ids.
func (r *Registry) lookup(id string) (*compiledTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if ct, ok := r.templates[id]; ok {
		return ct, nil
	}
	if ct, ok := r.templates[TemplateDefault]; ok {
		return ct, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
}
