package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// Renderer turns documents into HTML using templates from a Registry.
// Rendering is a pure function of the document and the registry contents.
type Renderer struct {
	registry *Registry
}

// NewRenderer creates a renderer bound to the given registry.
// A nil registry is replaced with NewRegistry().
func NewRenderer(registry *Registry) *Renderer {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Renderer{registry: registry}
}

// Registry returns the registry the renderer reads templates from.
func (r *Renderer) Registry() *Registry {
	return r.registry
}

// Rendered is the output of a render call.
type Rendered struct {
	HTML       string
	TemplateID string // Template actually used, after fallback
}

// renderData is the binding every layout is executed with.
type renderData struct {
	Subject  string
	Blocks   []Block
	Content  template.HTML
	Metadata DocumentMetadata
	Style    template.CSS
}

// TemplateFor selects the template id for a document:
// high priority documents use the notification template, all others the default one.
func TemplateFor(doc *Document) string {
	if doc != nil && doc.Metadata.Priority == PriorityHigh {
		return TemplateNotification
	}
	return TemplateDefault
}

// Render renders the document with the template selected by TemplateFor.
func (r *Renderer) Render(doc *Document) (string, error) {
	out, err := r.RenderWith(TemplateFor(doc), doc)
	if err != nil {
		return "", err
	}
	return out.HTML, nil
}

// RenderWith renders the document with an explicit template id.
// Unknown ids fall back to the default template.
func (r *Renderer) RenderWith(templateID string, doc *Document) (*Rendered, error) {
	if doc == nil {
		return nil, ErrNoContent
	}

	ct, err := r.registry.lookup(templateID)
	if err != nil {
		return nil, err
	}

	blocks := make([]string, len(doc.Blocks))
	for i, b := range doc.Blocks {
		blocks[i] = string(FormatBlock(b))
	}

	style := ct.meta.DefaultStyle.Container
	if n := ct.meta.DefaultStyle.Notification; n != "" {
		style += "\n" + n
	}

	data := renderData{
		Subject:  doc.Subject,
		Blocks:   doc.Blocks,
		Content:  template.HTML(strings.Join(blocks, "\n")),
		Metadata: doc.Metadata,
		Style:    template.CSS(style),
	}

	var buf bytes.Buffer
	if err := ct.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, ct.meta.ID, err)
	}

	return &Rendered{HTML: buf.String(), TemplateID: ct.meta.ID}, nil
}
