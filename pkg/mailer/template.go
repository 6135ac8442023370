package mailer

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// templateFile is the YAML frontmatter of a template file.
type templateFile struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Variables []string `yaml:"variables"`
	Style     Style    `yaml:"style"`
}

var frontmatterDelimiter = []byte("---")

// ParseTemplate parses a template file: YAML frontmatter between "---" lines
// followed by the HTML layout. The frontmatter is required since it carries
// the template id and declared variables.
func ParseTemplate(content []byte) (*Template, error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(content, frontmatterDelimiter) {
		return nil, fmt.Errorf("%w: missing opening delimiter", ErrInvalidFrontmatter)
	}

	rest := content[len(frontmatterDelimiter):]
	end := bytes.Index(rest, append([]byte("\n"), frontmatterDelimiter...))
	if end == -1 {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	head := rest[:end]
	body := bytes.TrimPrefix(rest[end+1+len(frontmatterDelimiter):], []byte("\n"))

	var meta templateFile
	if err := yaml.Unmarshal(head, &meta); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}

	return &Template{
		ID:           meta.ID,
		Name:         meta.Name,
		HTML:         string(body),
		Variables:    meta.Variables,
		DefaultStyle: meta.Style,
	}, nil
}

// LoadTemplates registers every *.html file found directly under dir.
// Files are registered in lexical order, so a later file wins on id clashes.
func (r *Registry) LoadTemplates(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}

		name := path.Join(dir, e.Name())
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
		}

		t, err := ParseTemplate(content)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := r.Register(t); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}
