package mailer

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	content := []byte(`---
id: digest
name: Daily Digest
variables: [Subject, Blocks]
style:
  container: "body{color:#333}"
  notification: ".badge{color:red}"
---
<h1>{{.Subject}}</h1>{{range .Blocks}}{{formatBlock .}}{{end}}
`)

	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)
	require.Equal(t, "digest", tmpl.ID)
	require.Equal(t, "Daily Digest", tmpl.Name)
	require.Equal(t, []string{"Subject", "Blocks"}, tmpl.Variables)
	require.Equal(t, "body{color:#333}", tmpl.DefaultStyle.Container)
	require.Equal(t, ".badge{color:red}", tmpl.DefaultStyle.Notification)
	require.Equal(t, "<h1>{{.Subject}}</h1>{{range .Blocks}}{{formatBlock .}}{{end}}\n", tmpl.HTML)
}

func TestParseTemplate_WindowsLineEndings(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseTemplate([]byte("---\r\nid: x\r\nvariables: [Content]\r\n---\r\n{{.Content}}"))
	require.NoError(t, err)
	require.Equal(t, "x", tmpl.ID)
	require.Equal(t, "{{.Content}}", tmpl.HTML)
}

func TestParseTemplate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "no frontmatter", content: "<p>{{.Content}}</p>"},
		{name: "unclosed frontmatter", content: "---\nid: x\n<p>{{.Content}}</p>"},
		{name: "invalid yaml", content: "---\nid: [unclosed\n---\n{{.Content}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseTemplate([]byte(tt.content))
			require.ErrorIs(t, err, ErrInvalidFrontmatter)
		})
	}
}

func TestParseTemplate_EmptyFrontmatter(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseTemplate([]byte("---\n---\n{{.Content}}"))
	require.NoError(t, err)
	require.Empty(t, tmpl.ID)
	require.ErrorIs(t, tmpl.Validate(), ErrTemplateValidation)
}

func TestRegistry_LoadTemplates(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"emails/digest.html": &fstest.MapFile{
			Data: []byte("---\nid: digest\nvariables: [Content]\n---\n<main>{{.Content}}</main>"),
		},
		"emails/notification.html": &fstest.MapFile{
			Data: []byte("---\nid: notification\nname: Custom\nvariables: [Content]\n---\n<aside>{{.Content}}</aside>"),
		},
		"emails/README.md": &fstest.MapFile{Data: []byte("ignored")},
	}

	r := NewRegistry()
	require.NoError(t, r.LoadTemplates(fsys, "emails"))
	require.Equal(t, []string{"default", "digest", "notification"}, r.IDs())

	tmpl, ok := r.Get(TemplateNotification)
	require.True(t, ok)
	require.Equal(t, "Custom", tmpl.Name)

	html, err := NewRenderer(r).Render(&Document{
		Subject:  "s",
		Blocks:   []Block{Paragraph("p")},
		Metadata: DocumentMetadata{Priority: PriorityHigh},
	})
	require.NoError(t, err)
	require.Equal(t, `<aside><p class="email-paragraph">p</p></aside>`, html)
}

func TestRegistry_LoadTemplates_Errors(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.ErrorIs(t, r.LoadTemplates(fstest.MapFS{}, "missing"), ErrTemplateNotFound)

	fsys := fstest.MapFS{
		"t/bad.html": &fstest.MapFile{Data: []byte("---\nid: bad\nvariables: [Subject]\n---\n<h1>{{.Subject}}</h1>")},
	}
	require.ErrorIs(t, r.LoadTemplates(fsys, "t"), ErrTemplateValidation)
	_, ok := r.Get("bad")
	require.False(t, ok)
}
