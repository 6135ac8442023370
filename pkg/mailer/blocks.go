package mailer

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	inlineMarkdown goldmark.Markdown
	inlinePolicy   *bluemonday.Policy
	inlineOnce     sync.Once
)

func initInline() {
	inlineOnce.Do(func() {
		// Input is escaped before conversion, so only emphasis markup should
		// reach the allow-list.
		inlineMarkdown = goldmark.New(
			goldmark.WithRendererOptions(html.WithHardWraps()),
		)

		inlinePolicy = bluemonday.NewPolicy()
		inlinePolicy.AllowStandardURLs()
		inlinePolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i", "del",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		inlinePolicy.AllowAttrs("href").OnElements("a")
		inlinePolicy.RequireNoFollowOnLinks(true)
	})
}

// formatInline converts model-produced text to safe inline HTML.
// Only "**strong**" and "_em_" are interpreted; every other character renders
// literally. A single wrapping paragraph is removed so the result can be
// embedded in the block's own element.
func formatInline(s string) string {
	initInline()

	var buf bytes.Buffer
	if err := inlineMarkdown.Convert([]byte(escapeMarkdown(s)), &buf); err != nil {
		return template.HTMLEscapeString(s)
	}

	out := strings.TrimSpace(inlinePolicy.Sanitize(buf.String()))
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSpace(out[len("<p>") : len(out)-len("</p>")])
	}
	return out
}

// escapeMarkdown backslash-escapes ASCII punctuation so goldmark renders it
// literally. Underscores and doubled asterisks are left as emphasis markers.
func escapeMarkdown(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '*' && i+1 < len(s) && s[i+1] == '*':
			sb.WriteString("**")
			i++
		case c == '_':
			sb.WriteByte(c)
		case isASCIIPunct(c):
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func isASCIIPunct(c byte) bool {
	return (c >= '!' && c <= '/') || (c >= ':' && c <= '@') || (c >= '[' && c <= '`') || (c >= '{' && c <= '~')
}

// FormatBlock renders a single block to HTML.
//
// It is total: every supported kind has its own markup and any other kind
// falls back to the escaped block text.
func FormatBlock(b Block) template.HTML {
	switch b.Kind {
	case BlockParagraph:
		return template.HTML(element("p", "email-paragraph", b) + formatInline(b.Text) + "</p>")
	case BlockBulletList:
		items := b.ListItems()
		if len(items) == 0 {
			return ""
		}
		var sb strings.Builder
		sb.WriteString(element("ul", "email-list", b))
		for _, item := range items {
			sb.WriteString(`<li class="email-list-item">`)
			sb.WriteString(formatInline(item))
			sb.WriteString("</li>")
		}
		sb.WriteString("</ul>")
		return template.HTML(sb.String())
	case BlockHeading:
		return template.HTML(element("h2", "email-heading", b) + formatInline(b.Text) + "</h2>")
	case BlockSignature:
		return template.HTML(element("div", "email-signature", b) + formatInline(b.Text) + "</div>")
	case BlockCallout:
		return template.HTML(element("div", "email-callout", b) + formatInline(b.Text) + "</div>")
	default:
		return template.HTML(template.HTMLEscapeString(b.String()))
	}
}

// element builds an opening tag carrying the base class, the block class
// hint and, when present, the block style hint.
func element(tag, baseClass string, b Block) string {
	class := baseClass
	if extra := strings.TrimSpace(b.className()); extra != "" {
		class += " " + extra
	}

	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(tag)
	sb.WriteString(` class="`)
	sb.WriteString(template.HTMLEscapeString(class))
	sb.WriteString(`"`)
	if style := b.style(); style != "" {
		sb.WriteString(` style="`)
		sb.WriteString(template.HTMLEscapeString(style))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	return sb.String()
}

var priorityColors = map[Priority]string{
	PriorityHigh:   "#dc3545",
	PriorityMedium: "#ffc107",
	PriorityLow:    "#28a745",
}

// priorityBadge renders the priority pill used by the notification template.
func priorityBadge(p Priority) template.HTML {
	color, ok := priorityColors[p]
	if !ok {
		color = "#6c757d"
	}
	return template.HTML(`<div class="priority-badge" style="background-color: ` + color + `">` +
		template.HTMLEscapeString(strings.ToUpper(string(p))) + `</div>`)
}
