package mailer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PlainText projects a document onto its plain-text alternative.
//
// The first line is the subject followed by a blank line. Each block is then
// written followed by a blank line: bullet lists as "• item" lines, headings
// upper-cased, everything else as its text.
func PlainText(doc *Document) string {
	if doc == nil {
		return ""
	}

	upper := cases.Upper(language.Und)
	parts := make([]string, 0, 2+2*len(doc.Blocks))
	parts = append(parts, doc.Subject, "")

	for _, b := range doc.Blocks {
		switch b.Kind {
		case BlockBulletList:
			items := b.ListItems()
			lines := make([]string, len(items))
			for i, item := range items {
				lines[i] = "• " + item
			}
			parts = append(parts, strings.Join(lines, "\n"))
		case BlockHeading:
			parts = append(parts, upper.String(b.Text))
		default:
			parts = append(parts, b.String())
		}
		parts = append(parts, "")
	}

	return strings.Join(parts, "\n")
}
