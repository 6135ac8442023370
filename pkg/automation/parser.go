package automation

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultSubject is used when the model output carries no subject line.
const DefaultSubject = "New Connection Request"

const (
	headingSubject          = "Subject"
	headingBackground       = "Background"
	headingKeyPoints        = "Key Points"
	headingTechnicalDetails = "Technical Details"
	headingNextSteps        = "Next Steps"
)

var knownHeadings = []string{
	headingSubject,
	headingBackground,
	headingKeyPoints,
	headingTechnicalDetails,
	headingNextSteps,
}

var (
	bulletMarker = regexp.MustCompile(`^[•\-]\s*`)
	stepMarker   = regexp.MustCompile(`^(\d+\.|-|•)\s*`)
)

// Sections is the structured content extracted from model output.
// TechnicalDetails and NextSteps are nil when their heading is absent.
type Sections struct {
	Subject          string
	Background       string
	KeyPoints        []string
	TechnicalDetails []string
	NextSteps        []string
}

// Validate reports every missing mandatory section at once.
func (s Sections) Validate() error {
	var missing []string
	if s.Background == "" {
		missing = append(missing, "background")
	}
	if len(s.KeyPoints) == 0 {
		missing = append(missing, "key points")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrSynthesisValidation, strings.Join(missing, ", "))
	}
	return nil
}

// ParseSections extracts sections from model output. Every section is
// extracted independently; a missing section never prevents the others from
// being found. Content is never invented for an absent section.
func ParseSections(text string) Sections {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	s := Sections{Subject: DefaultSubject}
	if subject, ok := extractSubject(lines); ok {
		s.Subject = subject
	}
	if background, ok := extractParagraph(lines, headingBackground); ok {
		s.Background = background
	}
	if points, ok := extractList(lines, headingKeyPoints, bulletMarker); ok {
		s.KeyPoints = points
	}
	if details, ok := extractList(lines, headingTechnicalDetails, bulletMarker); ok {
		s.TechnicalDetails = details
	}
	if steps, ok := extractList(lines, headingNextSteps, stepMarker); ok {
		s.NextSteps = steps
	}
	return s
}

func extractSubject(lines []string) (string, bool) {
	for _, line := range lines {
		if rest, ok := headingRest(line, headingSubject); ok && rest != "" {
			return rest, true
		}
	}
	return "", false
}

func extractParagraph(lines []string, heading string) (string, bool) {
	body, ok := sectionBody(lines, heading)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(strings.Join(body, "\n")), true
}

// extractList returns a non-nil slice whenever the heading exists.
func extractList(lines []string, heading string, marker *regexp.Regexp) ([]string, bool) {
	body, ok := sectionBody(lines, heading)
	if !ok {
		return nil, false
	}

	items := make([]string, 0, len(body))
	for _, line := range body {
		item := strings.TrimSpace(marker.ReplaceAllString(strings.TrimSpace(line), ""))
		if item != "" {
			items = append(items, item)
		}
	}
	return items, true
}

// sectionBody returns the lines belonging to the first occurrence of heading.
// Text after the heading's colon is the first line. Blank lines before any
// content are skipped; the body ends at the next blank line or known heading.
func sectionBody(lines []string, heading string) ([]string, bool) {
	for i, line := range lines {
		rest, ok := headingRest(line, heading)
		if !ok {
			continue
		}

		var body []string
		if rest != "" {
			body = append(body, rest)
		}
		for _, next := range lines[i+1:] {
			if strings.TrimSpace(next) == "" {
				if len(body) == 0 {
					continue
				}
				break
			}
			if isHeading(next) {
				break
			}
			body = append(body, next)
		}
		return body, true
	}
	return nil, false
}

// headingRest reports whether line opens the named section and returns the
// trimmed text after its colon.
func headingRest(line, heading string) (string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), heading+":")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

func isHeading(line string) bool {
	for _, h := range knownHeadings {
		if _, ok := headingRest(line, h); ok {
			return true
		}
	}
	return false
}
