package automation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSections_WellFormed(t *testing.T) {
	t.Parallel()

	s := ParseSections(wellFormedOutput)

	require.Equal(t, "Acme platform lead wants a Go SDK", s.Subject)
	require.Equal(t, "Ann leads the platform team at Acme.\nThey ship payment APIs.", s.Background)
	require.Equal(t, []string{"Needs a Go client for the API", "Has budget approved this quarter"}, s.KeyPoints)
	require.Equal(t, []string{"Handles 2k requests per second"}, s.TechnicalDetails)
	require.Equal(t, []string{"Send API documentation", "Schedule a call"}, s.NextSteps)
	require.NoError(t, s.Validate())
}

func TestParseSections_CRLF(t *testing.T) {
	t.Parallel()

	s := ParseSections(strings.ReplaceAll(wellFormedOutput, "\n", "\r\n"))

	require.Equal(t, "Acme platform lead wants a Go SDK", s.Subject)
	require.Equal(t, "Ann leads the platform team at Acme.\nThey ship payment APIs.", s.Background)
	require.Len(t, s.KeyPoints, 2)
	require.Len(t, s.NextSteps, 2)
}

func TestParseSections_SectionBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Sections
	}{
		{
			name:  "no blank line between sections",
			input: "Subject: Hi\nBackground:\nShort intro.\nKey Points:\n- one\n- two\nNext Steps:\n- call",
			want: Sections{
				Subject:    "Hi",
				Background: "Short intro.",
				KeyPoints:  []string{"one", "two"},
				NextSteps:  []string{"call"},
			},
		},
		{
			name:  "inline text after heading",
			input: "Subject: Hi\nBackground: Founder of a startup.\n\nKey Points: • wants intro\n• has demo",
			want: Sections{
				Subject:    "Hi",
				Background: "Founder of a startup.",
				KeyPoints:  []string{"wants intro", "has demo"},
			},
		},
		{
			name:  "blank line right after heading",
			input: "Background:\n\nIntro text.\n\nKey Points:\n\n• a",
			want: Sections{
				Subject:    DefaultSubject,
				Background: "Intro text.",
				KeyPoints:  []string{"a"},
			},
		},
		{
			name:  "blank line ends a section",
			input: "Key Points:\n• a\n\n• not a key point",
			want: Sections{
				Subject:   DefaultSubject,
				KeyPoints: []string{"a"},
			},
		},
		{
			name:  "indented bullets and empty markers",
			input: "Key Points:\n   •   spaced   \n-\n  - dashed",
			want: Sections{
				Subject:   DefaultSubject,
				KeyPoints: []string{"spaced", "dashed"},
			},
		},
		{
			name:  "step markers",
			input: "Next Steps:\n1. first\n2.second\n- third\n• fourth\n10. tenth",
			want: Sections{
				Subject:   DefaultSubject,
				NextSteps: []string{"first", "second", "third", "fourth", "tenth"},
			},
		},
		{
			name:  "heading present but empty",
			input: "Technical Details:\n\nNext Steps:\n",
			want: Sections{
				Subject:          DefaultSubject,
				TechnicalDetails: []string{},
				NextSteps:        []string{},
			},
		},
		{
			name:  "empty subject falls back",
			input: "Subject:   \nBackground:\nx",
			want: Sections{
				Subject:    DefaultSubject,
				Background: "x",
			},
		},
		{
			name:  "garbage",
			input: "I cannot help with that.",
			want:  Sections{Subject: DefaultSubject},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ParseSections(tt.input))
		})
	}
}

func TestSections_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		missing []string
	}{
		{
			name:    "missing background",
			input:   "Subject: Hi\n\nKey Points:\n• a",
			missing: []string{"background"},
		},
		{
			name:    "missing key points",
			input:   "Subject: Hi\n\nBackground:\nIntro",
			missing: []string{"key points"},
		},
		{
			name:    "both missing even with subject",
			input:   "Subject: Hi",
			missing: []string{"background", "key points"},
		},
		{
			name:    "key points heading without items",
			input:   "Background:\nIntro\n\nKey Points:\n",
			missing: []string{"key points"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ParseSections(tt.input).Validate()
			require.ErrorIs(t, err, ErrSynthesisValidation)
			for _, m := range tt.missing {
				require.Contains(t, err.Error(), m)
			}
		})
	}
}
