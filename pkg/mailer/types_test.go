package mailer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSimpleTags_CreatesPresenceOnlyTags(t *testing.T) {
	t.Parallel()

	tags := SimpleTags("summary", "automated")

	require.Len(t, tags, 2)
	require.Equal(t, struct{}{}, tags["summary"])
	require.Equal(t, struct{}{}, tags["automated"])
}

func TestRecipient(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Team <team@example.com>", Recipient("Team", "team@example.com"))
	require.Equal(t, "team@example.com", Recipient("", "team@example.com"))
}

func TestBlock_ListItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block Block
		want  []string
	}{
		{
			name:  "list content is returned as is",
			block: BulletList("one", "two"),
			want:  []string{"one", "two"},
		},
		{
			name:  "scalar content becomes a one-item list",
			block: Block{Kind: BlockBulletList, Text: "single"},
			want:  []string{"single"},
		},
		{
			name:  "empty block has no items",
			block: Block{Kind: BlockBulletList},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.block.ListItems())
		})
	}
}

func TestBlock_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "text", Paragraph("text").String())
	require.Equal(t, "a\nb", BulletList("a", "b").String())
	require.Empty(t, Block{}.String())
}

func TestBlockKind_Known(t *testing.T) {
	t.Parallel()

	for _, k := range []BlockKind{BlockParagraph, BlockBulletList, BlockHeading, BlockSignature, BlockCallout} {
		require.True(t, k.Known(), k)
	}
	require.False(t, BlockKind("table").Known())
}

func TestProviderError(t *testing.T) {
	t.Parallel()

	cause := errors.New("network unreachable")
	err := error(&ProviderError{
		Provider:      "resend",
		Err:           cause,
		Attempts:      3,
		LastAttemptAt: time.Now(),
	})

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "resend")
	require.Contains(t, err.Error(), "3 attempt(s)")

	var perr *ProviderError
	require.ErrorAs(t, errors.Join(ErrSendFailed, err), &perr)
	require.Equal(t, 3, perr.Attempts)
}
