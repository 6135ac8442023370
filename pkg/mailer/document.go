package mailer

// BlockKind identifies how a content block is rendered.
type BlockKind string

// Supported block kinds. The set is closed: FormatBlock handles each of them
// explicitly and reserves its fallback for kinds arriving from outside it.
const (
	BlockParagraph  BlockKind = "paragraph"
	BlockBulletList BlockKind = "bulletList"
	BlockHeading    BlockKind = "heading"
	BlockSignature  BlockKind = "signature"
	BlockCallout    BlockKind = "callout"
)

// Known reports whether k belongs to the supported set of block kinds.
func (k BlockKind) Known() bool {
	switch k {
	case BlockParagraph, BlockBulletList, BlockHeading, BlockSignature, BlockCallout:
		return true
	}
	return false
}

// Priority of a document. High priority documents use the notification template.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// BlockMetadata carries optional presentation hints for a block.
type BlockMetadata struct {
	ClassName string `json:"className,omitempty" yaml:"className,omitempty"`
	Style     string `json:"style,omitempty" yaml:"style,omitempty"`
}

// Block is one typed unit of an email document.
//
// Scalar content lives in Text; list content lives in Items. A bullet list
// built from a single string is normalized to a one-item list before rendering.
type Block struct {
	Metadata *BlockMetadata `json:"metadata,omitempty"`
	Kind     BlockKind      `json:"type"`
	Text     string         `json:"text,omitempty"`
	Items    []string       `json:"items,omitempty"`
}

// Paragraph creates a paragraph block.
func Paragraph(text string) Block {
	return Block{Kind: BlockParagraph, Text: text}
}

// Heading creates a heading block.
func Heading(text string) Block {
	return Block{Kind: BlockHeading, Text: text}
}

// BulletList creates a bullet list block.
func BulletList(items ...string) Block {
	return Block{Kind: BlockBulletList, Items: items}
}

// Signature creates a signature block.
func Signature(text string) Block {
	return Block{Kind: BlockSignature, Text: text}
}

// Callout creates a callout block.
func Callout(text string) Block {
	return Block{Kind: BlockCallout, Text: text}
}

// ListItems returns the block content as an ordered list of strings.
// Scalar content becomes a one-item list; an empty block yields nil.
func (b Block) ListItems() []string {
	if len(b.Items) > 0 {
		return b.Items
	}
	if b.Text != "" {
		return []string{b.Text}
	}
	return nil
}

// String returns the block content coerced to a single string.
func (b Block) String() string {
	if b.Text != "" || len(b.Items) == 0 {
		return b.Text
	}
	out := b.Items[0]
	for _, item := range b.Items[1:] {
		out += "\n" + item
	}
	return out
}

// className returns the block class hint or an empty string.
func (b Block) className() string {
	if b.Metadata == nil {
		return ""
	}
	return b.Metadata.ClassName
}

// style returns the block inline style hint or an empty string.
func (b Block) style() string {
	if b.Metadata == nil {
		return ""
	}
	return b.Metadata.Style
}

// DocumentMetadata describes the intent of a document.
type DocumentMetadata struct {
	Tone         string   `json:"tone"`
	Intent       string   `json:"intent"`
	Priority     Priority `json:"priority"`
	ShowPriority bool     `json:"showPriority,omitempty"`
}

// Document is a typed email: a subject, ordered content blocks and metadata.
// A document is handed to the renderer once and is not mutated afterwards.
type Document struct {
	Subject  string           `json:"subject"`
	Blocks   []Block          `json:"blocks"`
	Metadata DocumentMetadata `json:"metadata"`
}
