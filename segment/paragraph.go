package segment

// ParagraphType classifies a paragraph by its dominant content.
type ParagraphType string

const (
	TypeDescription ParagraphType = "DESCRIPTION"
	TypeNarrative   ParagraphType = "NARRATIVE"
	TypeDialog      ParagraphType = "DIALOG"
	TypeMixed       ParagraphType = "MIXED"
	TypeMeta        ParagraphType = "META"
)

// Paragraph is one classified block of source text.
// Line numbers are 1-based; offsets are rune offsets into the source text,
// EndOffset exclusive.
type Paragraph struct {
	Text            string
	Type            ParagraphType
	Index           int
	StartLine       int
	EndLine         int
	StartOffset     int
	EndOffset       int
	CharLength      int
	Descriptiveness float64
	HasVisual       bool
	HasDialogue     bool

	// VisualWords holds the distinct visual words of the paragraph in order
	// of appearance.
	VisualWords []string
}

// IsDescriptive reports whether the paragraph carries description, either
// pure or mixed with action or dialogue.
func (p Paragraph) IsDescriptive() bool {
	return p.Type == TypeDescription || p.Type == TypeMixed
}
