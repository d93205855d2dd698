package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/poiesic/scenic/lexicon"
)

const (
	// DefaultMinParagraphLength is the shortest paragraph kept, in runes.
	DefaultMinParagraphLength = 50

	// DefaultDialogueBreakLength is the block length after which a
	// dialogue opener starts a new paragraph.
	DefaultDialogueBreakLength = 200
)

// Config holds segmentation thresholds.
type Config struct {
	MinParagraphLength  int
	DialogueBreakLength int
}

// DefaultConfig returns the default segmentation thresholds.
func DefaultConfig() Config {
	return Config{
		MinParagraphLength:  DefaultMinParagraphLength,
		DialogueBreakLength: DefaultDialogueBreakLength,
	}
}

// Option configures a Segmenter.
type Option func(*Segmenter) error

// WithConfig replaces the segmentation thresholds.
func WithConfig(cfg Config) Option {
	return func(s *Segmenter) error {
		if cfg.MinParagraphLength < 0 || cfg.DialogueBreakLength < 0 {
			return ErrInvalidConfig
		}
		s.cfg = cfg
		return nil
	}
}

// WithMinParagraphLength sets the shortest paragraph kept.
func WithMinParagraphLength(n int) Option {
	return func(s *Segmenter) error {
		if n < 0 {
			return ErrInvalidConfig
		}
		s.cfg.MinParagraphLength = n
		return nil
	}
}

// Segmenter splits text into classified paragraphs. It holds no mutable
// state and is safe for concurrent use.
type Segmenter struct {
	lex *lexicon.Lexicon
	cfg Config
}

// New creates a Segmenter for the given lexicon.
func New(lex *lexicon.Lexicon, opts ...Option) (*Segmenter, error) {
	if lex == nil {
		return nil, ErrLexiconRequired
	}
	s := &Segmenter{lex: lex, cfg: DefaultConfig()}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Lexicon returns the lexicon the segmenter classifies with.
func (s *Segmenter) Lexicon() *lexicon.Lexicon {
	return s.lex
}

// block accumulates the lines of the paragraph being built.
type block struct {
	lines       []string
	startLine   int
	endLine     int
	startOffset int
	endOffset   int
	runes       int
}

func (b *block) empty() bool { return len(b.lines) == 0 }

func (b *block) add(text string, lineNo, start, end int) {
	if b.empty() {
		b.startLine = lineNo
		b.startOffset = start
	} else {
		b.runes++ // joining space
	}
	b.lines = append(b.lines, text)
	b.endLine = lineNo
	b.endOffset = end
	b.runes += utf8.RuneCountInString(text)
}

func (b *block) reset() {
	*b = block{}
}

// Segment splits text into paragraphs. Short and boilerplate paragraphs
// are dropped; headings are kept as META paragraphs whatever their length.
func (s *Segmenter) Segment(text string) []Paragraph {
	var (
		out    []Paragraph
		cur    block
		offset int
	)

	flush := func() {
		if cur.empty() {
			return
		}
		joined := strings.Join(cur.lines, " ")
		if cur.runes >= s.cfg.MinParagraphLength && !s.lex.IsAntipattern(joined) {
			p := s.classify(joined)
			p.Index = len(out)
			p.StartLine, p.EndLine = cur.startLine, cur.endLine
			p.StartOffset, p.EndOffset = cur.startOffset, cur.endOffset
			p.CharLength = cur.runes
			out = append(out, p)
		}
		cur.reset()
	}

	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1
		lineRunes := utf8.RuneCountInString(line)
		trimmed := strings.TrimSpace(line)
		lead := utf8.RuneCountInString(line) - utf8.RuneCountInString(strings.TrimLeftFunc(line, unicode.IsSpace))
		start := offset + lead
		end := start + utf8.RuneCountInString(trimmed)
		offset += lineRunes + 1

		switch {
		case trimmed == "":
			flush()
		case s.lex.IsHeading(trimmed):
			flush()
			out = append(out, Paragraph{
				Text:        trimmed,
				Type:        TypeMeta,
				Index:       len(out),
				StartLine:   lineNo,
				EndLine:     lineNo,
				StartOffset: start,
				EndOffset:   end,
				CharLength:  utf8.RuneCountInString(trimmed),
			})
		default:
			if s.lex.StartsWithDialogue(trimmed) && cur.runes >= s.cfg.DialogueBreakLength {
				flush()
			}
			cur.add(trimmed, lineNo, start, end)
		}
	}
	flush()

	return out
}
