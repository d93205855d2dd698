package llm

import (
	"strings"

	"github.com/poiesic/scenic/lexicon"
)

// chunk is a slice of the source text and its rune offset.
type chunk struct {
	text   string
	offset int
}

// splitChunks cuts text at paragraph breaks into chunks of at most maxRunes
// runes. A single paragraph longer than maxRunes is cut at the limit.
func splitChunks(text string, maxRunes int) []chunk {
	if lexicon.RuneLen(text) <= maxRunes {
		return []chunk{{text: text}}
	}

	var (
		chunks  []chunk
		current strings.Builder
		start   int // rune offset of current
		pos     int // rune offset of the next paragraph
		curLen  int
	)
	flush := func() {
		if curLen > 0 {
			chunks = append(chunks, chunk{text: current.String(), offset: start})
		}
		current.Reset()
		curLen = 0
	}

	paras := strings.SplitAfter(text, "\n\n")
	for _, p := range paras {
		n := lexicon.RuneLen(p)
		if curLen > 0 && curLen+n > maxRunes {
			flush()
		}
		if curLen == 0 {
			start = pos
		}
		for n > maxRunes {
			runes := []rune(p)
			chunks = append(chunks, chunk{text: string(runes[:maxRunes]), offset: pos})
			p = string(runes[maxRunes:])
			pos += maxRunes
			start = pos
			n -= maxRunes
		}
		current.WriteString(p)
		curLen += n
		pos += n
	}
	flush()
	return chunks
}
