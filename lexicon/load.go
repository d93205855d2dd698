package lexicon

import (
	"fmt"
	"os"

	"github.com/poiesic/scenic/core"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML lexicon definition from disk.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon %s: %w", path, err)
	}
	return Parse(data)
}

// Parse compiles a YAML lexicon definition. When the definition names a
// built-in language in Extends, it is merged over that definition.
func Parse(data []byte) (*Lexicon, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	if def.Extends != "" {
		base, err := BuiltinDefinition(def.Extends)
		if err != nil {
			return nil, err
		}
		def = Merge(base, def)
	}
	return New(def)
}

// Merge overlays a definition on a base. Word lists are appended to the
// base lists; pattern lists replace the base patterns only when set.
func Merge(base, overlay Definition) Definition {
	out := base
	out.Extends = ""
	if overlay.Language != "" {
		out.Language = overlay.Language
	}
	if overlay.MaxStemSuffix > 0 {
		out.MaxStemSuffix = overlay.MaxStemSuffix
	}

	out.VisualCategories = make(map[string][]string, len(base.VisualCategories))
	for k, v := range base.VisualCategories {
		out.VisualCategories[k] = concat(v, nil)
	}
	for k, v := range overlay.VisualCategories {
		out.VisualCategories[k] = concat(out.VisualCategories[k], v)
	}

	out.TypeIndicators = make(map[core.DescriptionType][]string, len(base.TypeIndicators))
	for k, v := range base.TypeIndicators {
		out.TypeIndicators[k] = concat(v, nil)
	}
	for k, v := range overlay.TypeIndicators {
		out.TypeIndicators[k] = concat(out.TypeIndicators[k], v)
	}

	out.DescriptiveMarkers = concat(base.DescriptiveMarkers, overlay.DescriptiveMarkers)
	out.ActionMarkers = concat(base.ActionMarkers, overlay.ActionMarkers)
	out.StopSignals = concat(base.StopSignals, overlay.StopSignals)
	out.ContinuationSignals = concat(base.ContinuationSignals, overlay.ContinuationSignals)
	out.Pronouns = concat(base.Pronouns, overlay.Pronouns)
	out.Adjectives = concat(base.Adjectives, overlay.Adjectives)
	out.AdjectiveSuffixes = concat(base.AdjectiveSuffixes, overlay.AdjectiveSuffixes)
	out.VerbSuffixes = concat(base.VerbSuffixes, overlay.VerbSuffixes)
	out.StopWords = concat(base.StopWords, overlay.StopWords)
	out.PlaceKeywords = concat(base.PlaceKeywords, overlay.PlaceKeywords)
	out.NameTitles = concat(base.NameTitles, overlay.NameTitles)
	out.NameSuffixes = concat(base.NameSuffixes, overlay.NameSuffixes)
	out.DialogueOpeners = concat(base.DialogueOpeners, overlay.DialogueOpeners)

	if len(overlay.HeadingPatterns) > 0 {
		out.HeadingPatterns = concat(overlay.HeadingPatterns, nil)
	}
	if len(overlay.EpigraphPatterns) > 0 {
		out.EpigraphPatterns = concat(overlay.EpigraphPatterns, nil)
	}
	if len(overlay.Antipatterns) > 0 {
		out.Antipatterns = concat(overlay.Antipatterns, nil)
	}
	return out
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
