package lexicon

import "github.com/poiesic/scenic/core"

// EnglishDefinition returns the built-in English lexicon definition.
func EnglishDefinition() Definition {
	return Definition{
		Language:      "en",
		MaxStemSuffix: 3,
		VisualCategories: map[string][]string{
			"color": {
				"red", "reddish", "crimson", "scarlet", "blue", "bluish", "azure", "green*", "emerald",
				"yellow*", "golden", "gold", "amber", "white", "whitish", "black*", "grey*", "gray*",
				"silver*", "purple", "violet", "pink", "brown*", "orange", "ochre", "pale*",
				"dark", "darker", "bright*", "russet", "ivory", "copper*", "colored", "coloured",
			},
			"light": {
				"light", "lights", "lit", "shadow*", "shade*", "glow*", "gleam*", "glitter*",
				"shimmer*", "sparkl*", "shine", "shone", "shining", "gloom*", "dim", "dimly",
				"dusk", "dawn", "sunlit", "sunlight", "moonlight", "moonlit", "lamp*", "candle*",
				"flicker*", "radian*", "lumin*", "twilight", "haze", "hazy", "glare", "blaz*",
			},
			"texture": {
				"rough*", "smooth*", "soft*", "velvet*", "silk*", "coarse", "jagged", "polish*",
				"worn", "moss*", "crack*", "brittle", "sleek", "damp", "wet", "dust*", "rust*",
				"weathered", "gnarled", "crumbl*", "glossy",
			},
			"form": {
				"tall", "taller", "huge", "vast", "narrow*", "wide", "broad", "round*", "curv*",
				"arch*", "spire*", "slender", "massive", "tiny", "small", "long", "low", "steep",
				"towering", "looming", "enormous", "crooked",
			},
			"material": {
				"stone*", "wood", "wooden", "timber", "brick*", "marble", "granite", "iron",
				"steel", "glass", "crystal*", "oak*", "pine*", "clay", "leather", "linen", "wool*",
				"bronze", "tapestr*",
			},
			"nature": {
				"tree*", "forest*", "woods", "leaf", "leaves", "grass*", "meadow*", "field*",
				"hill*", "mountain*", "river*", "stream*", "lake*", "sea", "seas", "ocean*",
				"shore*", "cliff*", "valley*", "garden*", "flower*", "blossom*", "rose", "roses",
				"ivy", "fern*", "reed*", "rock*", "sand*", "snow*", "ice", "frost*", "water*",
			},
			"sky": {
				"sky", "skies", "cloud*", "mist*", "fog*", "rain*", "wind*", "storm*", "sun",
				"sunny", "moon", "stars", "starry", "horizon*", "sunset*", "sunrise*",
			},
			"space": {
				"hall*", "room*", "corridor*", "window*", "wall*", "roof*", "door*", "gate*",
				"stair*", "ceiling*", "floor*", "chamber*", "courtyard*", "street*", "square*",
				"bridge*", "column*", "balcon*", "tower*",
			},
		},
		DescriptiveMarkers: []string{
			"was", "were", "seemed", "seem", "seems", "resembled", "resembles", "looked", "appeared",
			"stood", "lay", "rose", "stretched", "hung", "covered", "filled", "surrounded", "like",
			"stretch", "loomed", "spread", "framed", "lined",
		},
		ActionMarkers: []string{
			"ran", "run", "grabbed", "jumped", "shouted", "struck", "rushed", "fought", "threw",
			"pulled", "pushed", "kicked", "fled", "attacked", "screamed", "hurried", "seized",
			"dashed", "ducked", "fired", "yelled", "slammed", "sprinted",
		},
		StopSignals: []string{
			"suddenly", "meanwhile", "abruptly", "all of a sudden", "at that moment", "just then",
		},
		ContinuationSignals: []string{
			"also", "besides", "moreover", "further", "beyond", "nearby", "above", "below",
			"behind", "around", "there", "here", "beside", "and", "farther", "overhead",
			"in the distance", "to the left", "to the right", "on the other side", "at the far end",
		},
		Pronouns: []string{
			"he", "she", "it", "they", "his", "her", "its", "their", "this", "these", "those", "that",
		},
		TypeIndicators: map[core.DescriptionType][]string{
			core.DescriptionTypeLocation: {
				"room*", "hall*", "house*", "castle*", "city", "town*", "street*", "village*",
				"forest*", "field*", "valley*", "river*", "mountain*", "garden*", "road*",
				"square*", "bridge*", "tower*", "church*", "palace*", "courtyard*", "shore*",
				"landscape*", "horizon*", "building*", "wall*", "window*", "gate*", "path*",
				"chamber*", "cellar*", "library", "market*", "harbor*", "island*", "meadow*",
				"hill*", "lake*", "cave*", "ruin*",
			},
			core.DescriptionTypeCharacter: {
				"face*", "eyes", "eye", "hair*", "lips", "nose", "cheek*", "brow*", "hand*",
				"finger*", "shoulder*", "figure*", "beard*", "smile*", "gaze*", "voice*",
				"skin", "dress*", "coat*", "cloak*", "boots", "hat", "woman", "man", "girl*",
				"boy*", "stranger*", "wrinkl*", "posture", "forehead*",
			},
			core.DescriptionTypeAtmosphere: {
				"silence", "silent*", "quiet*", "stillness", "mood*", "gloom*", "melanchol*",
				"calm*", "peace*", "tension", "dread*", "myster*", "eerie", "solemn*", "cozy",
				"warmth", "chill*", "fear*", "hush*", "loneliness", "sorrow*", "joy*", "serene*",
				"ominous*", "scent*", "smell*", "fragran*", "air",
			},
			core.DescriptionTypeObject: {
				"sword*", "book*", "box*", "chest*", "table*", "chair*", "lamp*", "mirror*",
				"ring*", "key*", "cup*", "bottle*", "clock*", "letter*", "map*", "painting*",
				"portrait*", "vase*", "carpet*", "candle*", "jewel*", "crown*", "knife", "bag*",
				"statue*", "bed", "desk*", "shelf", "shelves",
			},
		},
		Adjectives: []string{
			"old", "ancient", "new", "young", "quiet", "silent", "cold", "warm", "heavy", "empty",
			"deep", "thick", "thin", "sharp", "strange", "beautiful", "ugly", "lonely", "gentle",
			"fresh", "faint", "distant", "great", "little", "high", "full", "bare", "rich", "grand",
		},
		AdjectiveSuffixes: []string{"ous", "ful", "ive", "able", "ible", "ish", "less", "ic", "ant", "ent"},
		VerbSuffixes:      []string{"ed", "ing"},
		StopWords: []string{
			"a", "an", "the", "and", "or", "but", "if", "of", "in", "on", "at", "to", "by", "for",
			"with", "from", "into", "onto", "over", "under", "as", "is", "are", "was", "were", "be",
			"been", "being", "had", "has", "have", "do", "did", "does", "not", "no", "so", "than",
			"then", "there", "here", "that", "this", "these", "those", "he", "she", "it", "they",
			"his", "her", "its", "their", "we", "you", "i", "me", "him", "them", "us", "our", "my",
			"which", "who", "whom", "what", "when", "where", "while", "all", "each", "every", "some",
			"any", "one", "only", "very", "too", "also", "just", "about", "through", "between",
		},
		PlaceKeywords: []string{
			"city", "cities", "town*", "village*", "street*", "river*", "mountain*", "castle*",
			"forest*", "kingdom*", "road*", "lake*", "sea", "country", "capital", "avenue*",
			"square*", "harbor*", "valley*", "province*",
		},
		NameTitles: []string{
			"mr", "mrs", "miss", "ms", "sir", "lady", "lord", "captain", "doctor", "dr",
			"professor", "prince", "princess", "king", "queen", "count", "countess", "uncle", "aunt",
		},
		DialogueOpeners: []string{"—", "–", "-", `"`, "«", "“", "„"},
		HeadingPatterns: []string{
			`(?i)^(chapter|part|book)\s+([0-9]+|[ivxlcdm]+|one|two|three|four|five|six|seven|eight|nine|ten)\b`,
			`^[IVXLCDM]+\.?$`,
			`^\*(\s*\*){2,}$`,
		},
		EpigraphPatterns: []string{`(?i)^epigraph\b`},
		Antipatterns: []string{
			`^\d+$`,
			`(?i)^(copyright|isbn|all rights reserved)`,
			`^©`,
			`(?i)^page\s+\d+`,
			`^[\p{P}\p{S}\s]+$`,
		},
	}
}
