// Package testtext holds narrative fixtures shared by package tests.
package testtext

import "strings"

// Valley is a single descriptive paragraph of a little over 2200 runes.
var Valley = strings.Join([]string{
	"The valley lay wide and silent beneath a pale autumn sky, and the river wound through it like a ribbon of dull silver.",
	"On the far bank stood an old stone mill, its grey walls covered with dark green moss and its wooden wheel long since still.",
	"Tall pines rose behind it in dense rows, their black trunks straight as columns, their needles heavy with the cold mist of the morning.",
	"A narrow road of yellow clay ran along the water, past low hedges of wild roses and a crooked fence of weathered timber.",
	"Farther on, the meadow climbed toward a round hill crowned with a ruined tower, whose broken arches framed the shifting clouds.",
	"The light was soft and golden there, and the long shadows of the birches stretched across the grass in slender blue lines.",
	"Below the tower the slope was covered with ferns and grey rocks, and a thin stream glittered between them on its way to the river.",
	"Beyond the hill the forest began, vast and dark, its edge marked by a line of ancient oaks with gnarled branches and rough bark.",
	"Small white flowers grew in the damp hollows, and the air smelled of wet earth, smoke and the faint sweetness of fallen apples.",
	"Far to the east the mountains stood like a blue wall against the horizon, their peaks white with the first thin snow of the year.",
	"The whole landscape seemed calm and ancient, as if the valley had been resting in the same quiet light for many hundred years.",
	"Even the village at the bend of the river looked small and gentle, its red roofs and white chimneys half hidden in the amber trees.",
	"Above it all the sky was high and clear, and a few dark birds circled slowly over the fields before settling on the mill roof.",
	"The water near the old wheel was deep and glassy, and in it the stone walls, the pines and the pale clouds were mirrored in soft colors.",
	"To the south the meadows opened into a broad plain of brown stubble, where the last sheaves of wheat stood like small golden huts.",
	"Along the edge of the plain ran a row of tall poplars, their silver leaves trembling in the faint wind that came down from the hills.",
	"Between the poplars and the river lay a strip of marsh, green and brown, with tufts of reeds and dark pools that held the light of the evening sky.",
}, " ")

// Castle is a one-paragraph location description.
const Castle = "The old stone castle stood on the green hill above the wide river. " +
	"Its grey walls were covered with dark moss, and the narrow windows of the tower glowed with pale golden light. " +
	"Beyond the gate a long road wound down into the valley, where the forest lay silent under a soft white mist."

// Portrait is a one-paragraph character description.
const Portrait = "The stranger was a tall man with a pale, narrow face and dark grey eyes that seemed older than the rest of him. " +
	"His black hair was long and streaked with silver, his beard was cut short, and a thin white scar ran across his brow. " +
	"He wore a heavy brown coat of rough wool, worn at the shoulders, and his boots were covered with the red dust of the road."

// Hall and Gallery form a two-paragraph description.
const (
	Hall = "The great hall was long and dim, lit only by the red glow of the fire and a few tall candles on the iron stands. " +
		"Faded tapestries hung on the stone walls, their blue and golden threads dark with smoke, and the high ceiling was lost in shadow."

	Gallery = "Beyond the hearth a narrow stair of black oak climbed to a gallery, where the light of the candles barely reached " +
		"and the carved columns stood like a row of silent grey trees."
)

// Gossip is a narrative paragraph with no visual content.
const Gossip = "They talked for a while about the harvest and the prices in town, and about the neighbor who had borrowed " +
	"the cart in spring and never returned it."

// Dialogue lines.
const (
	Question = `"Are you coming?" she asked.`
	Answer   = `"In a minute," he said. "Let me look at the valley a little longer."`
	Warning  = `"We should go inside," said Anna. "It will be dark soon, and the road is long."`
	Whisper  = `"Who is he?" she whispered to her brother, who did not answer.`
)

// IsolatedValley surrounds Valley with short dialogue lines.
var IsolatedValley = strings.Join([]string{Question, Valley, Answer}, "\n\n")

// Chapter holds a heading and three separate descriptions: Castle at
// paragraph 1, Hall with Gallery at 3-4 and Portrait at 6.
var Chapter = strings.Join([]string{
	"Chapter 1",
	Castle,
	Warning,
	Hall,
	Gallery,
	Gossip,
	Portrait,
	Whisper,
}, "\n\n")

// ShortLines are three narrative paragraphs each below the minimum
// paragraph length.
const ShortLines = "It was late.\n\nThe door creaked.\n\nShe slept."
