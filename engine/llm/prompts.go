// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package llm

import (
	"fmt"
	"strings"

	"github.com/poiesic/scenic/core"
)

const responseSchema = `{
  "type": "object",
  "properties": {
    "descriptions": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "content": {
            "type": "string"
          },
          "type": {
            "type": "string"
          },
          "confidence": {
            "type": "number",
            "minimum": 0,
            "maximum": 1
          },
          "entities": {
            "type": "array",
            "items": {"type": "string"}
          }
        },
        "required": ["content", "type", "confidence"],
        "additionalProperties": false
      }
    }
  },
  "required": ["descriptions"],
  "additionalProperties": false
}`

const extractionPromptTemplate = `Find the passages of the given text that describe what a scene looks like and
return them as JSON. The passages will be used as prompts for image generation.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Copy each passage verbatim from the text. Do not summarize, shorten or rephrase.
- A passage is one or more consecutive paragraphs of at least %d characters.
- Type field must match exactly one of the listed values: %s.
- Confidence is a number from 0 (barely visual) to 1 (a complete, vivid picture).
- Entities lists the proper names mentioned in the passage.
- Skip dialogue, action sequences and passages without visual detail.
- If no passages qualify, return "descriptions": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "Chapter 2\n\nThe old mill stood at the edge of the village, its grey stones green with moss and its wheel silent above the dark water.\n\n\"Come on,\" said Tom."
Output:
{
  "descriptions": [
    {"content":"The old mill stood at the edge of the village, its grey stones green with moss and its wheel silent above the dark water.","type":"location","confidence":0.8,"entities":[]}
  ]
}`

// buildSystemPrompt creates the system prompt with description types embedded.
func buildSystemPrompt(minLength int) string {
	types := make([]string, 0, len(core.DescriptionTypes))
	for _, t := range core.DescriptionTypes {
		types = append(types, string(t))
	}
	return fmt.Sprintf(extractionPromptTemplate, responseSchema, minLength, strings.Join(types, ", "))
}
