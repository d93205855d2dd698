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

import "strings"

// stripCodeFence removes a markdown code fence around a response.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// repairJSON attempts to fix common JSON formatting issues from LLM responses.
// It handles missing opening quotes before keys and trailing commas before a
// closing bracket or brace.
func repairJSON(s string) string {
	result := []rune(s)
	fixed := make([]rune, 0, len(result)+16)

	inString := false
	i := 0
	for i < len(result) {
		ch := result[i]

		if inString {
			fixed = append(fixed, ch)
			if ch == '\\' && i+1 < len(result) {
				fixed = append(fixed, result[i+1])
				i += 2
				continue
			}
			if ch == '"' {
				inString = false
			}
			i++
			continue
		}

		switch {
		case ch == '"':
			inString = true
			fixed = append(fixed, ch)
			i++

		case ch == ',' && nextSignificant(result, i+1) != 0 && strings.ContainsRune("]}", nextSignificant(result, i+1)):
			// Trailing comma: drop it.
			i++

		case ch == '{' || ch == ',':
			fixed = append(fixed, ch)
			i++
			for i < len(result) && isSpace(result[i]) {
				fixed = append(fixed, result[i])
				i++
			}
			// An unquoted key followed by `":` lost its opening quote.
			if i < len(result) && isLetter(result[i]) {
				keyStart := i
				for i < len(result) && (isLetter(result[i]) || result[i] == '_') {
					i++
				}
				if i+1 < len(result) && result[i] == '"' && result[i+1] == ':' {
					fixed = append(fixed, '"')
					fixed = append(fixed, result[keyStart:i]...)
					fixed = append(fixed, '"')
					i++
					continue
				}
				fixed = append(fixed, result[keyStart:i]...)
			}

		default:
			fixed = append(fixed, ch)
			i++
		}
	}

	return string(fixed)
}

// nextSignificant returns the first non-space rune at or after i, or 0.
func nextSignificant(rs []rune, i int) rune {
	for ; i < len(rs); i++ {
		if !isSpace(rs[i]) {
			return rs[i]
		}
	}
	return 0
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}

// isLetter returns true if the rune is an ASCII letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
