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

// Package segment splits chapter text into classified paragraphs.
//
// The Segmenter makes a single pass over the lines of a text. Paragraphs are
// closed on blank lines, on headings and on dialogue openers once the open
// block is long enough. Each kept paragraph is classified as description,
// narrative, dialogue, mixed or meta and given a descriptiveness score in
// [0,1] that the boundary detector uses to start and extend descriptions.
package segment
