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

// Package extractor runs the single-engine description pipeline.
//
// An Extractor chains paragraph segmentation, boundary detection and
// five-factor scoring, filters the scored descriptions by confidence and
// ranks them by overall score times length priority. Empty or
// description-free text yields an empty result, never an error.
package extractor
