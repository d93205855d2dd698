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

package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidDescription indicates a RawDescription failed validation.
	ErrInvalidDescription = errors.New("invalid description")

	// ErrEmptyContent indicates the Content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidDescriptionType indicates an unknown DescriptionType value.
	ErrInvalidDescriptionType = errors.New("invalid description type")

	// ErrInvalidMode indicates an unknown processing Mode value.
	ErrInvalidMode = errors.New("invalid processing mode")

	// ErrInvalidScore indicates a confidence score outside [0,1].
	ErrInvalidScore = errors.New("confidence score must be between 0 and 1")

	// ErrInvalidPosition indicates inconsistent character offsets.
	ErrInvalidPosition = errors.New("invalid position")
)
