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

package engine

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when maxAttempts is not positive.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrEngineRequired is returned when a decorator is given no engine.
	ErrEngineRequired = errors.New("engine required")

	// ErrCacheRequired is returned when the cache decorator is given no cache.
	ErrCacheRequired = errors.New("description cache required")

	// ErrUnavailable is returned by engines whose backend cannot be reached.
	ErrUnavailable = errors.New("engine unavailable")
)
