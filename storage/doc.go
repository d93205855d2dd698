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

// Package storage provides the persistence abstraction for cached engine
// results.
//
// The only stored artifact is the output of one engine for one chapter text,
// keyed by a content-derived ID. Nothing else the system produces is
// persisted: ProcessingResult values are fresh per call.
//
// # Usage
//
// Open a cache backed by BadgerDB:
//
//	cache, err := badger.NewDescriptionCache("/path/to/cache")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cache.Close()
//
// Use in tests with in-memory storage:
//
//	cache, err := badger.NewMemoryDescriptionCache()
//
// # Thread Safety
//
// All implementations must be safe for concurrent use.
package storage
