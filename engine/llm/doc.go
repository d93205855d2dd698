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

// Package llm implements an extraction engine backed by an OpenAI-compatible
// chat completion service.
//
// The engine sends chapter text in paragraph-aligned chunks, asks the model
// for a JSON list of visual descriptions and maps each answer back to its
// position in the source text.
//
// # Configuration
//
// The engine reads config.Settings.LLM:
//
//	settings := config.NewSettings(
//	    config.WithEngineEnabled(config.EngineLLM, true),
//	    config.WithLLMHost("http://localhost:11434"),
//	    config.WithLLMModel("qwen2.5:3b"),
//	)
//
// Local servers (Ollama, llama.cpp, vLLM) accept any token; hosted services
// need Settings.LLM.Token.
//
// # Error Handling
//
// Transport failures and malformed responses are retried with exponential
// backoff up to Settings.LLM.MaxRetries attempts. The last error is returned
// and the calling strategy records the engine as failed.
package llm
