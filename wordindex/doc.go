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


// Package wordindex provides an in-memory nearest-neighbor index over word
// embeddings.
//
// An Index is an immutable snapshot of a word list: every word is embedded
// once at build time, and queries re-embed only the query word. Distance is
// Euclidean (L2) and query results come back in ascending distance order.
// Lookup is a linear scan; word lists in the intended sizes (hundreds to a
// few thousand words) don't justify a spatial index.
//
// An Index can be persisted to a snapshot containing the words, their
// embedding vectors, and the embedding model name. The embedding provider
// itself is never serialized; on load a fresh provider is attached by model
// name and the stored vectors are reused without re-embedding. Vector
// components use a fixed-width binary encoding, so a persist/reload cycle
// reproduces them bit-for-bit.
package wordindex
