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


package wordindex

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrNoWords is returned when an index is built from an empty word list.
	ErrNoWords = errors.New("index requires at least one word")

	// ErrIndexEmpty is returned when an empty index is queried.
	ErrIndexEmpty = errors.New("index is empty")

	// ErrInvalidLimit is returned when a query asks for fewer than one neighbor.
	ErrInvalidLimit = errors.New("k must be positive")

	// ErrNotASnapshot is returned when loaded data is not a recognizable
	// index snapshot.
	ErrNotASnapshot = errors.New("data is not an index snapshot")

	// ErrSnapshotChecksum is returned when a snapshot payload fails its
	// integrity check.
	ErrSnapshotChecksum = errors.New("snapshot checksum mismatch")
)
