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


package corpus

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrColumnNotFound is returned when the designated text column is not in
	// the table header.
	ErrColumnNotFound = errors.New("text column not found in header")

	// ErrEmptyTable is returned when a table has a header but no data rows.
	ErrEmptyTable = errors.New("table has no data rows")

	// ErrClassCountMismatch is returned when the number of classes does not
	// match the number of rows.
	ErrClassCountMismatch = errors.New("class count does not match row count")

	// ErrEmptyWordList is returned when a word list source yields no words.
	ErrEmptyWordList = errors.New("word list is empty")

	// ErrInvalidMaxAttempts is returned when retry is configured with a
	// non-positive attempt count.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")
)
