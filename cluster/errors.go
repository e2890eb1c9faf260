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


package cluster

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrInvalidBuildConfig is returned when build parameters are inconsistent.
	ErrInvalidBuildConfig = errors.New("invalid build config")

	// ErrInsufficientCorpus is returned when the document corpus holds fewer
	// documents than the configured minimum support set size.
	ErrInsufficientCorpus = errors.New("corpus smaller than minimum support set")

	// ErrEmptyTopicSet is returned when classification is attempted with no topics.
	ErrEmptyTopicSet = errors.New("topic set is empty")

	// ErrMissingPrototype is returned when a topic lacks a computed prototype.
	ErrMissingPrototype = errors.New("topic has no prototype")

	// ErrDimensionMismatch is returned when corpus embeddings do not share a
	// single dimensionality.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
