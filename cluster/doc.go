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


// Package cluster builds topic prototypes from keyword embeddings and
// classifies documents by prototype distance.
//
// A topic prototype is constructed in two stages. First the topic's keywords
// are embedded and averaged into a keyword prototype. Then every document in
// the corpus is scored by cosine similarity against that keyword prototype,
// and a support set of the best-matching documents is selected: at least
// MinDocs documents, at most MaxDocs, preferring documents whose similarity
// meets the configured threshold. The topic prototype is the mean embedding
// of the support set.
//
// Classification assigns each document to the topic whose prototype has the
// highest cosine similarity to the document's embedding. Ties go to the
// topic that appears first in the input sequence, so results are
// deterministic.
//
// Cosine similarity is used for both candidate scoring and classification.
// All input validation happens before any embedding call, so malformed
// topics never cost a model round trip.
package cluster
