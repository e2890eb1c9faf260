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


// Package game implements a word-association navigation game over a word
// embedding space.
//
// Each round picks a random start word and target word from a WordSource.
// The player walks from the start toward the target by repeatedly choosing
// one of a small set of nearest-neighbor options of the current word.
// Choosing the target wins the round; running out of unvisited neighbors
// ends it without a win. The session accumulates the embedding-space
// distance traveled along the chosen path.
//
// Options never include words already on the path, so the player cannot
// loop. Consecutive rounds never reuse the previous round's start or
// target word.
package game
