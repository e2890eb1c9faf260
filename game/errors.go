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


package game

import "errors"

var (
	// ErrWordSourceRequired is returned when a session is created without
	// a word source.
	ErrWordSourceRequired = errors.New("word source required")

	// ErrInvalidNumChoices is returned when the configured option count is
	// too small to make a playable round.
	ErrInvalidNumChoices = errors.New("num choices must be at least 2")

	// ErrNoActiveRound is returned when a move is made outside a round.
	ErrNoActiveRound = errors.New("no active round")

	// ErrInvalidChoice is returned when the chosen word is not among the
	// current options.
	ErrInvalidChoice = errors.New("word is not a current option")

	// ErrWordPoolExhausted is returned when the word source cannot supply
	// a fresh start/target pair within the sampling budget.
	ErrWordPoolExhausted = errors.New("word pool exhausted")

	// ErrSessionTerminated is returned when a terminated session is used.
	ErrSessionTerminated = errors.New("session terminated")
)
