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


// Package storage provides the storage abstraction layer for embedkit.
//
// This package defines the WordStore interface that decouples the persistent
// word bank from its backing database, plus binary serialization helpers for
// the domain types that cross a storage boundary.
//
// # Constructor Return Type Pattern
//
// Public constructors in implementation packages return the storage
// interface, not the concrete type:
//
//	store, err := badger.NewWordStore(backend)  // returns storage.WordStore
//
// This keeps consumers decoupled from BadgerDB specifics and lets tests use
// the in-memory constructor without modification.
//
// # Thread Safety
//
// All WordStore implementations must be thread-safe and support concurrent
// access from multiple goroutines.
package storage
