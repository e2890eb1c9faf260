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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidTopic indicates a Topic failed validation.
	ErrInvalidTopic = errors.New("invalid topic")

	// ErrEmptyKeywords indicates a topic has no keywords.
	ErrEmptyKeywords = errors.New("topic must have at least one keyword")

	// ErrEmptyTopicName indicates a topic has an empty name.
	ErrEmptyTopicName = errors.New("topic name cannot be empty")

	// ErrDuplicateTopicName indicates two topics share a name.
	ErrDuplicateTopicName = errors.New("topics must have unique names")

	// ErrMalformedTopicArg indicates a topic argument is not of the form
	// "name:keyword1,keyword2,...".
	ErrMalformedTopicArg = errors.New("topics must be specified as 'name:keyword1,keyword2,...'")

	// ErrDuplicateWord indicates a word list contains the same word twice.
	ErrDuplicateWord = errors.New("word list contains duplicate word")
)
