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

import (
	"fmt"
	"strings"
)

// ParseTopicArg parses a "name:keyword1,keyword2,..." argument into a Topic.
//
// Returns ErrMalformedTopicArg if the argument does not contain exactly one
// colon, and ErrEmptyTopicName if the name portion is blank. Keyword content
// is not validated here; see ValidateTopics.
func ParseTopicArg(arg string) (*Topic, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedTopicArg, arg)
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptyTopicName, arg)
	}

	var keywords []string
	for _, kw := range strings.Split(parts[1], ",") {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		keywords = append(keywords, kw)
	}

	return &Topic{Name: name, Keywords: keywords}, nil
}

// ParseTopicArgs parses a list of "name:keywords" arguments.
// Returns the first parse error encountered.
func ParseTopicArgs(args []string) ([]*Topic, error) {
	topics := make([]*Topic, 0, len(args))
	for _, arg := range args {
		topic, err := ParseTopicArg(arg)
		if err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	return topics, nil
}

// ValidateTopic validates a single Topic according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Keywords must contain at least one entry
//
// NOT validated (populated by prototype building):
//   - SupportDocs
//   - Prototype
func ValidateTopic(topic *Topic) error {
	if topic == nil {
		return fmt.Errorf("%w: topic is nil", ErrInvalidTopic)
	}

	if topic.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTopic, ErrEmptyTopicName)
	}

	if len(topic.Keywords) == 0 {
		return fmt.Errorf("%w: %w: %q", ErrInvalidTopic, ErrEmptyKeywords, topic.Name)
	}

	return nil
}

// ValidateTopics validates a set of topics, including cross-topic rules.
//
// In addition to the per-topic rules of ValidateTopic, topic names must be
// unique within the set. Returns ErrDuplicateTopicName on a collision.
func ValidateTopics(topics []*Topic) error {
	seen := make(map[string]bool, len(topics))
	for _, topic := range topics {
		if err := ValidateTopic(topic); err != nil {
			return err
		}
		if seen[topic.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateTopicName, topic.Name)
		}
		seen[topic.Name] = true
	}
	return nil
}

// ValidateWordList checks that a word list contains no blank or duplicate
// entries. Returns ErrDuplicateWord on the first collision.
func ValidateWordList(words []string) error {
	seen := make(map[string]bool, len(words))
	for _, word := range words {
		if strings.TrimSpace(word) == "" {
			return fmt.Errorf("word list contains blank entry")
		}
		if seen[word] {
			return fmt.Errorf("%w: %q", ErrDuplicateWord, word)
		}
		seen[word] = true
	}
	return nil
}
