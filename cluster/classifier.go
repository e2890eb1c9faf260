package cluster

import (
	"fmt"

	"github.com/poiesic/embedkit/core"
)

// Classify assigns each document to the topic whose prototype has the
// highest cosine similarity to the document's embedding. The result holds
// one topic name per document, in corpus order. Ties are broken by the
// first occurrence in the topics sequence.
//
// Classify is a pure function: it has no hidden state and never mutates its
// inputs. There are no partial results; either every document receives a
// class or an error is returned.
//
// Returns ErrEmptyTopicSet for an empty topic sequence, ErrMissingPrototype
// if any topic lacks a computed prototype, and core.ErrDuplicateTopicName if
// two topics share a name. All checks run before any similarity is computed.
func Classify(topics []*core.Topic, docEmbeddings [][]float32) ([]string, error) {
	if len(topics) == 0 {
		return nil, ErrEmptyTopicSet
	}

	seen := make(map[string]bool, len(topics))
	for _, topic := range topics {
		if topic == nil || !topic.HasPrototype() {
			name := "<nil>"
			if topic != nil {
				name = topic.Name
			}
			return nil, fmt.Errorf("%w: %q", ErrMissingPrototype, name)
		}
		if seen[topic.Name] {
			return nil, fmt.Errorf("%w: %q", core.ErrDuplicateTopicName, topic.Name)
		}
		seen[topic.Name] = true
	}

	classes := make([]string, len(docEmbeddings))
	for i, doc := range docEmbeddings {
		best := 0
		bestSim := core.CosineSimilarity(doc, topics[0].Prototype)
		for j := 1; j < len(topics); j++ {
			// Strict comparison keeps the first topic on ties.
			if sim := core.CosineSimilarity(doc, topics[j].Prototype); sim > bestSim {
				best = j
				bestSim = sim
			}
		}
		classes[i] = topics[best].Name
	}

	return classes, nil
}
