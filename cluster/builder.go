package cluster

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/poiesic/embedkit/ai"
	"github.com/poiesic/embedkit/core"
)

// BuildConfig holds the support-set sizing parameters for prototype building.
type BuildConfig struct {
	// MinDocs is the minimum support set size. When fewer than MinDocs
	// candidates meet the similarity threshold, the top MinDocs candidates
	// are used regardless of threshold.
	MinDocs int

	// MaxDocs caps the candidate pool and therefore the support set size.
	MaxDocs int

	// SimilarityThreshold is the minimum cosine similarity a candidate must
	// have to the keyword prototype to join the support set.
	SimilarityThreshold float32
}

// DefaultBuildConfig returns a BuildConfig with the standard defaults.
func DefaultBuildConfig() *BuildConfig {
	return &BuildConfig{
		MinDocs:             5,
		MaxDocs:             20,
		SimilarityThreshold: 0.5,
	}
}

// Validate checks that the configuration is internally consistent.
func (c *BuildConfig) Validate() error {
	if c.MinDocs < 1 {
		return fmt.Errorf("%w: MinDocs must be at least 1", ErrInvalidBuildConfig)
	}
	if c.MinDocs > c.MaxDocs {
		return fmt.Errorf("%w: MinDocs (%d) exceeds MaxDocs (%d)", ErrInvalidBuildConfig, c.MinDocs, c.MaxDocs)
	}
	return nil
}

// PrototypeBuilder computes topic prototypes from keyword embeddings and a
// document-embedding corpus.
type PrototypeBuilder struct {
	embedder ai.Embedder
	config   *BuildConfig
	logger   *slog.Logger
}

// Option configures a PrototypeBuilder.
type Option func(*PrototypeBuilder) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *PrototypeBuilder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewPrototypeBuilder creates a new prototype builder.
// A nil config uses DefaultBuildConfig.
func NewPrototypeBuilder(embedder ai.Embedder, config *BuildConfig, opts ...Option) (*PrototypeBuilder, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultBuildConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	b := &PrototypeBuilder{
		embedder: embedder,
		config:   config,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Build populates topic.SupportDocs and topic.Prototype from the corpus.
//
// The topic's keywords are embedded and averaged into a keyword prototype.
// Documents are ranked by descending cosine similarity to that prototype and
// the top MaxDocs become candidates. If the number of candidates meeting the
// similarity threshold is MinDocs or fewer, the support set is exactly the
// top MinDocs candidates; otherwise candidates are taken in rank order while
// they stay at or above the threshold. The topic prototype is the mean
// embedding of the support set.
//
// Validation runs before any embedding call. Returns core.ErrInvalidTopic
// for a topic without keywords and ErrInsufficientCorpus when the corpus
// holds fewer than MinDocs documents.
func (b *PrototypeBuilder) Build(ctx context.Context, topic *core.Topic, docEmbeddings [][]float32) error {
	if err := core.ValidateTopic(topic); err != nil {
		return err
	}
	if len(docEmbeddings) < b.config.MinDocs {
		return fmt.Errorf("%w: have %d documents, need %d", ErrInsufficientCorpus, len(docEmbeddings), b.config.MinDocs)
	}

	b.logger.Debug("building topic prototype", "topic", topic.Name, "keywords", len(topic.Keywords))

	kwEmbeddings, err := b.embedder.EmbedTexts(ctx, topic.Keywords)
	if err != nil {
		b.logger.Error("error embedding topic keywords", "topic", topic.Name, "err", err)
		return err
	}
	if len(kwEmbeddings) != len(topic.Keywords) {
		return fmt.Errorf("keyword embedding count mismatch: expected %d, got %d", len(topic.Keywords), len(kwEmbeddings))
	}

	kwPrototype := core.MeanVector(kwEmbeddings)

	// Score every document against the keyword prototype.
	similarities := make([]float32, len(docEmbeddings))
	for i, doc := range docEmbeddings {
		similarities[i] = core.CosineSimilarity(kwPrototype, doc)
	}

	// Rank document indices by descending similarity. The sort is stable so
	// equal scores keep corpus order and builds stay deterministic.
	ranked := make([]int, len(docEmbeddings))
	for i := range ranked {
		ranked[i] = i
	}
	slices.SortStableFunc(ranked, func(a, b int) int {
		if similarities[a] > similarities[b] {
			return -1
		}
		if similarities[a] < similarities[b] {
			return 1
		}
		return 0
	})

	candidates := ranked
	if len(candidates) > b.config.MaxDocs {
		candidates = candidates[:b.config.MaxDocs]
	}

	aboveThreshold := 0
	for _, idx := range candidates {
		if similarities[idx] >= b.config.SimilarityThreshold {
			aboveThreshold++
		}
	}

	var support []int
	if aboveThreshold <= b.config.MinDocs {
		// Weak signal: force the minimum viable support set.
		support = slices.Clone(candidates[:b.config.MinDocs])
	} else {
		for _, idx := range candidates {
			if similarities[idx] < b.config.SimilarityThreshold {
				break
			}
			support = append(support, idx)
		}
	}

	supportEmbeddings := make([][]float32, len(support))
	for i, idx := range support {
		supportEmbeddings[i] = docEmbeddings[idx]
	}

	topic.SupportDocs = support
	topic.Prototype = core.MeanVector(supportEmbeddings)

	b.logger.Debug("topic prototype built", "topic", topic.Name,
		"supportDocs", len(support), "aboveThreshold", aboveThreshold)

	return nil
}

// BuildAll validates the topic set and builds a prototype for every topic.
// Cross-topic validation (unique names) happens before any embedding call.
func (b *PrototypeBuilder) BuildAll(ctx context.Context, topics []*core.Topic, docEmbeddings [][]float32) error {
	if len(topics) == 0 {
		return ErrEmptyTopicSet
	}
	if err := core.ValidateTopics(topics); err != nil {
		return err
	}

	for _, topic := range topics {
		if err := b.Build(ctx, topic, docEmbeddings); err != nil {
			return fmt.Errorf("building topic %q: %w", topic.Name, err)
		}
	}
	return nil
}
