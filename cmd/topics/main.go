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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/poiesic/embedkit/ai"
	"github.com/poiesic/embedkit/ai/openai"
	"github.com/poiesic/embedkit/cluster"
	"github.com/poiesic/embedkit/core"
	"github.com/poiesic/embedkit/corpus"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func main() {
	// Missing .env is fine; flags and defaults still apply.
	godotenv.Load()

	app := &cli.App{
		Name:  "topics",
		Usage: "Classify documents against keyword-defined topics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "classify",
				Usage:  "Assign the best-matching topic to every document in a CSV table",
				Action: classifyCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "Path to the input CSV file",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "column",
						Aliases: []string{"c"},
						Usage:   "Name of the text column to classify",
						Value:   "text",
					},
					&cli.StringSliceFlag{
						Name:    "topic",
						Aliases: []string{"t"},
						Usage:   "Topic as name:keyword1,keyword2 (repeatable)",
					},
					&cli.StringFlag{
						Name:  "topics-file",
						Usage: "YAML file with topic definitions (alternative to --topic)",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:    "embedding-model",
						Aliases: []string{"m"},
						Usage:   "Embedding model name",
						Value:   "all-minilm",
					},
					&cli.IntFlag{
						Name:  "min-docs",
						Usage: "Minimum support set size per topic",
						Value: 5,
					},
					&cli.IntFlag{
						Name:  "max-docs",
						Usage: "Maximum support set size per topic",
						Value: 20,
					},
					&cli.Float64Flag{
						Name:  "sim",
						Usage: "Cosine similarity threshold for support set membership",
						Value: 0.5,
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output CSV path (input plus a class column)",
						Value:   "classified.csv",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of documents per embedding request",
						Value: 64,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Concurrent embedding workers (0 = half the CPUs)",
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N documents",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed embedding requests",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// topicsFile is the YAML layout accepted by --topics-file.
type topicsFile struct {
	Topics []struct {
		Name     string   `yaml:"name"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"topics"`
}

func loadTopics(c *cli.Context) ([]*core.Topic, error) {
	args := c.StringSlice("topic")
	path := c.String("topics-file")

	if len(args) == 0 && path == "" {
		return nil, fmt.Errorf("at least one --topic or a --topics-file is required")
	}

	topics, err := core.ParseTopicArgs(args)
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading topics file: %w", err)
		}
		var file topicsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing topics file: %w", err)
		}
		for _, t := range file.Topics {
			topics = append(topics, &core.Topic{Name: t.Name, Keywords: t.Keywords})
		}
	}

	if err := core.ValidateTopics(topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func classifyCommand(c *cli.Context) error {
	ctx := context.Background()

	// Validate everything cheap before any embedding call.
	topics, err := loadTopics(c)
	if err != nil {
		return err
	}

	table, err := corpus.LoadTableFile(c.String("data"), c.String("column"))
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	buildConfig := &cluster.BuildConfig{
		MinDocs:             c.Int("min-docs"),
		MaxDocs:             c.Int("max-docs"),
		SimilarityThreshold: float32(c.Float64("sim")),
	}

	builder, err := cluster.NewPrototypeBuilder(embedder, buildConfig)
	if err != nil {
		return err
	}

	pipelineOpts := []corpus.PipelineOption{
		corpus.WithBatchSize(c.Int("batch-size")),
		corpus.WithRetry(c.Int("max-retries"), c.Duration("retry-delay")),
		corpus.WithProgress(os.Stderr, c.Int("report-interval")),
	}
	if c.Int("pool-size") > 0 {
		pipelineOpts = append(pipelineOpts, corpus.WithPoolSize(c.Int("pool-size")))
	}

	pipeline, err := corpus.NewPipeline(embedder, pipelineOpts...)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	fmt.Fprintf(os.Stderr, "Corpus: %s (%d documents)\n", c.String("data"), table.Len())
	fmt.Fprintf(os.Stderr, "Topics: %d\n", len(topics))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", aiConfig.EmbeddingHost)
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", aiConfig.EmbeddingModel)
	fmt.Fprintln(os.Stderr)

	docEmbeddings, err := pipeline.EmbedAll(ctx, table.Texts())
	if err != nil {
		return fmt.Errorf("embedding corpus: %w", err)
	}

	if err := builder.BuildAll(ctx, topics, docEmbeddings); err != nil {
		return fmt.Errorf("building topic prototypes: %w", err)
	}

	for _, topic := range topics {
		fmt.Fprintf(os.Stderr, "  %s: %d support documents\n", topic.Name, len(topic.SupportDocs))
	}

	classes, err := cluster.Classify(topics, docEmbeddings)
	if err != nil {
		return fmt.Errorf("classifying documents: %w", err)
	}

	outPath := c.String("out")
	if err := table.WriteFileWithClasses(outPath, classes); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\nWrote %s\n", outPath)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
