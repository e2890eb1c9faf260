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
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/poiesic/embedkit"
	"github.com/poiesic/embedkit/ai"
	"github.com/poiesic/embedkit/ai/openai"
	"github.com/poiesic/embedkit/corpus"
	"github.com/poiesic/embedkit/game"
	"github.com/poiesic/embedkit/wordindex"
	"github.com/urfave/cli/v2"
)

var embeddingFlags = []cli.Flag{
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
}

func main() {
	// Missing .env is fine; flags and defaults still apply.
	godotenv.Load()

	app := &cli.App{
		Name:  "vectorball",
		Usage: "Word-association navigation game over an embedding space",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "Embed a word list and write an index snapshot",
				Action: buildCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "words",
						Aliases:  []string{"w"},
						Usage:    "Path to a word list file, one word per line",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "Output snapshot path",
						Required: true,
					},
				}, embeddingFlags...),
			},
			{
				Name:   "seed",
				Usage:  "Embed a word list into a word bank database",
				Action: seedCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "words",
						Aliases:  []string{"w"},
						Usage:    "Path to a word list file, one word per line",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				}, embeddingFlags...),
			},
			{
				Name:   "play",
				Usage:  "Play the game against a snapshot, a word bank, or a raw word list",
				Action: playCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "index",
						Aliases: []string{"i"},
						Usage:   "Path to an index snapshot built with the build command",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to a word bank database seeded with the seed command",
					},
					&cli.StringFlag{
						Name:    "words",
						Aliases: []string{"w"},
						Usage:   "Path to a word list file (embedded on startup)",
					},
					&cli.IntFlag{
						Name:    "num-choices",
						Aliases: []string{"n"},
						Usage:   "Number of options offered per move",
						Value:   game.DefaultNumChoices,
					},
				}, embeddingFlags...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func aiConfigFrom(c *cli.Context) (*ai.Config, error) {
	config := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return config, nil
}

func buildCommand(c *cli.Context) error {
	ctx := context.Background()

	words, err := corpus.ReadWordListFile(c.String("words"))
	if err != nil {
		return fmt.Errorf("reading word list: %w", err)
	}

	config, err := aiConfigFrom(c)
	if err != nil {
		return err
	}
	embedder, err := openai.NewEmbedder(config)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Embedding %d words with %s...\n", len(words), config.EmbeddingModel)

	index, err := wordindex.Build(ctx, config.EmbeddingModel, words, embedder)
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	outPath := c.String("out")
	if err := index.WriteSnapshotFile(outPath); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Wrote %s (%d words)\n", outPath, index.Len())
	return nil
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	words, err := corpus.ReadWordListFile(c.String("words"))
	if err != nil {
		return fmt.Errorf("reading word list: %w", err)
	}

	config, err := aiConfigFrom(c)
	if err != nil {
		return err
	}
	embedder, err := openai.NewEmbedder(config)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	bank, err := embedkit.OpenWordBank(c.String("db"), embedder)
	if err != nil {
		return fmt.Errorf("opening word bank: %w", err)
	}
	defer bank.Close()

	fmt.Fprintf(os.Stderr, "Embedding %d words with %s...\n", len(words), config.EmbeddingModel)

	if err := bank.Put(ctx, words...); err != nil {
		return fmt.Errorf("seeding word bank: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Word bank at %s now holds %d words\n", c.String("db"), bank.Len())
	return nil
}

// openWordSource resolves the play command's source flags. Exactly one of
// --index, --db, or --words must be set.
func openWordSource(ctx context.Context, c *cli.Context) (game.WordSource, func() error, error) {
	indexPath := c.String("index")
	dbPath := c.String("db")
	wordsPath := c.String("words")

	set := 0
	for _, v := range []string{indexPath, dbPath, wordsPath} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return nil, nil, fmt.Errorf("exactly one of --index, --db, or --words is required")
	}

	config, err := aiConfigFrom(c)
	if err != nil {
		return nil, nil, err
	}

	noop := func() error { return nil }

	switch {
	case indexPath != "":
		// The snapshot names its own model; the factory re-attaches a
		// provider for it using the configured host.
		index, err := wordindex.LoadFile(indexPath, openai.NewEmbedderFactory(config))
		if err != nil {
			return nil, nil, fmt.Errorf("loading index snapshot: %w", err)
		}
		return index, noop, nil

	case dbPath != "":
		embedder, err := openai.NewEmbedder(config)
		if err != nil {
			return nil, nil, err
		}
		bank, err := embedkit.OpenWordBank(dbPath, embedder)
		if err != nil {
			return nil, nil, fmt.Errorf("opening word bank: %w", err)
		}
		return bank, bank.Close, nil

	default:
		words, err := corpus.ReadWordListFile(wordsPath)
		if err != nil {
			return nil, nil, fmt.Errorf("reading word list: %w", err)
		}
		embedder, err := openai.NewEmbedder(config)
		if err != nil {
			return nil, nil, err
		}
		fmt.Fprintf(os.Stderr, "Embedding %d words with %s...\n", len(words), config.EmbeddingModel)
		index, err := wordindex.Build(ctx, config.EmbeddingModel, words, embedder)
		if err != nil {
			return nil, nil, fmt.Errorf("building index: %w", err)
		}
		return index, noop, nil
	}
}

func playCommand(c *cli.Context) error {
	ctx := context.Background()

	source, closeSource, err := openWordSource(ctx, c)
	if err != nil {
		return err
	}
	defer closeSource()

	session, err := game.NewSession(source, game.WithNumChoices(c.Int("num-choices")))
	if err != nil {
		return err
	}

	input := bufio.NewScanner(os.Stdin)

	for {
		if err := session.NewRound(ctx); err != nil {
			return err
		}

		fmt.Printf("\nNavigate from %q to %q.\n", session.CurrentWord(), session.TargetWord())

		if err := playRound(ctx, session, input); err != nil {
			return err
		}
		if session.State() == game.StateTerminated {
			return nil
		}

		printSummary(session.Summary())

		if !promptYes(input, "Play again? [y/N] ") {
			session.Terminate()
			return nil
		}
	}
}

// playRound drives one round of prompts. It returns with the session won,
// stuck, or terminated.
func playRound(ctx context.Context, session *game.Session, input *bufio.Scanner) error {
	for session.State() == game.StateInRound {
		options := session.Options()

		fmt.Printf("\nAt %q, target %q, %d steps so far.\n",
			session.CurrentWord(), session.TargetWord(), len(session.Path())-1)
		for i, o := range options {
			fmt.Printf("  %d. %s (%.3f)\n", i+1, o.Word, o.Distance)
		}
		fmt.Print("Choose a word (number or text, q to quit): ")

		if !input.Scan() {
			session.Terminate()
			return input.Err()
		}
		line := strings.TrimSpace(input.Text())
		if line == "" {
			continue
		}
		if line == "q" || line == "quit" {
			session.Terminate()
			return nil
		}

		choice := line
		if n, err := strconv.Atoi(line); err == nil {
			if n < 1 || n > len(options) {
				fmt.Printf("No option %d.\n", n)
				continue
			}
			choice = options[n-1].Word
		}

		outcome, err := session.Choose(ctx, choice)
		if err != nil {
			fmt.Printf("%v\n", err)
			continue
		}

		switch outcome {
		case game.OutcomeWon:
			fmt.Printf("\nYou reached %q!\n", session.TargetWord())
		case game.OutcomeStuck:
			fmt.Println("\nNo unvisited words nearby. Round over.")
		}
	}
	return nil
}

func printSummary(summary game.Summary) {
	fmt.Printf("\nPath: %s\n", strings.Join(summary.Path, " -> "))
	fmt.Printf("Steps: %d, total distance: %.3f\n", summary.Steps, summary.TotalDistance)
	if summary.Won {
		fmt.Println("Result: won")
	} else {
		fmt.Println("Result: stuck")
	}
}

func promptYes(input *bufio.Scanner, prompt string) bool {
	fmt.Print(prompt)
	if !input.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(input.Text()))
	return answer == "y" || answer == "yes"
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
