package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/poiesic/embedkit/core"
)

// WordSource supplies the words a session plays over and answers
// nearest-neighbor queries against their embeddings. Both wordindex.Index
// and the word bank satisfy it.
type WordSource interface {
	// Words returns the full word list.
	Words() []string

	// Query returns up to k words ordered by ascending distance from word.
	Query(ctx context.Context, word string, k int) ([]core.Option, error)
}

// State is the session lifecycle state.
type State int

const (
	// StateIdle means no round is in progress.
	StateIdle State = iota
	// StateInRound means a round is active and awaiting a choice.
	StateInRound
	// StateRoundWon means the last round ended by reaching the target.
	StateRoundWon
	// StateTerminated means the session is finished and unusable.
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInRound:
		return "in-round"
	case StateRoundWon:
		return "round-won"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome reports the effect of a single move.
type Outcome int

const (
	// OutcomeContinue means the round goes on with fresh options.
	OutcomeContinue Outcome = iota
	// OutcomeWon means the chosen word was the target.
	OutcomeWon
	// OutcomeStuck means every neighbor of the new position was already
	// visited; the round ends without a win.
	OutcomeStuck
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeWon:
		return "won"
	case OutcomeStuck:
		return "stuck"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Summary describes a finished or in-progress round.
type Summary struct {
	StartWord     string
	TargetWord    string
	Path          []string
	Steps         int
	TotalDistance float64
	Won           bool
}

// DefaultNumChoices is the number of options offered per move.
const DefaultNumChoices = 6

// maxRandomDraws bounds start/target rejection sampling per round.
const maxRandomDraws = 64

// Session runs rounds of the navigation game against a WordSource.
// It is not safe for concurrent use.
type Session struct {
	source     WordSource
	numChoices int
	rng        *rand.Rand
	logger     *slog.Logger

	state         State
	currentWord   string
	targetWord    string
	pathTaken     []string
	options       []core.Option
	totalDistance float64

	// Previous round's endpoints; the next round must pick different ones.
	prevStart  string
	prevTarget string
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithNumChoices sets how many options each move offers.
func WithNumChoices(n int) SessionOption {
	return func(s *Session) {
		s.numChoices = n
	}
}

// WithRand sets the random source used for start/target selection.
// Intended for deterministic tests.
func WithRand(rng *rand.Rand) SessionOption {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithSessionLogger sets the logger for session events.
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates an idle session over the given word source.
func NewSession(source WordSource, opts ...SessionOption) (*Session, error) {
	if source == nil {
		return nil, ErrWordSourceRequired
	}

	s := &Session{
		source:     source,
		numChoices: DefaultNumChoices,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:     slog.Default(),
		state:      StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.numChoices < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNumChoices, s.numChoices)
	}
	return s, nil
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// CurrentWord returns the player's current position.
func (s *Session) CurrentWord() string {
	return s.currentWord
}

// TargetWord returns the word the player is navigating toward.
func (s *Session) TargetWord() string {
	return s.targetWord
}

// Options returns a copy of the choices currently on offer.
func (s *Session) Options() []core.Option {
	return slices.Clone(s.options)
}

// Path returns a copy of the words visited so far, start first.
func (s *Session) Path() []string {
	return slices.Clone(s.pathTaken)
}

// TotalDistance returns the embedding-space distance accumulated along
// the chosen path.
func (s *Session) TotalDistance() float64 {
	return s.totalDistance
}

// NewRound starts a fresh round: picks a start and target word, resets the
// path, and computes the first option set. The start and target differ from
// each other and from the previous round's endpoints.
func (s *Session) NewRound(ctx context.Context) error {
	if s.state == StateTerminated {
		return ErrSessionTerminated
	}

	start, target, err := s.drawWordPair()
	if err != nil {
		return err
	}

	s.currentWord = start
	s.targetWord = target
	s.pathTaken = []string{start}
	s.totalDistance = 0

	options, err := s.neighborOptions(ctx, start)
	if err != nil {
		return err
	}
	if len(options) == 0 {
		return fmt.Errorf("%w: no options reachable from %q", ErrWordPoolExhausted, start)
	}

	s.options = options
	s.state = StateInRound
	s.prevStart = start
	s.prevTarget = target

	s.logger.Info("round started", "start", start, "target", target, "options", len(options))
	return nil
}

// Choose plays the given option word. On a win the option set is left
// untouched; otherwise the options are recomputed around the new position,
// and a position with no unvisited neighbors ends the round as stuck.
func (s *Session) Choose(ctx context.Context, word string) (Outcome, error) {
	if s.state == StateTerminated {
		return OutcomeContinue, ErrSessionTerminated
	}
	if s.state != StateInRound {
		return OutcomeContinue, ErrNoActiveRound
	}

	idx := slices.IndexFunc(s.options, func(o core.Option) bool {
		return o.Word == word
	})
	if idx < 0 {
		return OutcomeContinue, fmt.Errorf("%w: %q", ErrInvalidChoice, word)
	}

	chosen := s.options[idx]
	s.currentWord = chosen.Word
	s.pathTaken = append(s.pathTaken, chosen.Word)
	s.totalDistance += float64(chosen.Distance)

	if chosen.Word == s.targetWord {
		s.state = StateRoundWon
		s.logger.Info("round won", "steps", len(s.pathTaken)-1, "distance", s.totalDistance)
		return OutcomeWon, nil
	}

	options, err := s.neighborOptions(ctx, chosen.Word)
	if err != nil {
		return OutcomeContinue, err
	}
	if len(options) == 0 {
		s.options = nil
		s.state = StateIdle
		s.logger.Info("round stuck", "at", chosen.Word, "steps", len(s.pathTaken)-1)
		return OutcomeStuck, nil
	}

	s.options = options
	return OutcomeContinue, nil
}

// Summary reports the current round's result.
func (s *Session) Summary() Summary {
	path := slices.Clone(s.pathTaken)
	steps := 0
	if len(path) > 0 {
		steps = len(path) - 1
	}
	start := ""
	if len(path) > 0 {
		start = path[0]
	}
	return Summary{
		StartWord:     start,
		TargetWord:    s.targetWord,
		Path:          path,
		Steps:         steps,
		TotalDistance: s.totalDistance,
		Won:           s.state == StateRoundWon,
	}
}

// Terminate ends the session. All further calls fail with
// ErrSessionTerminated.
func (s *Session) Terminate() {
	s.state = StateTerminated
	s.options = nil
}

// drawWordPair samples a start and target word, rejecting pairs that
// collide with each other or with the previous round's endpoints. Sampling
// is bounded so a tiny or degenerate pool fails loudly instead of looping.
func (s *Session) drawWordPair() (string, string, error) {
	words := s.source.Words()
	if len(words) < 2 {
		return "", "", fmt.Errorf("%w: need at least 2 words, have %d", ErrWordPoolExhausted, len(words))
	}

	for range maxRandomDraws {
		start := words[s.rng.IntN(len(words))]
		if start == s.prevStart {
			continue
		}
		target := words[s.rng.IntN(len(words))]
		if target == start || target == s.prevTarget {
			continue
		}
		return start, target, nil
	}
	return "", "", fmt.Errorf("%w: no fresh start/target pair after %d draws", ErrWordPoolExhausted, maxRandomDraws)
}

// neighborOptions queries neighbors of word and drops any already on the
// path. It over-fetches so the filter still leaves a full option set in
// the common case.
func (s *Session) neighborOptions(ctx context.Context, word string) ([]core.Option, error) {
	neighbors, err := s.source.Query(ctx, word, 2*s.numChoices)
	if err != nil {
		return nil, fmt.Errorf("querying neighbors of %q: %w", word, err)
	}

	options := make([]core.Option, 0, s.numChoices)
	for _, n := range neighbors {
		if slices.Contains(s.pathTaken, n.Word) {
			continue
		}
		options = append(options, n)
		if len(options) == s.numChoices {
			break
		}
	}
	return options, nil
}
