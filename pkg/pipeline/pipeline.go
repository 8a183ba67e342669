package pipeline

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rechtsinfo/bundesrecht-mcp/pkg/query"
	"github.com/rechtsinfo/bundesrecht-mcp/pkg/ris"
)

// ErrQueryTooShort rejects queries that are empty or too short to carry
// meaning after trimming. This is the only hard rejection; every other
// parameter problem is clamped instead.
var ErrQueryTooShort = errors.New("query must be at least 3 characters")

// State names the pipeline phases. Found and NotFound are terminal;
// there is no retry transition, a fresh query starts over.
type State string

const (
	// StateExpanding derives candidate terms from the query.
	StateExpanding State = "expanding"
	// StateSearching fans terms out to the document service.
	StateSearching State = "searching"
	// StateRanking deduplicates and re-ranks the result pool.
	StateRanking State = "ranking"
	// StateFound terminates a run with at least one result.
	StateFound State = "found"
	// StateNotFound terminates a run with zero results after every
	// term was tried.
	StateNotFound State = "not_found"
)

const (
	// DefaultThreshold follows the distance convention: lower demands
	// closer matches.
	DefaultThreshold = 0.3
	// DefaultLimit bounds the result list when the caller gives none.
	DefaultLimit = 10
	// MaxLimit caps the result list regardless of the caller.
	MaxLimit = 100

	minQueryLength = 3
)

// Params is one query invocation. Threshold and Limit outside their
// valid ranges are clamped, never rejected.
type Params struct {
	Query     string
	Threshold float64
	Limit     int
	Kind      ris.DocumentKind
}

// Outcome is the terminal result of one pipeline run. NotFound still
// carries the tried terms so the caller can explain the miss.
type Outcome struct {
	State        State
	Results      []RankedResult
	TriedTerms   []string
	Explanations []string
}

// Pipeline wires term derivation, federated search and ranking. All
// state is per-run; a Pipeline is safe for concurrent queries.
type Pipeline struct {
	searcher *Searcher
	log      zerolog.Logger
}

// New builds a pipeline on top of the given document service client.
func New(finder DocumentSearcher, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		searcher: NewSearcher(finder, log),
		log:      log,
	}
}

// Run executes one query end to end: derive terms, search every term,
// deduplicate and rank. Partial search failures degrade the result pool
// but never fail the run; the worst outcome is NotFound.
func (p *Pipeline) Run(ctx context.Context, params Params) (*Outcome, error) {
	trimmed := strings.TrimSpace(params.Query)
	if len([]rune(trimmed)) < minQueryLength {
		return nil, ErrQueryTooShort
	}

	threshold := clamp01(params.Threshold)
	if params.Threshold == 0 {
		threshold = DefaultThreshold
	}
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	log := p.log.With().Str("query_id", uuid.NewString()).Logger()
	log.Debug().Str("state", string(StateExpanding)).Str("query", trimmed).Msg("deriving candidate terms")

	plan := query.BuildPlan(trimmed)
	tried := make([]string, 0, len(plan.Terms))
	for _, term := range plan.Terms {
		tried = append(tried, term.Value)
	}

	log.Debug().Str("state", string(StateSearching)).Strs("terms", tried).Msg("searching candidate terms")
	results := p.searcher.Search(ctx, plan.Terms, limit, params.Kind)

	if len(results) == 0 {
		queriesTotal.WithLabelValues(string(StateNotFound)).Inc()
		log.Info().Strs("terms", tried).Msg("no documents found for any term")
		return &Outcome{
			State:        StateNotFound,
			TriedTerms:   tried,
			Explanations: plan.Explanations,
		}, nil
	}

	log.Debug().Str("state", string(StateRanking)).Int("candidates", len(results)).Msg("ranking result pool")
	ranked := Rank(results, plan.Translated, threshold, limit)

	queriesTotal.WithLabelValues(string(StateFound)).Inc()
	log.Info().Int("results", len(ranked)).Msg("query resolved")
	return &Outcome{
		State:        StateFound,
		Results:      ranked,
		TriedTerms:   tried,
		Explanations: plan.Explanations,
	}, nil
}
