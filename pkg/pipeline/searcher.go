// Package pipeline turns a user query into a ranked, deduplicated list
// of legal documents: term derivation, priority-weighted federated
// search against the external document service and fuzzy re-ranking.
package pipeline

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rechtsinfo/bundesrecht-mcp/pkg/query"
	"github.com/rechtsinfo/bundesrecht-mcp/pkg/ris"
)

// DocumentSearcher is the consumed surface of the external document
// service: one lookup per search term.
type DocumentSearcher interface {
	Search(ctx context.Context, term string, opts ris.SearchOptions) (*ris.SearchResponse, error)
}

// RankedResult is one candidate document together with the term that
// found it and, after ranking, its similarity score in [0,1] where 1.0
// is a perfect match.
type RankedResult struct {
	Document    ris.Document
	TextMatches []ris.TextMatch
	Term        query.CandidateTerm
	Score       float64
}

// Searcher fans a prioritized term list out to the document service.
type Searcher struct {
	finder DocumentSearcher
	log    zerolog.Logger
}

// NewSearcher wraps the given document service client.
func NewSearcher(finder DocumentSearcher, log zerolog.Logger) *Searcher {
	return &Searcher{finder: finder, log: log}
}

// Search issues one external call per candidate term, in term order, and
// tags every returned document with the finding term. Calls run
// sequentially so result order is deterministic and the public service
// sees bounded load. A failing term is logged and skipped; it never
// aborts the batch. The caller is expected to have capped the term list
// per tier already.
func (s *Searcher) Search(ctx context.Context, terms []query.CandidateTerm, size int, kind ris.DocumentKind) []RankedResult {
	var results []RankedResult

	for _, term := range terms {
		tier := term.Tier.String()
		searchCallsTotal.WithLabelValues(tier).Inc()

		resp, err := s.finder.Search(ctx, term.Value, ris.SearchOptions{Size: size, Kind: kind})
		if err != nil {
			searchFailuresTotal.WithLabelValues(tier).Inc()
			s.log.Warn().
				Err(err).
				Str("term", term.Value).
				Str("tier", tier).
				Msg("search term failed, continuing with remaining terms")
			continue
		}

		documentsFoundTotal.Add(float64(len(resp.Member)))
		for _, item := range resp.Member {
			results = append(results, RankedResult{
				Document:    item.Item,
				TextMatches: item.TextMatches,
				Term:        term,
			})
		}
	}

	return results
}
