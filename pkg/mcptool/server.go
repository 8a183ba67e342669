// Package mcptool exposes the query pipeline as an MCP tool. It is the
// thin boundary between calling agents and the pipeline: argument
// coercion in, rendered citations out.
package mcptool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/rechtsinfo/bundesrecht-mcp/pkg/pipeline"
	"github.com/rechtsinfo/bundesrecht-mcp/pkg/ris"
)

// ServerName identifies this MCP server to clients.
const ServerName = "bundesrecht-mcp"

// Version is the server version reported during the MCP handshake.
const Version = "0.3.0"

// SearchArgs are the tool arguments. Threshold and limit tolerate both
// JSON numbers and numeric strings.
type SearchArgs struct {
	Query       string    `json:"query"`
	Threshold   FlexFloat `json:"threshold,omitempty"`
	Limit       FlexInt   `json:"limit,omitempty"`
	Dokumentart string    `json:"dokumentart,omitempty"`
}

// searchInputSchema spells the argument contract out explicitly so that
// numeric strings pass schema validation before coercion runs.
var searchInputSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"query"},
	Properties: map[string]*jsonschema.Schema{
		"query": {
			Type:        "string",
			Description: "Die Rechtsfrage in natürlicher Sprache, deutsch oder englisch.",
		},
		"threshold": {
			Types:       []string{"number", "string"},
			Description: "Fuzzy-Match-Schwelle zwischen 0 und 1 (0 = exakt, Standard 0.3).",
		},
		"limit": {
			Types:       []string{"integer", "string"},
			Description: "Maximale Anzahl Ergebnisse (1-100, Standard 10).",
		},
		"dokumentart": {
			Type:        "string",
			Enum:        []any{"all", "norm", "caselaw"},
			Description: "Auf Normen oder Rechtsprechung einschränken.",
		},
	},
}

// NewServer builds the MCP server with the research tool registered.
func NewServer(p *pipeline.Pipeline, log zerolog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: Version,
	}, nil)

	handler := &toolHandler{pipeline: p, log: log}
	mcp.AddTool(server, &mcp.Tool{
		Name: "suche_rechtsinformationen",
		Description: "Durchsucht die Rechtsinformationen des Bundes (Gesetze und " +
			"Rechtsprechung) zu einer frei formulierten Rechtsfrage und liefert die " +
			"relevantesten Fundstellen mit Zitaten.",
		InputSchema: searchInputSchema,
	}, handler.search)

	return server
}

type toolHandler struct {
	pipeline *pipeline.Pipeline
	log      zerolog.Logger
}

func (h *toolHandler) search(ctx context.Context, _ *mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, any, error) {
	outcome, err := h.pipeline.Run(ctx, pipeline.Params{
		Query:     args.Query,
		Threshold: float64(args.Threshold),
		Limit:     int(args.Limit),
		Kind:      documentKind(args.Dokumentart),
	})
	if err != nil {
		if errors.Is(err, pipeline.ErrQueryTooShort) {
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{
					Text: "Die Anfrage ist zu kurz. Bitte formulieren Sie eine Rechtsfrage.",
				}},
			}, nil, nil
		}
		return nil, nil, err
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: renderOutcome(outcome)}},
	}, nil, nil
}

func documentKind(dokumentart string) ris.DocumentKind {
	switch dokumentart {
	case "norm":
		return ris.KindNorm
	case "caselaw":
		return ris.KindCaseLaw
	default:
		return ris.KindAll
	}
}

// renderOutcome formats the pipeline result as user-facing markdown with
// citations. A NotFound outcome lists the tried terms so the caller can
// explain the miss.
func renderOutcome(outcome *pipeline.Outcome) string {
	var b strings.Builder

	if len(outcome.Explanations) > 0 {
		b.WriteString("**Hinweise:**\n")
		for _, explanation := range outcome.Explanations {
			fmt.Fprintf(&b, "- %s\n", explanation)
		}
		b.WriteString("\n")
	}

	if outcome.State == pipeline.StateNotFound {
		b.WriteString("Keine Dokumente gefunden. Gesucht wurde nach:\n")
		for _, term := range outcome.TriedTerms {
			fmt.Fprintf(&b, "- %s\n", term)
		}
		b.WriteString("\nBitte formulieren Sie die Frage um oder nennen Sie die einschlägige Norm.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%d Fundstelle(n):\n\n", len(outcome.Results))
	for i, result := range outcome.Results {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, result.Document.Title())
		if citation := result.Document.Citation(); citation != "" {
			fmt.Fprintf(&b, "   Zitat: %s\n", citation)
		}
		if result.Document.IsCaseLaw() && result.Document.CourtName != "" {
			fmt.Fprintf(&b, "   Gericht: %s", result.Document.CourtName)
			if result.Document.DecisionDate != "" {
				fmt.Fprintf(&b, ", Entscheidung vom %s", result.Document.DecisionDate)
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "   Suchbegriff: %s (%s), Relevanz: %.2f\n", result.Term.Value, result.Term.Tier, result.Score)
		if snippet := bestSnippet(result); snippet != "" {
			fmt.Fprintf(&b, "   > %s\n", snippet)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func bestSnippet(result pipeline.RankedResult) string {
	for _, match := range result.TextMatches {
		if text := strings.TrimSpace(match.Text); text != "" {
			return text
		}
	}
	return ""
}
