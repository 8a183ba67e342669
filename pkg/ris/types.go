// Package ris is a thin client for the Rechtsinformationen des Bundes
// document search API. It only consumes the search surface: one GET per
// search term, returning documents with text-match snippets. Transport
// details, authentication and pagination of the service are not modeled.
package ris

import "github.com/rechtsinfo/bundesrecht-mcp/pkg/helpers"

// DocumentKind distinguishes legislation from case law.
type DocumentKind string

const (
	// KindAll searches across every document category.
	KindAll DocumentKind = "all"
	// KindNorm restricts the search to legislation.
	KindNorm DocumentKind = "norm"
	// KindCaseLaw restricts the search to court decisions.
	KindCaseLaw DocumentKind = "caselaw"
)

// TextMatch is one highlighted snippet returned for a search hit. Name
// is the category label of the matched field, Text the excerpt.
type TextMatch struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Document is the opaque record the service returns for one hit. The
// identifiers are stable external keys (ELI for legislation, ECLI for
// decisions); this client only uses them for identity and citations.
type Document struct {
	ID             string `json:"@id"`
	Type           string `json:"@type"`
	DocumentNumber string `json:"documentNumber"`
	ELI            string `json:"legislationIdentifier"`
	ECLI           string `json:"ecli"`
	Name           string `json:"name"`
	Headline       string `json:"headline"`
	CourtName      string `json:"courtName"`
	DecisionDate   string `json:"decisionDate"`
}

// IdentityKey returns the stable identity of the document, preferring
// the document number and falling back to ELI, ECLI and finally the
// resource id. Deduplication keys on this value.
func (d Document) IdentityKey() string {
	switch {
	case d.DocumentNumber != "":
		return d.DocumentNumber
	case d.ELI != "":
		return d.ELI
	case d.ECLI != "":
		return d.ECLI
	default:
		return d.ID
	}
}

// Title returns the human-readable document title. Legislation carries
// it in name, decisions in headline.
func (d Document) Title() string {
	return helpers.DefaultString(d.Name, d.Headline)
}

// Citation returns the best stable citation string for display.
func (d Document) Citation() string {
	switch {
	case d.ECLI != "":
		return d.ECLI
	case d.ELI != "":
		return d.ELI
	default:
		return d.DocumentNumber
	}
}

// IsCaseLaw reports whether the document is a court decision.
func (d Document) IsCaseLaw() bool {
	return d.Type == "Decision" || d.ECLI != ""
}

// SearchItem pairs a document with the snippets that matched the term.
type SearchItem struct {
	Item        Document    `json:"item"`
	TextMatches []TextMatch `json:"textMatches"`
}

// SearchResponse is the decoded body of one search call.
type SearchResponse struct {
	Member     []SearchItem `json:"member"`
	TotalItems int          `json:"totalItems"`
}
