package query

import (
	"regexp"
	"strings"
)

// statuteCodes lists the statute abbreviations the extractor recognizes,
// keyed by their uppercased form. The value is the canonical spelling
// used in normalized references.
var statuteCodes = map[string]string{
	"GG":       "GG",
	"EMRK":     "EMRK",
	"BGB":      "BGB",
	"STGB":     "StGB",
	"STPO":     "StPO",
	"ZPO":      "ZPO",
	"SGG":      "SGG",
	"VWGO":     "VwGO",
	"VWVFG":    "VwVfG",
	"ESTG":     "EStG",
	"AO":       "AO",
	"HGB":      "HGB",
	"INSO":     "InsO",
	"FAMFG":    "FamFG",
	"GEWO":     "GewO",
	"KSCHG":    "KSchG",
	"BURLG":    "BUrlG",
	"TZBFG":    "TzBfG",
	"MUSCHG":   "MuSchG",
	"BEEG":     "BEEG",
	"ARBZG":    "ArbZG",
	"WOGG":     "WoGG",
	"BAFÖG":    "BAföG",
	"AUFENTHG": "AufenthG",
	"ASYLG":    "AsylG",
	"ASYLBLG":  "AsylbLG",
	"SGB I":    "SGB I",
	"SGB II":   "SGB II",
	"SGB III":  "SGB III",
	"SGB IV":   "SGB IV",
	"SGB V":    "SGB V",
	"SGB VI":   "SGB VI",
	"SGB VII":  "SGB VII",
	"SGB VIII": "SGB VIII",
	"SGB IX":   "SGB IX",
	"SGB X":    "SGB X",
	"SGB XI":   "SGB XI",
	"SGB XII":  "SGB XII",
	"SGB XIV":  "SGB XIV",
}

// codePattern matches any recognized statute abbreviation. The SGB books
// come first, longest roman numeral first, so "SGB XII" is not cut short
// at "SGB XI".
const codePattern = `(?:SGB\s+(?:XIV|XII|XI|IX|X|VIII|VII|VI|IV|V|III|II|I)|BAföG|AufenthG|AsylbLG|AsylG|VwVfG|VwGO|KSchG|BUrlG|TzBfG|MuSchG|ArbZG|GewO|FamFG|InsO|WoGG|BEEG|EStG|StGB|StPO|EMRK|BGB|ZPO|SGG|HGB|GG|AO)\b`

var (
	// § 32 SGB II, § 44a Abs. 1 SGB X
	paragraphRe = regexp.MustCompile(`(?i)§\s*(\d+[a-z]?)\s+(?:Abs\.?\s*\d+\s+)?(` + codePattern + `)`)
	// SGB II § 32
	reverseRe = regexp.MustCompile(`(?i)(` + codePattern + `)\s*§\s*(\d+[a-z]?)`)
	// Art. 3 GG, Art 6 EMRK
	articleRe = regexp.MustCompile(`(?i)\bArt\.?\s*(\d+[a-z]?)\s+(GG|EMRK)\b`)
	// bare statute abbreviation without a paragraph number
	bareCodeRe = regexp.MustCompile(`(?i)\b` + codePattern)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ExtractReferences detects structured legal citations in a free-text
// query and returns them in a normalized single-space form, for example
// "§ 32 SGB II" or "Art. 3 GG". Bare statute abbreviations are reported
// on their own since they remain useful search terms. The result is
// deduplicated and may be empty; an empty result is not an error.
func ExtractReferences(q string) []string {
	var refs []string

	for _, m := range paragraphRe.FindAllStringSubmatch(q, -1) {
		refs = append(refs, "§ "+strings.ToLower(m[1])+" "+canonicalCode(m[2]))
	}
	for _, m := range reverseRe.FindAllStringSubmatch(q, -1) {
		refs = append(refs, "§ "+strings.ToLower(m[2])+" "+canonicalCode(m[1]))
	}
	for _, m := range articleRe.FindAllStringSubmatch(q, -1) {
		refs = append(refs, "Art. "+strings.ToLower(m[1])+" "+canonicalCode(m[2]))
	}
	for _, m := range bareCodeRe.FindAllString(q, -1) {
		refs = append(refs, canonicalCode(m))
	}

	return dedupeStrings(refs)
}

// canonicalCode maps a matched abbreviation to its canonical spelling,
// collapsing inner whitespace first ("sgb  ii" -> "SGB II").
func canonicalCode(raw string) string {
	collapsed := whitespaceRe.ReplaceAllString(strings.TrimSpace(raw), " ")
	if canonical, ok := statuteCodes[strings.ToUpper(collapsed)]; ok {
		return canonical
	}
	return collapsed
}

// dedupeStrings removes duplicates case-insensitively, keeping the first
// occurrence and its original order.
func dedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
