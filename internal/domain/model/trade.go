//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "strings"

// tradeSynonyms is the fixed synonym expansion table for trade matching.
// Keys are lowercase roots tested with substring containment against the
// lowercased input; values are the additional substring patterns matched
// case-insensitively. This is a closed set and must not grow at runtime:
// search behavior depends on reproducing it exactly.
var tradeSynonyms = []struct {
	root  string
	terms []string
}{
	{root: "electric", terms: []string{"Electric", "Electrical"}},
	{root: "plumb", terms: []string{"Plumb", "Plumbing"}},
	{root: "build", terms: []string{"Build", "Builder", "Building"}},
	{root: "carpen", terms: []string{"Carpen", "Carpentry"}},
}

// TradeSearchTerms returns the substring terms used to broaden a trade
// filter. The input itself is always the first term; synonym expansions are
// appended for every root the lowercased input contains. Terms are matched
// as "field contains substring", not word-boundary, so "build" also matches
// "Rebuild".
func TradeSearchTerms(trade string) []string {
	terms := []string{trade}
	lower := strings.ToLower(trade)
	for _, syn := range tradeSynonyms {
		if strings.Contains(lower, syn.root) {
			terms = append(terms, syn.terms...)
		}
	}
	return terms
}
