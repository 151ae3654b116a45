package filter

import "strings"

// fallbackClause matches the extracted keyword against title or abstract,
// case-insensitively. Two placeholders, both bound to the same wildcarded
// keyword.
const fallbackClause = "(s.study_title ILIKE %s OR s.study_abstract ILIKE %s)"

// stopWords are instructional words stripped from the query before the
// remainder is used as a substring keyword.
var stopWords = map[string]struct{}{
	"find":    {},
	"show":    {},
	"search":  {},
	"get":     {},
	"list":    {},
	"me":      {},
	"studies": {},
	"study":   {},
	"about":   {},
	"the":     {},
	"a":       {},
	"an":      {},
	"all":     {},
	"that":    {},
	"for":     {},
	"with":    {},
	"on":      {},
	"of":      {},
	"talk":    {},
}

// Fallback deterministically builds a filter from the raw user query without
// consulting the model. It lowercases the query, drops stop words, and matches
// whatever remains as a case-insensitive substring of the title or abstract.
//
// It is total: any input, including the empty string, yields a structurally
// valid filter. An empty keyword degrades to the wildcard %%, which matches
// every study.
func Fallback(userQuery string) Filter {
	keyword := ExtractKeyword(userQuery)
	pattern := "%" + keyword + "%"
	return Filter{
		Clause: fallbackClause,
		Params: []any{pattern, pattern},
	}
}

// ExtractKeyword strips stop words from the query and returns the remaining
// words joined by single spaces, lowercased and trimmed.
func ExtractKeyword(userQuery string) string {
	var kept []string
	for _, word := range strings.Fields(strings.ToLower(userQuery)) {
		if _, skip := stopWords[word]; skip {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}
