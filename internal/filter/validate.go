package filter

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrDisallowedClause marks a clause that references columns outside the
// allow-list or carries syntax the filter grammar does not permit.
var ErrDisallowedClause = errors.New("clause contains disallowed syntax")

// allowedColumns is the fixed set of qualified columns a synthesized clause
// may reference. It mirrors the schema enumerated in the model's system
// instruction; the validator enforces it programmatically so correctness does
// not rest on the model following instructions.
var allowedColumns = map[string]struct{}{
	"s.study_id":        {},
	"s.study_title":     {},
	"s.study_abstract":  {},
	"sp_pi.name":        {},
	"sp_pi.email":       {},
	"sp_pi.affiliation": {},
	"sp_lab.name":       {},
	"v.visibility":      {},
}

// allowedKeywords are the bare words permitted besides column references.
var allowedKeywords = map[string]struct{}{
	"and":   {},
	"or":    {},
	"not":   {},
	"ilike": {},
	"like":  {},
	"in":    {},
	"is":    {},
	"null":  {},
}

// ValidateClause checks a synthesized WHERE clause token by token.
//
// Permitted: allow-listed qualified columns, the boolean/comparison keywords
// above, comparison operators, parentheses, commas, %s placeholders, and bare
// integer literals (for id comparisons). Everything else is rejected —
// in particular quotes, semicolons, and comment markers, so no literal value
// or statement terminator can ride along in the clause text.
//
// An empty clause is valid and executes as an unconditional scan.
func ValidateClause(clause string) error {
	runes := []rune(clause)
	depth := 0

	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case unicode.IsSpace(r):
			i++

		case r == '(':
			depth++
			i++

		case r == ')':
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: unbalanced parenthesis", ErrDisallowedClause)
			}
			i++

		case r == ',':
			i++

		case r == '%':
			if i+1 < len(runes) && runes[i+1] == 's' {
				i += 2
				continue
			}
			return fmt.Errorf("%w: stray %%", ErrDisallowedClause)

		case r == '=':
			i++

		case r == '!':
			if i+1 < len(runes) && runes[i+1] == '=' {
				i += 2
				continue
			}
			return fmt.Errorf("%w: stray !", ErrDisallowedClause)

		case r == '<':
			i++
			if i < len(runes) && (runes[i] == '=' || runes[i] == '>') {
				i++
			}

		case r == '>':
			i++
			if i < len(runes) && runes[i] == '=' {
				i++
			}

		case unicode.IsDigit(r):
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				i++
			}

		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_' || runes[i] == '.') {
				i++
			}
			word := strings.ToLower(string(runes[start:i]))
			if _, ok := allowedKeywords[word]; ok {
				continue
			}
			if _, ok := allowedColumns[word]; ok {
				continue
			}
			return fmt.Errorf("%w: identifier %q is not allow-listed", ErrDisallowedClause, word)

		default:
			// Quotes, semicolons, comment markers and any other syntax land here.
			return fmt.Errorf("%w: character %q", ErrDisallowedClause, string(r))
		}
	}

	if depth != 0 {
		return fmt.Errorf("%w: unbalanced parenthesis", ErrDisallowedClause)
	}

	return nil
}

// Validate checks the filter as a whole: the clause must pass ValidateClause
// and the placeholder count must match the parameter count.
func Validate(f Filter) error {
	if err := ValidateClause(f.Clause); err != nil {
		return err
	}
	if !f.Valid() {
		return fmt.Errorf("%w: %d placeholders but %d params",
			ErrDisallowedClause, f.PlaceholderCount(), len(f.Params))
	}
	return nil
}
