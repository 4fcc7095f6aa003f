// Package search compiles a free-text query into a conjunctive filter:
// the query is split on whitespace, each token must match at least one of
// the entity's searchable columns as a case-insensitive substring, and all
// tokens must match for a row to qualify.
package search

import "strings"

// Predicate is a compiled WHERE fragment with its bind arguments.
type Predicate struct {
	Expr string
	Args []any
}

// Compile turns query into a predicate over columns. The second return
// value is false when the query is empty or whitespace-only, in which case
// the caller must return the unfiltered set.
func Compile(query string, columns []string) (Predicate, bool) {
	tokens := Tokens(query)
	if len(tokens) == 0 || len(columns) == 0 {
		return Predicate{}, false
	}

	var sb strings.Builder
	args := make([]any, 0, len(tokens)*len(columns))

	for i, token := range tokens {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		sb.WriteString("(")
		for j, column := range columns {
			if j > 0 {
				sb.WriteString(" OR ")
			}
			sb.WriteString(column)
			sb.WriteString(" ILIKE ?")
			args = append(args, "%"+token+"%")
		}
		sb.WriteString(")")
	}

	return Predicate{Expr: sb.String(), Args: args}, true
}

// Tokens splits query on whitespace and lower-cases every token.
func Tokens(query string) []string {
	fields := strings.Fields(query)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		tokens = append(tokens, strings.ToLower(field))
	}
	return tokens
}

// Match applies the compiled semantics to in-memory field values: every
// token of query must appear as a case-insensitive substring of at least
// one field. An empty query matches everything.
func Match(query string, fields ...string) bool {
	tokens := Tokens(query)
	if len(tokens) == 0 {
		return true
	}

	lowered := make([]string, 0, len(fields))
	for _, field := range fields {
		lowered = append(lowered, strings.ToLower(field))
	}

	for _, token := range tokens {
		found := false
		for _, field := range lowered {
			if strings.Contains(field, token) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
