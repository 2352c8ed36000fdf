package handlers

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"notebridge/internal/tools"
	"notebridge/internal/workspace"
)

// Search methods understood by the workspace.
var searchMethods = map[string]int{
	"keyword": 0,
	"query":   1,
	"sql":     2,
	"regex":   3,
}

type searchFulltextHandler struct{ tools.Definition }

func newSearchFulltextHandler() tools.Handler {
	return searchFulltextHandler{tools.Definition{
		Name:        "search_fulltext",
		Description: "Full-text search over block content. Returns matching blocks with their document paths.",
		ReadOnly:    true,
		Params: []tools.Param{
			{Name: "query", Type: "string", Required: true, Description: "Search text"},
			{Name: "method", Type: "string", Description: "Match method", Default: "keyword", Enum: []string{"keyword", "query", "sql", "regex"}},
			{Name: "types", Type: "array", Description: "Block types to include, e.g. heading, paragraph, document"},
			{Name: "paths", Type: "array", Description: "Notebook or document paths to restrict the search to"},
			{Name: "page", Type: "integer", Description: "Result page, starting at 1", Default: 1},
			{Name: "page_size", Type: "integer", Description: "Results per page"},
		},
	}}
}

func (searchFulltextHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	a := tools.Args(args)

	query, err := a.String("query")
	if err != nil {
		return nil, err
	}
	methodName, err := a.OptionalString("method")
	if err != nil {
		return nil, err
	}
	method := 0
	if methodName != "" {
		m, ok := searchMethods[strings.ToLower(methodName)]
		if !ok {
			return nil, fmt.Errorf("unknown search method %q", methodName)
		}
		method = m
	}
	types, err := a.StringSlice("types")
	if err != nil {
		return nil, err
	}
	paths, err := a.StringSlice("paths")
	if err != nil {
		return nil, err
	}
	page, err := a.Int("page", 1)
	if err != nil {
		return nil, err
	}
	pageSize, err := a.Int("page_size", 0)
	if err != nil {
		return nil, err
	}
	if page < 1 || pageSize < 0 {
		return nil, fmt.Errorf("page must be at least 1 and page_size must not be negative")
	}

	return ec.Workspace().FullTextSearch(ctx, workspace.SearchOptions{
		Query:    query,
		Method:   method,
		Types:    types,
		Paths:    paths,
		Page:     page,
		PageSize: pageSize,
	})
}

type querySQLHandler struct{ tools.Definition }

func newQuerySQLHandler() tools.Handler {
	return querySQLHandler{tools.Definition{
		Name:        "query_sql",
		Description: "Run a read-only SQL SELECT against the block index. See the sql_reference prompt for the schema.",
		ReadOnly:    true,
		Params: []tools.Param{
			{Name: "stmt", Type: "string", Required: true, Description: "SQL statement starting with SELECT or WITH"},
		},
	}}
}

func (querySQLHandler) Execute(ctx context.Context, args map[string]interface{}, ec *tools.ExecutionContext) (interface{}, error) {
	stmt, err := tools.Args(args).String("stmt")
	if err != nil {
		return nil, err
	}
	if err := checkReadOnlyStatement(stmt); err != nil {
		return nil, err
	}
	return ec.Workspace().Query(ctx, stmt)
}

// writeKeywords start statements that modify the database. REPLACE is also a
// scalar function and only counts when it is not followed by "(".
var writeKeywords = map[string]bool{
	"INSERT":  true,
	"UPDATE":  true,
	"DELETE":  true,
	"REPLACE": true,
	"DROP":    true,
	"ALTER":   true,
	"CREATE":  true,
	"ATTACH":  true,
	"DETACH":  true,
	"PRAGMA":  true,
	"VACUUM":  true,
	"REINDEX": true,
}

// checkReadOnlyStatement accepts a single SELECT, or WITH ... SELECT,
// statement. A trailing semicolon is allowed.
func checkReadOnlyStatement(stmt string) error {
	tokens := sqlTokens(stmt)
	for len(tokens) > 0 && tokens[len(tokens)-1] == ";" {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) == 0 {
		return fmt.Errorf("only SELECT statements are allowed")
	}
	if first := tokens[0]; first != "SELECT" && first != "WITH" {
		return fmt.Errorf("only SELECT statements are allowed")
	}
	for i, tok := range tokens {
		if tok == ";" {
			return fmt.Errorf("only a single SELECT statement is allowed")
		}
		if !writeKeywords[tok] {
			continue
		}
		if tok == "REPLACE" && i+1 < len(tokens) && tokens[i+1] == "(" {
			continue
		}
		return fmt.Errorf("only SELECT statements are allowed, found %s", tok)
	}
	return nil
}

// sqlTokens returns the upper-cased bare words and the punctuation of stmt.
// String literals, quoted identifiers and comments are skipped.
func sqlTokens(stmt string) []string {
	var tokens []string
	runes := []rune(stmt)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++

		case r == '-' && i+1 < len(runes) && runes[i+1] == '-':
			for i < len(runes) && runes[i] != '\n' {
				i++
			}

		case r == '/' && i+1 < len(runes) && runes[i+1] == '*':
			i += 2
			for i < len(runes) && !(runes[i] == '*' && i+1 < len(runes) && runes[i+1] == '/') {
				i++
			}
			i += 2

		case r == '\'' || r == '"' || r == '`' || r == '[':
			closing := r
			if r == '[' {
				closing = ']'
			}
			i++
			for i < len(runes) {
				if runes[i] == closing {
					// Doubled quotes escape themselves.
					if closing != ']' && i+1 < len(runes) && runes[i+1] == closing {
						i += 2
						continue
					}
					break
				}
				i++
			}
			i++
			tokens = append(tokens, "?")

		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			start := i
			for i < len(runes) && (runes[i] == '_' || runes[i] == '$' || unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i])) {
				i++
			}
			tokens = append(tokens, strings.ToUpper(string(runes[start:i])))

		default:
			tokens = append(tokens, string(r))
			i++
		}
	}
	return tokens
}
