package dto

import (
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams drives the ordering of repository listings.
// SortBy may name several comma separated columns; each is ordered by SortDir.
type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// SortedBy returns params ordered by the given columns.
func SortedBy(dir string, columns ...string) QueryParams {
	return QueryParams{
		SortBy:  strings.Join(columns, ","),
		SortDir: dir,
	}
}

// OrderClause renders the ORDER BY clause, or an empty string when no ordering was requested.
func (q QueryParams) OrderClause(table string) string {
	if q.SortBy == "" {
		return ""
	}

	dir := strings.ToUpper(q.SortDir)
	if dir != SortDirAsc && dir != SortDirDesc {
		dir = SortDirAsc
	}

	terms := []string{}

	for _, column := range strings.Split(q.SortBy, ",") {
		column = strings.TrimSpace(column)
		if column == "" {
			continue
		}

		if table != "" && !strings.Contains(column, ".") {
			column = table + "." + column
		}

		terms = append(terms, column+" "+dir)
	}

	if len(terms) == 0 {
		return ""
	}

	return "ORDER BY " + strings.Join(terms, ", ")
}
