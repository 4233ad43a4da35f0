package repository

import (
	"fmt"
	"strings"

	"menu-eva/internal/model"
)

// setClause accumulates the SET columns of a partial UPDATE. Columns are
// added explicitly per non-nil patch field, never by reflecting over a map,
// so the generated statement stays statically checkable.
type setClause struct {
	cols []string
	args []any
}

func (s *setClause) set(col string, v any) {
	s.cols = append(s.cols, col)
	s.args = append(s.args, v)
}

// setText adds a nullable text column. An empty string clears the column,
// mirroring the admin forms which submit "" to remove a translation.
func (s *setClause) setText(col string, v string) {
	if v == "" {
		s.set(col, nil)
	} else {
		s.set(col, v)
	}
}

// build renders "UPDATE <table> SET c1 = $1, ..., updated_at = now()
// WHERE id = $n" with the id appended as the final argument. An empty
// clause is rejected rather than emitting malformed SQL.
func (s *setClause) build(table string, id int64) (string, []any, error) {
	if len(s.cols) == 0 {
		return "", nil, model.ErrEmptyPatch
	}

	parts := make([]string, 0, len(s.cols)+1)
	for i, col := range s.cols {
		parts = append(parts, fmt.Sprintf("%s = $%d", col, i+1))
	}
	parts = append(parts, "updated_at = now()")

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d",
		table,
		strings.Join(parts, ", "),
		len(s.args)+1,
	)
	return query, append(s.args, id), nil
}
