package repository

import (
	"fmt"
	"slices"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"
	"github.com/xuri/excelize/v2"
)

// Table is an in-memory copy of the candidate sheet. Every row holds exactly
// len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// newTable widens the header to the longest row so that cells without a
// heading survive a rewrite. Such columns are named after their sheet letter.
func newTable(header []string, rows [][]string) *Table {
	t := &Table{Columns: append([]string{}, header...)}
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		for len(t.Columns) < len(row) {
			t.Columns = append(t.Columns, t.unnamedColumn(len(t.Columns)+1))
		}
		t.Rows = append(t.Rows, row)
	}
	for i, row := range t.Rows {
		t.Rows[i] = padRow(row, len(t.Columns))
	}
	return t
}

// unnamedColumn names the headerless column at 1-based position n.
func (t *Table) unnamedColumn(n int) string {
	letter, err := excelize.ColumnNumberToName(n)
	if err != nil {
		letter = fmt.Sprint(n)
	}
	name := "column_" + letter
	for k := 2; slices.Contains(t.Columns, name); k++ {
		name = fmt.Sprintf("column_%s_%d", letter, k)
	}
	return name
}

// ColumnIndex returns the position of col or -1.
func (t *Table) ColumnIndex(col string) int {
	return slices.Index(t.Columns, col)
}

// EnsureColumn appends an empty column when col is missing and returns its index.
func (t *Table) EnsureColumn(col string) int {
	if i := t.ColumnIndex(col); i >= 0 {
		return i
	}
	t.Columns = append(t.Columns, col)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], "")
	}
	return len(t.Columns) - 1
}

// Find returns the row index of candidateID or -1.
func (t *Table) Find(candidateID string) int {
	idCol := t.ColumnIndex(model.ColCandidateID)
	if idCol < 0 {
		return -1
	}
	for i, row := range t.Rows {
		if row[idCol] == candidateID {
			return i
		}
	}
	return -1
}

// Candidate materialises row i as a detached snapshot.
func (t *Table) Candidate(i int) model.Candidate {
	fields := make(map[string]string, len(t.Columns))
	for j, col := range t.Columns {
		fields[col] = t.Rows[i][j]
	}
	return model.Candidate{ID: fields[model.ColCandidateID], Fields: fields}
}

// Candidates returns every row as a snapshot, in table order.
func (t *Table) Candidates() []model.Candidate {
	out := make([]model.Candidate, 0, len(t.Rows))
	for i := range t.Rows {
		out = append(out, t.Candidate(i))
	}
	return out
}

func padRow(row []string, n int) []string {
	out := make([]string, n)
	copy(out, row)
	return out
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
