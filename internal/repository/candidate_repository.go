package repository

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/metrics"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/model"
	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/util"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const backupTimeLayout = "20060102_150405.000000"

// CandidateRepository owns the candidate workbook. Every write copies the
// current file into the backup directory and then rewrites the whole sheet,
// so load-modify-save sequences are serialised behind mu.
type CandidateRepository struct {
	path      string
	backupDir string
	sheet     string

	mu  sync.RWMutex
	now func() time.Time
}

func NewCandidateRepository(path, backupDir, sheet string) *CandidateRepository {
	return &CandidateRepository{
		path:      path,
		backupDir: backupDir,
		sheet:     sheet,
		now:       time.Now,
	}
}

func (r *CandidateRepository) Path() string {
	return r.path
}

// LoadAll reads the full table. Required columns are added empty when missing.
func (r *CandidateRepository) LoadAll() (*Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.load()
}

// FindByID returns a snapshot of the candidate row.
func (r *CandidateRepository) FindByID(candidateID string) (*model.Candidate, error) {
	table, err := r.LoadAll()
	if err != nil {
		return nil, err
	}
	i := table.Find(candidateID)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrCandidateNotFound, candidateID)
	}
	c := table.Candidate(i)
	return &c, nil
}

// List returns candidates whose status equals status, ignoring case. An empty
// status or "all" returns every candidate.
func (r *CandidateRepository) List(status string) ([]model.Candidate, error) {
	table, err := r.LoadAll()
	if err != nil {
		return nil, err
	}
	all := table.Candidates()
	status = strings.TrimSpace(status)
	if status == "" || strings.EqualFold(status, "all") {
		return all, nil
	}
	out := make([]model.Candidate, 0, len(all))
	for _, c := range all {
		if strings.EqualFold(c.Status(), status) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Update merges updates into the candidate row and persists the table.
// Structured values are JSON encoded and unknown columns are created.
func (r *CandidateRepository) Update(candidateID string, updates map[string]any) error {
	return r.mutate(candidateID, func(model.Candidate) (map[string]any, error) {
		return updates, nil
	})
}

// SetStatus sets status and stamps timestamp with the current time.
func (r *CandidateRepository) SetStatus(candidateID, status string) error {
	return r.Update(candidateID, map[string]any{
		model.ColStatus:    status,
		model.ColTimestamp: r.now().Format(time.RFC3339Nano),
	})
}

// AppendTranscript appends entry to transcript_json.
func (r *CandidateRepository) AppendTranscript(candidateID string, entry model.TranscriptEntry) error {
	return r.mutate(candidateID, func(c model.Candidate) (map[string]any, error) {
		transcript := util.DecodeAs(c.Get(model.ColTranscript), []any{})
		transcript = append(transcript, entry)
		return map[string]any{model.ColTranscript: transcript}, nil
	})
}

// AppendHistory appends rec to interview_history.
func (r *CandidateRepository) AppendHistory(candidateID string, rec model.HistoryRecord) error {
	return r.mutate(candidateID, func(c model.Candidate) (map[string]any, error) {
		history := util.DecodeAs(c.Get(model.ColHistory), []any{})
		history = append(history, rec)
		return map[string]any{model.ColHistory: history}, nil
	})
}

func (r *CandidateRepository) mutate(candidateID string, fn func(model.Candidate) (map[string]any, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, err := r.load()
	if err != nil {
		return err
	}
	i := table.Find(candidateID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrCandidateNotFound, candidateID)
	}

	updates, err := fn(table.Candidate(i))
	if err != nil {
		return err
	}

	cells := make(map[string]string, len(updates))
	for col, value := range updates {
		encoded, err := util.EncodeField(value)
		if err != nil {
			return fmt.Errorf("column %s: %w", col, err)
		}
		text := util.CellText(encoded)
		if utf8.RuneCountInString(text) > excelize.TotalCellChars {
			return fmt.Errorf("%w: column %s exceeds %d characters", ErrPersistence, col, excelize.TotalCellChars)
		}
		cells[col] = text
	}
	for col, text := range cells {
		j := table.EnsureColumn(col)
		table.Rows[i][j] = text
	}

	if err := r.save(table); err != nil {
		metrics.IncreaseStoreWritesMetric(metrics.ResultFailed)
		return err
	}
	metrics.IncreaseStoreWritesMetric(metrics.ResultSucceeded)
	return nil
}

func (r *CandidateRepository) load() (*Table, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrPersistence, r.path, err)
	}
	defer f.Close()

	sheet := r.sheetName(f)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %s: %v", ErrPersistence, sheet, err)
	}

	var header []string
	if len(rows) > 0 {
		header = rows[0]
		rows = rows[1:]
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	table := newTable(header, rows)
	for _, col := range model.RequiredColumns {
		table.EnsureColumn(col)
	}
	return table, nil
}

func (r *CandidateRepository) sheetName(f *excelize.File) string {
	if r.sheet != "" {
		for _, name := range f.GetSheetList() {
			if name == r.sheet {
				return name
			}
		}
	}
	return f.GetSheetName(0)
}

func (r *CandidateRepository) save(table *Table) error {
	if _, err := r.backup(); err != nil {
		return err
	}
	if err := WriteTable(r.path, r.sheet, table); err != nil {
		return err
	}
	zap.S().Named("store").Debugf("saved %d candidates to %s", len(table.Rows), r.path)
	return nil
}

// backup copies the workbook to backupDir/candidates_backup_<timestamp>.xlsx.
func (r *CandidateRepository) backup() (string, error) {
	if err := os.MkdirAll(r.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating backup dir: %v", ErrPersistence, err)
	}
	stamp := r.now().Format(backupTimeLayout)
	ext := filepath.Ext(r.path)
	dst := filepath.Join(r.backupDir, fmt.Sprintf("candidates_backup_%s%s", stamp, ext))
	for n := 1; fileExists(dst); n++ {
		dst = filepath.Join(r.backupDir, fmt.Sprintf("candidates_backup_%s_%d%s", stamp, n, ext))
	}
	if err := copyFile(r.path, dst); err != nil {
		return "", fmt.Errorf("%w: backup to %s: %v", ErrPersistence, dst, err)
	}
	return dst, nil
}

// LatestBackup returns the most recent backup file, or "" when none exist.
func (r *CandidateRepository) LatestBackup() (string, error) {
	matches, err := filepath.Glob(filepath.Join(r.backupDir, "candidates_backup_*"))
	if err != nil {
		return "", err
	}
	latest := ""
	for _, m := range matches {
		if m > latest {
			latest = m
		}
	}
	return latest, nil
}

// WriteTable writes table as the only sheet of a new workbook at path. The
// workbook is written to a temporary file first and renamed into place.
func WriteTable(path, sheet string, table *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("%w: naming sheet: %v", ErrPersistence, err)
		}
	}

	if err := setRow(f, sheet, 1, table.Columns); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	tmp, err := os.CreateTemp(dir, ".candidates-*.xlsx")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	tmpName := tmp.Name()
	_, werr := f.WriteTo(tmp)
	cerr := tmp.Close()
	if err := errors.Join(werr, cerr); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing %s: %v", ErrPersistence, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replacing %s: %v", ErrPersistence, path, err)
	}
	return nil
}

// CreateCandidatesFile writes a new workbook holding columns and rows.
func CreateCandidatesFile(path, sheet string, columns []string, rows [][]string) error {
	return WriteTable(path, sheet, newTable(columns, rows))
}

func setRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("%w: row %d: %v", ErrPersistence, rowNum, err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
