package sheet

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/five82/gridsheet/internal/grid"
)

//go:embed records.yaml
var sampleRecords []byte

// Record is one job request row.
type Record struct {
	ID         int    `yaml:"id"`
	JobRequest string `yaml:"job_request"`
	Submitted  string `yaml:"submitted"`
	Status     string `yaml:"status"`
	Submitter  string `yaml:"submitter"`
	URL        string `yaml:"url"`
	Assigned   string `yaml:"assigned"`
	Priority   string `yaml:"priority"`
	DueDate    string `yaml:"due_date"`
	EstValue   int64  `yaml:"est_value"`
}

// Sheet is the static dataset behind the grid: the records followed by
// FillerRows empty rows.
type Sheet struct {
	records []Record
}

// New builds a sheet over records.
func New(records []Record) Sheet {
	dup := make([]Record, len(records))
	copy(dup, records)
	return Sheet{records: dup}
}

// Sample returns the sheet built from the embedded sample records.
func Sample() (Sheet, error) {
	records, err := ParseRecords(sampleRecords)
	if err != nil {
		return Sheet{}, err
	}
	return New(records), nil
}

// ParseRecords decodes a YAML list of records.
func ParseRecords(data []byte) ([]Record, error) {
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}
	return records, nil
}

// Records returns a copy of the data rows.
func (s Sheet) Records() []Record {
	dup := make([]Record, len(s.records))
	copy(dup, s.records)
	return dup
}

// Dimensions returns the grid size: one row per record plus filler rows,
// one column per schema entry.
func (s Sheet) Dimensions() grid.Dimensions {
	return grid.Dimensions{Rows: len(s.records) + FillerRows, Cols: len(Columns)}
}

// Record returns the record shown on 1-indexed row.
func (s Sheet) Record(row int) (Record, bool) {
	if row < 1 || row > len(s.records) {
		return Record{}, false
	}
	return s.records[row-1], true
}

// IsFiller reports whether row is one of the trailing empty rows.
func (s Sheet) IsFiller(row int) bool {
	return row > len(s.records)
}

// Cell returns the display text of (row, col). Filler rows only show their
// row number.
func (s Sheet) Cell(row, col int) string {
	if col == ColIndex {
		if row < 1 {
			return ""
		}
		return strconv.Itoa(row)
	}
	rec, ok := s.Record(row)
	if !ok {
		return ""
	}
	switch col {
	case ColJobRequest:
		return rec.JobRequest
	case ColSubmitted:
		return rec.Submitted
	case ColStatus:
		return rec.Status
	case ColSubmitter:
		return rec.Submitter
	case ColURL:
		return rec.URL
	case ColAssigned:
		return rec.Assigned
	case ColPriority:
		return rec.Priority
	case ColDueDate:
		return rec.DueDate
	case ColEstValue:
		return FormatValue(rec.EstValue)
	}
	return ""
}

// FormatValue renders an estimated value with thousands separators and the
// rupee sign, e.g. "6,200,000 ₹".
func FormatValue(v int64) string {
	sign := ""
	mag := uint64(v)
	if v < 0 {
		sign = "-"
		mag = -mag
	}
	digits := strconv.FormatUint(mag, 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + " ₹"
}
