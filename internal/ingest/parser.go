// Package ingest turns an uploaded contact list into task records.
package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/xuri/excelize/v2"

	"github.com/Hema-A-05/MERN-flasklite/internal/models"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrMissingColumns      = errors.New("missing required columns")
)

const (
	ColFirstName = "FirstName"
	ColPhone     = "Phone"
	ColNotes     = "Notes"
)

// RequiredColumns lists the header names an upload must carry, case-sensitive.
var RequiredColumns = []string{ColFirstName, ColPhone, ColNotes}

var utf8BOM = []byte("\xef\xbb\xbf")

type format int

const (
	formatCSV format = iota + 1
	formatSpreadsheet
)

// ParseFile reads the whole upload, picks a reader from the file name's
// extension and returns the rows in file order.
func ParseFile(filename string, r io.Reader) ([]models.TaskRecord, error) {
	f, err := formatOf(filename)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if err := checkContent(f, data); err != nil {
		return nil, err
	}

	var rows [][]string
	switch f {
	case formatCSV:
		rows, err = readCSV(data)
	case formatSpreadsheet:
		rows, err = readSpreadsheet(data)
	}
	if err != nil {
		return nil, err
	}
	return toRecords(rows)
}

func formatOf(filename string) (format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return formatCSV, nil
	case ".xlsx", ".xls":
		return formatSpreadsheet, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFileType, filepath.Ext(filename))
	}
}

// checkContent rejects uploads whose bytes disagree with their extension.
// Empty CSV files pass and fail later on the header check.
func checkContent(f format, data []byte) error {
	if len(data) == 0 && f == formatCSV {
		return nil
	}
	m := mimetype.Detect(data)
	switch f {
	case formatCSV:
		if !strings.HasPrefix(m.String(), "text/") {
			return fmt.Errorf("%w: csv upload looks like %s", ErrUnsupportedFileType, m.String())
		}
	case formatSpreadsheet:
		if !isZip(m) {
			return fmt.Errorf("%w: spreadsheet upload looks like %s", ErrUnsupportedFileType, m.String())
		}
	}
	return nil
}

func isZip(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("application/zip") {
			return true
		}
	}
	return false
}

func readCSV(data []byte) ([][]string, error) {
	cr := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}

func readSpreadsheet(data []byte) ([][]string, error) {
	xf, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer xf.Close()

	sheets := xf.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := xf.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func toRecords(rows [][]string) ([]models.TaskRecord, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(RequiredColumns, ", "))
	}

	idx := map[string]int{}
	for i, h := range rows[0] {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, seen := idx[h]; !seen {
			idx[h] = i
		}
	}
	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	out := make([]models.TaskRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		out = append(out, models.TaskRecord{
			FirstName: cell(row, idx[ColFirstName]),
			Phone:     cell(row, idx[ColPhone]),
			Notes:     cell(row, idx[ColNotes]),
		})
	}
	return out, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
