package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rshade/pagetable/internal/dataset"
)

// ErrEmptyCSV is returned when a CSV input has no header line.
var ErrEmptyCSV = errors.New("csv input has no header")

// LoadCSV reads a CSV file whose first line is the header.
func LoadCSV(path string) ([]string, []dataset.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening csv %s: %w", path, err)
	}
	defer f.Close()

	header, rows, err := ReadCSV(f)
	if err != nil {
		return nil, nil, fmt.Errorf("reading csv %s: %w", path, err)
	}
	return header, rows, nil
}

// ReadCSV parses CSV from r. Rows may have fewer or more cells than the header.
func ReadCSV(r io.Reader) ([]string, []dataset.Record, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyCSV
	}
	if err != nil {
		return nil, nil, fmt.Errorf("header: %w", err)
	}

	var rows []dataset.Record
	line := 1
	for {
		line++
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, dataset.Record(rec))
	}
	return header, rows, nil
}
