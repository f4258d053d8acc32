// Package csvsource reads denormalized CSV snapshots as ordered sequences of
// field-mappings. No type coercion happens here; parsing belongs to the
// ingestion layer.
package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Record maps a header name to the raw string value of one CSV row.
type Record map[string]string

// Read decodes header-first CSV into one Record per data row, source order
// preserved. Rows with a field count different from the header are an error.
func Read(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		rec := make(Record, len(header))
		for i, name := range header {
			rec[name] = row[i]
		}
		records = append(records, rec)
	}
	return records, nil
}

func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
