package trials

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV decodes trials from headerless numeric CSV, one trial per record.
// Lines starting with '#' are ignored.
func ReadCSV(r io.Reader) (*Matrix, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	// Ragged records are reported by New with the trial index.
	reader.FieldsPerRecord = -1

	var rows [][]float64
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		i := len(rows)
		row := make([]float64, len(record))
		for j, val := range record {
			f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, col %d: %v", ErrInvalidInput, i, j, err)
			}
			row[j] = f
		}
		rows = append(rows, row)
	}

	return New(rows)
}
