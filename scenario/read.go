// SPDX-License-Identifier: MIT

package scenario

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV parses a scenario set from r.
//
// Implementation:
//   - Stage 1: read all records ('#' starts a comment line, leading space trimmed).
//   - Stage 2: skip a header record whose first field is not numeric.
//   - Stage 3: parse cost (and probability when the records are two wide).
//
// Errors:
//   - ErrEmptyInput: no scenario records.
//   - ErrBadRecord: CSV syntax error, ragged width, width outside {1,2},
//     or a field that is not a float.
//
// Range checks (finite costs, non-negative probabilities) are left to the
// reduction package, which reports them as invalid arguments.
func ReadCSV(r io.Reader) (*Set, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("scenario.ReadCSV: %w: %w", ErrBadRecord, err)
	}

	line := 1
	if len(records) > 0 && !isNumeric(records[0][0]) {
		records = records[1:]
		line++
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	width := len(records[0])
	if width < 1 || width > 2 {
		return nil, fmt.Errorf("scenario.ReadCSV: %d fields per record: %w", width, ErrBadRecord)
	}

	set := &Set{Costs: make([]float64, len(records))}
	if width == 2 {
		set.Probabilities = make([]float64, len(records))
	}
	for i, rec := range records {
		if set.Costs[i], err = parseField(rec[0]); err != nil {
			return nil, fmt.Errorf("scenario.ReadCSV: record %d cost: %w", line+i, err)
		}
		if width == 2 {
			if set.Probabilities[i], err = parseField(rec[1]); err != nil {
				return nil, fmt.Errorf("scenario.ReadCSV: record %d probability: %w", line+i, err)
			}
		}
	}

	return set, nil
}

// ParseIDs parses a comma-separated scenario id list such as "1, 3,7".
// Range and duplicate checks are left to the reduction package.
func ParseIDs(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrBadIDList
	}
	parts := strings.Split(s, ",")
	ids := make([]int, len(parts))
	for i, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("scenario.ParseIDs: %q: %w", p, ErrBadIDList)
		}
		ids[i] = id
	}

	return ids, nil
}

// FormatIDs renders ids the way ParseIDs reads them.
func FormatIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, ",")
}

func parseField(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadRecord, err)
	}

	return v, nil
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)

	return err == nil
}
