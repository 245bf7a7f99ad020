package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/valter-silva-au/todo-cli/pkg/models"
)

// fileHeader is the fixed header row of the backing file. Field order is
// the wire order for every record.
var fileHeader = []string{"id", "title", "description", "is_done"}

// EncodeTasks writes the full collection to w as CSV: the header row
// followed by one record per task, in slice order. Strings with embedded
// delimiters, quotes, or newlines are quoted by the CSV writer.
func EncodeTasks(w io.Writer, tasks []models.Task) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(fileHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, t := range tasks {
		record := []string{t.ID, t.Title, t.Description, formatBool(t.IsDone)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing task %s: %w", t.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing records: %w", err)
	}
	return nil
}

// DecodeTasks reads the header row and every subsequent record from r into
// a task slice, preserving file order. A record with the wrong field count
// or a done column that is not exactly "true" or "false" aborts the whole
// read with ErrDecode.
func DecodeTasks(r io.Reader) ([]models.Task, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(fileHeader)

	// Header row. An empty file decodes as an empty collection. The first
	// row is always consumed as the header; its content is not validated.
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: reading header: %v", ErrDecode, err)
	}

	var tasks []models.Task
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}

		done, err := parseBool(record[3])
		if err != nil {
			return nil, fmt.Errorf("%w: record %q: %v", ErrDecode, record[0], err)
		}

		tasks = append(tasks, models.Task{
			ID:          record[0],
			Title:       record[1],
			Description: record[2],
			IsDone:      done,
		})
	}

	return tasks, nil
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// parseBool accepts only the literal tokens the encoder emits.
func parseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("invalid done flag %q", s)
	}
}
