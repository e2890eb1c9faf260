package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Table is a CSV document table with one designated text column.
// Row order defines document index order and is preserved through
// classification. Built once, immutable afterward.
type Table struct {
	header  []string
	rows    [][]string
	textCol int
}

// LoadTable reads a CSV table and locates the designated text column.
// The first record is treated as the header. Returns ErrColumnNotFound if
// the column is not present and ErrEmptyTable if there are no data rows.
//
// CSV parsing uses the standard library; none of the reference stacks carry
// a CSV dependency.
func LoadTable(r io.Reader, column string) (*Table, error) {
	reader := csv.NewReader(r)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	header := records[0]
	textCol := -1
	for i, name := range header {
		if name == column {
			textCol = i
			break
		}
	}
	if textCol == -1 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}

	rows := records[1:]
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	return &Table{
		header:  header,
		rows:    rows,
		textCol: textCol,
	}, nil
}

// LoadTableFile reads a CSV table from a file.
func LoadTableFile(path, column string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadTable(f, column)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Texts returns the text column values in row order.
func (t *Table) Texts() []string {
	texts := make([]string, len(t.rows))
	for i, row := range t.rows {
		if t.textCol < len(row) {
			texts[i] = row[t.textCol]
		}
	}
	return texts
}

// WriteWithClasses writes the table with an additional "class" column.
// classes must hold exactly one value per row, in row order.
func (t *Table) WriteWithClasses(w io.Writer, classes []string) error {
	if len(classes) != len(t.rows) {
		return fmt.Errorf("%w: %d classes for %d rows", ErrClassCountMismatch, len(classes), len(t.rows))
	}

	writer := csv.NewWriter(w)

	header := append(append([]string{}, t.header...), "class")
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, row := range t.rows {
		out := append(append([]string{}, row...), classes[i])
		if err := writer.Write(out); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFileWithClasses writes the classified table to a file.
func (t *Table) WriteFileWithClasses(path string, classes []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.WriteWithClasses(f, classes); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
