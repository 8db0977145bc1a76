package inventory

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrEmptyCSV is the one hard failure of an import: a file with no data rows.
var ErrEmptyCSV = errors.New("CSV file is empty or invalid format")

// ImportSummary reports the per-row outcome of a bulk import.
type ImportSummary struct {
	Total   int      `json:"total"`
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// ImportCSV creates one product per data row. Rows are processed in file
// order and fail independently: a bad row is recorded in the summary and
// skipped, never aborting the batch. Header names match case-insensitively
// and a Status column, if present, is ignored.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader, actor string) (*ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error processing CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrEmptyCSV
	}

	columns := map[string]int{}
	for i, name := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	summary := &ImportSummary{Errors: []string{}}
	for _, record := range records[1:] {
		summary.Total++
		s.importRow(ctx, columns, record, actor, summary)
	}
	return summary, nil
}

func (s *Service) importRow(ctx context.Context, columns map[string]int, record []string, actor string, summary *ImportSummary) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field("name")
	rawStock := field("stock")

	if name == "" || rawStock == "" {
		label := name
		if label == "" {
			label = "unnamed"
		}
		summary.Skipped++
		summary.Errors = append(summary.Errors,
			fmt.Sprintf("Skipped: Missing required fields for product %q", label))
		return
	}

	stock, err := strconv.Atoi(rawStock)
	if err != nil || stock < 0 {
		summary.Skipped++
		summary.Errors = append(summary.Errors,
			fmt.Sprintf("Skipped: Invalid stock value for product %q: %s", name, rawStock))
		return
	}

	in := ProductInput{
		Name:     name,
		Unit:     field("unit"),
		Category: field("category"),
		Brand:    field("brand"),
		Stock:    stock,
	}
	if _, err := s.CreateProduct(ctx, in, actor); err != nil {
		summary.Skipped++
		if errors.Is(err, ErrDuplicateName) {
			summary.Errors = append(summary.Errors,
				fmt.Sprintf("Skipped: Product %q already exists", name))
		} else {
			summary.Errors = append(summary.Errors,
				fmt.Sprintf("Error adding product %q: %v", name, err))
		}
		return
	}
	summary.Added++
}

// ExportCSV writes every product, unfiltered, in the fixed column order
// Name,Unit,Category,Brand,Stock,Status. Non-empty text fields are quoted
// with internal quotes doubled, empty ones are emitted bare, Stock stays a
// bare integer and Status is always quoted. encoding/csv quotes
// all-or-nothing, so the rows are formatted by hand to keep the format
// the existing consumers parse.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	products, err := s.catalog.All(ctx)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("Name,Unit,Category,Brand,Stock,Status\n")
	for _, p := range products {
		fmt.Fprintf(&b, "%s,%s,%s,%s,%d,\"%s\"\n",
			escapeCSV(p.Name),
			escapeCSV(p.Unit),
			escapeCSV(p.Category),
			escapeCSV(p.Brand),
			p.Stock,
			p.Status,
		)
	}
	_, err = io.WriteString(w, b.String())
	return err
}

func escapeCSV(v string) string {
	if v == "" {
		return ""
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
