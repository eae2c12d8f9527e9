package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"todo-tracker/internal/api"
	"todo-tracker/internal/errors"

	"github.com/jung-kurt/gofpdf"
)

// Exporter renders the task list in a requested format.
type Exporter struct {
	api api.API
}

// NewExporter creates a new Exporter over the given API
func NewExporter(a api.API) *Exporter {
	return &Exporter{api: a}
}

// Export returns the full task list rendered as json, csv, or pdf
func (e *Exporter) Export(ctx context.Context, format string) ([]byte, error) {
	tasks, err := e.api.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(tasks, "", "  ")
	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "name", "priority"})
		for _, task := range tasks {
			_ = w.Write([]string{fmt.Sprint(task.ID), task.Name, fmt.Sprint(task.Priority)})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Task List")
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		for _, task := range tasks {
			line := fmt.Sprintf("%d. %s (priority %d)", task.ID, task.Name, task.Priority)
			pdf.MultiCell(0, 6, line, "0", "L", false)
		}
		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.NewInvalidInputError("format", format, "supported formats: json, csv, pdf")
	}
}
