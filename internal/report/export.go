package report

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"staffboard/internal/models"
)

type taskSource interface {
	GetAll(ctx context.Context) ([]models.Task, error)
	Summary(ctx context.Context) (models.Summary, error)
}

type employeeSource interface {
	GetAll(ctx context.Context) ([]models.Employee, error)
}

// Exporter renders the admin dashboard numbers and the full task list as
// json, csv or pdf.
type Exporter struct {
	tasks     taskSource
	employees employeeSource
}

func NewExporter(tasks taskSource, employees employeeSource) *Exporter {
	return &Exporter{tasks: tasks, employees: employees}
}

type row struct {
	ID         int64  `json:"id"`
	Employee   string `json:"employee"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	AssignedAt string `json:"assigned_at"`
}

type report struct {
	Summary models.Summary `json:"summary"`
	Tasks   []row          `json:"tasks"`
}

func (e *Exporter) Export(ctx context.Context, format string) ([]byte, error) {
	rep, err := e.build(ctx)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(rep, "", "  ")
	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "employee", "title", "status", "assigned_at"})
		for _, r := range rep.Tasks {
			_ = w.Write([]string{fmt.Sprint(r.ID), r.Employee, r.Title, r.Status, r.AssignedAt})
		}
		w.Flush()
		return []byte(b.String()), nil
	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Task Report")
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, fmt.Sprintf(
			"pending=%d in_review=%d completed=%d failed=%d assigned_today=%d total=%d",
			rep.Summary.Pending, rep.Summary.InReview, rep.Summary.Completed,
			rep.Summary.Failed, rep.Summary.AssignedToday, rep.Summary.Total,
		), "0", "L", false)
		pdf.Ln(4)
		for _, r := range rep.Tasks {
			line := fmt.Sprintf("#%d [%s] %s - %s (%s)", r.ID, r.Status, r.Employee, r.Title, r.AssignedAt)
			pdf.MultiCell(0, 6, line, "0", "L", false)
		}
		var buf strings.Builder
		if err := pdf.Output(io.Writer(&buf)); err != nil {
			return nil, err
		}
		return []byte(buf.String()), nil
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}

func (e *Exporter) build(ctx context.Context) (report, error) {
	sum, err := e.tasks.Summary(ctx)
	if err != nil {
		return report{}, err
	}
	all, err := e.tasks.GetAll(ctx)
	if err != nil {
		return report{}, err
	}
	employees, err := e.employees.GetAll(ctx)
	if err != nil {
		return report{}, err
	}

	names := make(map[int64]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.Name
	}

	rep := report{Summary: sum, Tasks: make([]row, 0, len(all))}
	for _, t := range all {
		rep.Tasks = append(rep.Tasks, row{
			ID:         t.ID,
			Employee:   names[t.EmployeeID],
			Title:      t.Title,
			Status:     string(t.Status),
			AssignedAt: t.AssignedAt.Format("2006-01-02 15:04"),
		})
	}
	return rep, nil
}
