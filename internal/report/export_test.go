package report_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"staffboard/internal/config"
	"staffboard/internal/models"
	"staffboard/internal/report"
	"staffboard/internal/service/tasks"
	"staffboard/internal/store/memory"
)

func newExporter(t *testing.T) *report.Exporter {
	t.Helper()

	employees, err := memory.NewEmployeeStore([]config.SeedEmployee{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Password: "123"},
	})
	if err != nil {
		t.Fatalf("NewEmployeeStore() err = %v", err)
	}
	svc := tasks.NewService(memory.NewTaskStore(), employees)

	ctx := context.Background()
	task, err := svc.Assign(ctx, 1, "Fix bug", "desc")
	if err != nil {
		t.Fatalf("Assign() err = %v", err)
	}
	if _, err := svc.Submit(ctx, task.ID); err != nil {
		t.Fatalf("Submit() err = %v", err)
	}

	return report.NewExporter(svc, employees)
}

func TestExport_JSON(t *testing.T) {
	e := newExporter(t)

	data, err := e.Export(context.Background(), "json")
	if err != nil {
		t.Fatalf("Export(json) err = %v, want nil", err)
	}

	var out struct {
		Summary models.Summary `json:"summary"`
		Tasks   []struct {
			Employee string `json:"employee"`
			Status   string `json:"status"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Export(json) produced invalid json: %v", err)
	}
	if out.Summary.InReview != 1 || out.Summary.Total != 1 {
		t.Fatalf("Export(json) summary = %+v, want in_review=1 total=1", out.Summary)
	}
	if len(out.Tasks) != 1 || out.Tasks[0].Employee != "Alice" {
		t.Fatalf("Export(json) tasks = %+v, want one row for Alice", out.Tasks)
	}
}

func TestExport_CSV(t *testing.T) {
	e := newExporter(t)

	data, err := e.Export(context.Background(), "csv")
	if err != nil {
		t.Fatalf("Export(csv) err = %v, want nil", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Export(csv) lines = %d, want 2: %q", len(lines), string(data))
	}
	if !strings.HasPrefix(lines[0], "id,employee,title,status") {
		t.Fatalf("Export(csv) header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Alice") || !strings.Contains(lines[1], "in_review") {
		t.Fatalf("Export(csv) row = %q", lines[1])
	}
}

func TestExport_PDF(t *testing.T) {
	e := newExporter(t)

	data, err := e.Export(context.Background(), "pdf")
	if err != nil {
		t.Fatalf("Export(pdf) err = %v, want nil", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Fatalf("Export(pdf) does not start with %%PDF: %q", string(data[:8]))
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	e := newExporter(t)

	if _, err := e.Export(context.Background(), "xml"); err == nil {
		t.Fatal("Export(xml) err = nil, want non-nil")
	}
}
