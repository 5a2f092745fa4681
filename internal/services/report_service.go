package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"budget-backend/internal/apperrors"
	"budget-backend/internal/models"
	"budget-backend/internal/repositories"
	"budget-backend/internal/timeutil"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf/v2"
)

const projectionMonths = 12

// MonthlyProjection is a dense 12-month budget table: one row per item, one
// column per month of the reporting window.
type MonthlyProjection struct {
	Months []string        `json:"months"`
	Rows   []ProjectionRow `json:"rows"`
}

type ProjectionRow struct {
	ItemID  uuid.UUID `json:"item_id"`
	Name    string    `json:"name"`
	Amounts []int64   `json:"amounts"`
}

// BuildMonthlyProjection spreads each item's sparse entries over a fixed
// 12-month window starting at startMonth. A cell takes the amount of the
// entry dated exactly at that month, zero when no entry exists. Should an
// item carry two entries in one month, the cell is their sum, which keeps
// the transform deterministic.
func BuildMonthlyProjection(items []*models.Item, startMonth time.Time) *MonthlyProjection {
	start := timeutil.MonthStart(startMonth)

	months := make([]string, projectionMonths)
	index := make(map[string]int, projectionMonths)
	for i := 0; i < projectionMonths; i++ {
		m := start.AddDate(0, i, 0)
		months[i] = m.Format(timeutil.DateLayout)
		index[months[i]] = i
	}

	rows := make([]ProjectionRow, 0, len(items))
	for _, item := range items {
		row := ProjectionRow{
			ItemID:  item.ID,
			Name:    item.Name,
			Amounts: make([]int64, projectionMonths),
		}
		for _, e := range item.Entries {
			key := timeutil.MonthStart(e.Date).Format(timeutil.DateLayout)
			if i, ok := index[key]; ok {
				row.Amounts[i] += e.Amount
			}
		}
		rows = append(rows, row)
	}

	return &MonthlyProjection{Months: months, Rows: rows}
}

// ReportService produces budget exports for a job from its item projection.
type ReportService struct {
	items      *repositories.ItemRepository
	jobs       *repositories.JobRepository
	startMonth time.Time
}

func NewReportService(items *repositories.ItemRepository, jobs *repositories.JobRepository, startMonth string) (*ReportService, error) {
	start, err := timeutil.ParseMonth(startMonth)
	if err != nil {
		return nil, fmt.Errorf("invalid reporting start month %q: %w", startMonth, err)
	}
	return &ReportService{items: items, jobs: jobs, startMonth: start}, nil
}

// Projection builds the 12-month table for a job, scoped to its project.
func (s *ReportService) Projection(ctx context.Context, projectID, jobID uuid.UUID) (*models.Job, *MonthlyProjection, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	if job.ProjectID != projectID {
		return nil, nil, fmt.Errorf("job %s in project %s: %w", jobID, projectID, apperrors.ErrNotFound)
	}

	items, err := s.items.FindByJobID(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}

	return job, BuildMonthlyProjection(items, s.startMonth), nil
}

// BudgetCSV renders the projection as CSV: a header of month columns followed
// by one line per item with a trailing row total.
func (s *ReportService) BudgetCSV(ctx context.Context, projectID, jobID uuid.UUID) ([]byte, error) {
	_, projection, err := s.Projection(ctx, projectID, jobID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append([]string{"item"}, projection.Months...)
	header = append(header, "total")
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range projection.Rows {
		record := make([]string, 0, projectionMonths+2)
		record = append(record, row.Name)
		var total int64
		for _, amount := range row.Amounts {
			record = append(record, strconv.FormatInt(amount, 10))
			total += amount
		}
		record = append(record, strconv.FormatInt(total, 10))
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BudgetPDF renders the projection as a landscape A4 table.
func (s *ReportService) BudgetPDF(ctx context.Context, projectID, jobID uuid.UUID) ([]byte, error) {
	job, projection, err := s.Projection(ctx, projectID, jobID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Budget Report - %s", job.Name))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Business model: %s (%s revenue)", job.BusinessModel, job.BusinessModel.RevenueType()))
	pdf.Ln(10)

	const nameWidth, cellWidth, rowHeight = 50.0, 18.5, 7.0

	pdf.SetFont("Arial", "B", 7)
	pdf.CellFormat(nameWidth, rowHeight, "Item", "1", 0, "L", false, 0, "")
	for _, month := range projection.Months {
		pdf.CellFormat(cellWidth, rowHeight, month[:7], "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 7)
	for _, row := range projection.Rows {
		pdf.CellFormat(nameWidth, rowHeight, row.Name, "1", 0, "L", false, 0, "")
		for _, amount := range row.Amounts {
			pdf.CellFormat(cellWidth, rowHeight, strconv.FormatInt(amount, 10), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
