package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const exportDateLayout = "2006-01-02"

const exportMissingValue = "N/A"

var ExportCSVHeaders = []string{
	"Start date",
	"Length",
	"PHI score",
	"Symptoms",
}

type SummaryLoader interface {
	HealthcareSummary(ctx context.Context, userID uint, referenceDate time.Time) (HealthcareSummary, error)
}

// ExportService renders the consultation summary in download formats.
type ExportService struct {
	summaries SummaryLoader
}

type ExportCSVRow struct {
	StartDate string
	Length    int
	PHIScore  int
	Symptoms  []string
}

func NewExportService(summaries SummaryLoader) *ExportService {
	return &ExportService{summaries: summaries}
}

func (service *ExportService) WriteCSV(ctx context.Context, w io.Writer, userID uint, referenceDate time.Time) error {
	summary, err := service.summaries.HealthcareSummary(ctx, userID, referenceDate)
	if err != nil {
		return err
	}
	return WriteSummaryCSV(w, summary)
}

func BuildExportCSVRows(summary HealthcareSummary) []ExportCSVRow {
	rows := make([]ExportCSVRow, 0, len(summary.CycleOverview.LastSixCycles))
	for _, cycle := range summary.CycleOverview.LastSixCycles {
		symptoms := make([]string, 0, len(cycle.Symptoms))
		for _, tag := range cycle.Symptoms {
			symptoms = append(symptoms, FormatSymptomTag(tag))
		}
		rows = append(rows, ExportCSVRow{
			StartDate: cycle.Date.Format(exportDateLayout),
			Length:    cycle.Length,
			PHIScore:  cycle.PHIScore,
			Symptoms:  symptoms,
		})
	}
	return rows
}

func (row ExportCSVRow) Columns() []string {
	return []string{
		row.StartDate,
		strconv.Itoa(row.Length),
		strconv.Itoa(row.PHIScore),
		strings.Join(row.Symptoms, "; "),
	}
}

// exportFooterRows carries the overview figures a provider usually asks for
// first. Absent values are written as N/A.
func exportFooterRows(summary HealthcareSummary) [][]string {
	averageLength := exportMissingValue
	if summary.CycleOverview.AverageLength != nil {
		averageLength = strconv.FormatFloat(*summary.CycleOverview.AverageLength, 'f', 1, 64)
	}
	averagePHI := exportMissingValue
	if summary.HealthMetrics.AveragePHI != nil {
		averagePHI = strconv.Itoa(*summary.HealthMetrics.AveragePHI)
	}

	return [][]string{
		{},
		{"Total cycles tracked", strconv.Itoa(summary.CycleOverview.TotalCyclesTracked)},
		{"Average length (last six)", averageLength},
		{"Current delay (days)", strconv.Itoa(summary.CycleOverview.CurrentDelay)},
		{"Average PHI", averagePHI},
		{"Physical health", strconv.Itoa(summary.HealthMetrics.PhysicalHealth)},
		{"Mental health", strconv.Itoa(summary.HealthMetrics.MentalHealth)},
		{"Sleep quality", strconv.Itoa(summary.HealthMetrics.SleepQuality)},
		{"Nutrition", strconv.Itoa(summary.HealthMetrics.NutritionScore)},
	}
}

func WriteSummaryCSV(w io.Writer, summary HealthcareSummary) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ExportCSVHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range BuildExportCSVRows(summary) {
		if err := writer.Write(row.Columns()); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	for _, row := range exportFooterRows(summary) {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv footer: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
