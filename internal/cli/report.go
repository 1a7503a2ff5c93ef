package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/terraincognita07/cycleadvisor/internal/services"
)

const (
	chartWidth     = 40
	chartHeight    = 8
	chartMinPoints = 2
	dateLayout     = "2006-01-02"
)

// RenderReport writes the terminal view of one analysis. history is the
// user's full history, newest first.
func RenderReport(w io.Writer, analysis services.Analysis, history services.CycleHistory) error {
	sections := []string{
		headingStyle.Render("Cycle report for " + analysis.ReferenceDate.Format(dateLayout)),
	}

	if analysis.Status != services.AnalysisReady {
		sections = append(sections, renderInsufficientData(analysis))
	} else {
		sections = append(sections, renderResponse(analysis.Response), renderStats(analysis))
		if analysis.Prediction != nil {
			sections = append(sections, renderPrediction(*analysis.Prediction))
		}
	}

	if chart := renderLengthChart(history); chart != "" {
		sections = append(sections, chart)
	}
	if analysis.SkippedRecords > 0 {
		sections = append(sections, mutedStyle.Render(fmt.Sprintf("%d invalid record(s) skipped", analysis.SkippedRecords)))
	}

	_, err := fmt.Fprintln(w, strings.Join(sections, "\n\n"))
	return err
}

func renderInsufficientData(analysis services.Analysis) string {
	lines := []string{"Not enough cycle history yet: at least two complete cycles are needed."}
	if analysis.CurrentCycle != nil {
		lines = append(lines, fmt.Sprintf("Cycle day %d (%s)", analysis.CurrentCycle.Day, analysis.CurrentCycle.Phase))
	}
	return mutedStyle.Render(strings.Join(lines, "\n"))
}

func renderResponse(response services.Response) string {
	base := response.Base()
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(tierColor(response.Tier())).Render(base.Title),
		base.Message,
	}
	lines = append(lines, bulletList(base.Advice)...)

	switch typed := response.(type) {
	case services.NormalResponse:
		lines = append(lines, "", "Self care:",
			"• "+typed.SelfCare.Breathing,
			"• "+typed.SelfCare.Lifestyle,
			"• "+typed.SelfCare.Activity,
		)
	case services.CautionResponse:
		if len(typed.Factors) > 0 {
			lines = append(lines, "", "Possible factors:")
			lines = append(lines, bulletList(typed.Factors)...)
		}
		lines = append(lines, "", "Recommendations:")
		lines = append(lines, bulletList(typed.Recommendations)...)
	case services.ConsultationResponse:
		lines = append(lines, "", "Seek care urgently if you notice:")
		lines = append(lines, bulletList(typed.UrgentSigns)...)
		if len(typed.Summary.SymptomPatterns) > 0 {
			lines = append(lines, "", "Recurring symptoms:")
			for _, pattern := range typed.Summary.SymptomPatterns {
				lines = append(lines, fmt.Sprintf("• %s (%d%%)", pattern.Symptom, pattern.Percentage))
			}
		}
	}

	return tierBoxStyle(response.Tier()).Render(strings.Join(lines, "\n"))
}

func renderStats(analysis services.Analysis) string {
	lines := []string{
		fmt.Sprintf("Average length: %.1f days (sd %.1f, %d cycles)",
			analysis.Stats.AverageCycleLength, analysis.Stats.StandardDeviation, analysis.Stats.TotalCycles),
		fmt.Sprintf("Expected start: %s (delay %+d days)", analysis.ExpectedDate.Format(dateLayout), *analysis.DelayDays),
		fmt.Sprintf("Thresholds: caution > %.1f, consultation > %.1f days",
			analysis.Thresholds.Delay, analysis.Thresholds.Critical),
	}
	if analysis.CurrentCycle != nil {
		lines = append(lines, fmt.Sprintf("Cycle day %d (%s)", analysis.CurrentCycle.Day, analysis.CurrentCycle.Phase))
	}
	return strings.Join(lines, "\n")
}

func renderPrediction(prediction services.Prediction) string {
	return fmt.Sprintf("Next cycle: %s (window %s to %s, %d%% confidence)",
		prediction.PredictedDate.Format(dateLayout),
		prediction.EarliestDate.Format(dateLayout),
		prediction.LatestDate.Format(dateLayout),
		prediction.ConfidencePercent,
	)
}

// renderLengthChart plots valid cycle lengths oldest to newest.
func renderLengthChart(history services.CycleHistory) string {
	usable, _ := services.UsableRecords(history)
	if len(usable) < chartMinPoints {
		return ""
	}

	data := make([]float64, 0, len(usable))
	for index := len(usable) - 1; index >= 0; index-- {
		data = append(data, float64(usable[index].Length))
	}

	return asciigraph.Plot(data,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("cycle length (days), oldest to newest"),
	)
}

func bulletList(items []string) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+item)
	}
	return lines
}
