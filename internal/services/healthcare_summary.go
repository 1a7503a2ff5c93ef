package services

import "time"

const recentPHITrendWindow = 7

type CycleSnapshot struct {
	Date     time.Time `json:"date"`
	Length   int       `json:"length"`
	Symptoms []string  `json:"symptoms"`
	PHIScore int       `json:"phiScore"`
}

type CycleOverview struct {
	TotalCyclesTracked int             `json:"totalCyclesTracked"`
	LastSixCycles      []CycleSnapshot `json:"lastSixCycles"`
	AverageLength      *float64        `json:"averageLength"`
	CurrentDelay       int             `json:"currentDelay"`
}

type PHICategoryLabels struct {
	Physical  string `json:"physical"`
	Mental    string `json:"mental"`
	Sleep     string `json:"sleep"`
	Nutrition string `json:"nutrition"`
}

type HealthMetrics struct {
	AveragePHI     *int              `json:"averagePHI"`
	RecentPHITrend []int             `json:"recentPHITrend"`
	PhysicalHealth int               `json:"physicalHealth"`
	MentalHealth   int               `json:"mentalHealth"`
	SleepQuality   int               `json:"sleepQuality"`
	NutritionScore int               `json:"nutritionScore"`
	Labels         PHICategoryLabels `json:"labels"`
}

type HealthcareSummary struct {
	CycleOverview   CycleOverview    `json:"cycleOverview"`
	HealthMetrics   HealthMetrics    `json:"healthMetrics"`
	SymptomPatterns []SymptomPattern `json:"symptomPatterns"`
	Recommendations []string         `json:"recommendations"`
}

func consultationPrepRecommendations() []string {
	return []string{
		"Share this summary with your healthcare provider",
		"Discuss any recent lifestyle changes or stressors",
		"Ask about hormonal evaluation if patterns persist",
		"Consider tracking basal body temperature",
	}
}

// GenerateHealthcareSummary composes a consultation report. The average
// length here covers only the six most recent cycles, unlike the
// history-wide statistics used for classification.
func GenerateHealthcareSummary(history CycleHistory, phi PHISnapshot, delayDays int) HealthcareSummary {
	lastSix := recentCycles(history)

	overview := CycleOverview{
		TotalCyclesTracked: len(history),
		LastSixCycles:      make([]CycleSnapshot, 0, len(lastSix)),
		CurrentDelay:       delayDays,
	}
	for _, record := range lastSix {
		overview.LastSixCycles = append(overview.LastSixCycles, CycleSnapshot{
			Date:     record.StartDate,
			Length:   record.Length,
			Symptoms: append([]string(nil), record.Symptoms...),
			PHIScore: record.PHIScore,
		})
	}
	if stats, err := ComputeStatistics(lastSix); err == nil {
		average := stats.AverageCycleLength
		overview.AverageLength = &average
	}

	metrics := HealthMetrics{
		RecentPHITrend: append([]int{}, tailInts(phi.Trend, recentPHITrendWindow)...),
		PhysicalHealth: phi.Categories.Physical,
		MentalHealth:   phi.Categories.Mental,
		SleepQuality:   phi.Categories.Sleep,
		NutritionScore: phi.Categories.Nutrition,
		Labels: PHICategoryLabels{
			Physical:  PHIScoreLabel(phi.Categories.Physical),
			Mental:    PHIScoreLabel(phi.Categories.Mental),
			Sleep:     PHIScoreLabel(phi.Categories.Sleep),
			Nutrition: PHIScoreLabel(phi.Categories.Nutrition),
		},
	}
	if len(phi.Trend) > 0 {
		average := roundToInt(averageInts(phi.Trend))
		metrics.AveragePHI = &average
	}

	return HealthcareSummary{
		CycleOverview:   overview,
		HealthMetrics:   metrics,
		SymptomPatterns: AnalyzeSymptomPatterns(lastSix),
		Recommendations: consultationPrepRecommendations(),
	}
}

func PHIScoreLabel(score int) string {
	switch {
	case score >= 85:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 50:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}
