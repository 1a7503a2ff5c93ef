package services

import (
	"reflect"
	"testing"

	"github.com/terraincognita07/cycleadvisor/internal/models"
)

func TestIdentifyInfluencingFactors(t *testing.T) {
	t.Parallel()

	healthy := PHICategories{Physical: 80, Mental: 80, Sleep: 80, Nutrition: 80}
	noScores := PHISnapshot{CategoriesUnknown: true}
	cases := []struct {
		name     string
		history  CycleHistory
		phi      PHISnapshot
		expected []string
	}{
		{
			name:     "no data",
			history:  nil,
			phi:      noScores,
			expected: []string{},
		},
		{
			name:     "zero categories are readings",
			history:  nil,
			phi:      PHISnapshot{Categories: PHICategories{}},
			expected: []string{FactorPoorSleep, FactorMentalHealth},
		},
		{
			name:     "healthy and stable",
			history:  historyFromLengths("2026-03-01", 28, 28, 28),
			phi:      PHISnapshot{Trend: []int{80, 82, 85}, Categories: healthy},
			expected: []string{},
		},
		{
			name:     "low recent phi uses last three only",
			history:  historyFromLengths("2026-03-01", 28, 28, 28),
			phi:      PHISnapshot{Trend: []int{95, 95, 60, 65, 70}, Categories: healthy},
			expected: []string{FactorLowRecentPHI},
		},
		{
			name:     "sleep and mental",
			history:  historyFromLengths("2026-03-01", 28, 28, 28),
			phi:      PHISnapshot{Trend: []int{80}, Categories: PHICategories{Physical: 80, Mental: 50, Sleep: 40, Nutrition: 80}},
			expected: []string{FactorPoorSleep, FactorMentalHealth},
		},
		{
			name:     "decreasing lengths",
			history:  historyFromLengths("2026-03-01", 26, 28, 30),
			phi:      noScores,
			expected: []string{FactorDecreasingLengths},
		},
		{
			name:     "non monotonic lengths",
			history:  historyFromLengths("2026-03-01", 28, 30, 27),
			phi:      noScores,
			expected: []string{},
		},
		{
			name:     "two cycles cannot trend",
			history:  historyFromLengths("2026-03-01", 30, 28),
			phi:      noScores,
			expected: []string{},
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			got := IdentifyInfluencingFactors(testCase.history, testCase.phi)
			if !reflect.DeepEqual(got, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, got)
			}
		})
	}
}

func TestBuildPHISnapshotWithoutScores(t *testing.T) {
	t.Parallel()

	snapshot := BuildPHISnapshot(nil)
	if !snapshot.CategoriesUnknown || len(snapshot.Trend) != 0 {
		t.Fatalf("expected unknown categories and empty trend, got %+v", snapshot)
	}
	if factors := IdentifyInfluencingFactors(nil, snapshot); len(factors) != 0 {
		t.Fatalf("expected no category factors without scores, got %v", factors)
	}
}

func TestBuildPHISnapshotUsesNewestCategories(t *testing.T) {
	t.Parallel()

	scores := []models.PHIScore{
		{Date: mustParseDay("2026-03-01"), Overall: 60, Physical: 50, Mental: 55, Sleep: 60, Nutrition: 65},
		{Date: mustParseDay("2026-03-02"), Overall: 75, Physical: 70, Mental: 72, Sleep: 80, Nutrition: 77},
	}

	snapshot := BuildPHISnapshot(scores)
	if !reflect.DeepEqual(snapshot.Trend, []int{60, 75}) {
		t.Fatalf("unexpected trend %v", snapshot.Trend)
	}
	expected := PHICategories{Physical: 70, Mental: 72, Sleep: 80, Nutrition: 77}
	if snapshot.Categories != expected {
		t.Fatalf("expected %+v, got %+v", expected, snapshot.Categories)
	}
	if snapshot.CategoriesUnknown {
		t.Fatal("expected recorded categories to be known")
	}
}

func TestValidatePHIScore(t *testing.T) {
	t.Parallel()

	valid := models.PHIScore{Date: mustParseDay("2026-03-01"), Overall: 100, Physical: 0, Mental: 50, Sleep: 50, Nutrition: 50}
	if err := ValidatePHIScore(valid); err != nil {
		t.Fatalf("expected valid score, got %v", err)
	}

	missingDate := valid
	missingDate.Date = mustParseDay("0001-01-01")
	outOfRange := valid
	outOfRange.Sleep = 101
	negative := valid
	negative.Mental = -1

	for name, score := range map[string]models.PHIScore{
		"missing date": missingDate,
		"out of range": outOfRange,
		"negative":     negative,
	} {
		if err := ValidatePHIScore(score); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
