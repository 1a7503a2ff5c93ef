package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/cycleadvisor/internal/models"
)

var ErrInvalidPHIScore = errors.New("invalid phi score")

// BuildPHISnapshot expects scores ordered oldest first. The trend is the
// sequence of overall scores; categories come from the newest score. Without
// scores the categories are marked unknown so the category factors stay off.
func BuildPHISnapshot(scores []models.PHIScore) PHISnapshot {
	snapshot := PHISnapshot{Trend: make([]int, 0, len(scores))}
	if len(scores) == 0 {
		snapshot.CategoriesUnknown = true
		return snapshot
	}

	for _, score := range scores {
		snapshot.Trend = append(snapshot.Trend, score.Overall)
	}
	latest := scores[len(scores)-1]
	snapshot.Categories = PHICategories{
		Physical:  latest.Physical,
		Mental:    latest.Mental,
		Sleep:     latest.Sleep,
		Nutrition: latest.Nutrition,
	}
	return snapshot
}

func ValidatePHIScore(score models.PHIScore) error {
	if score.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidPHIScore)
	}
	values := map[string]int{
		"overall":   score.Overall,
		"physical":  score.Physical,
		"mental":    score.Mental,
		"sleep":     score.Sleep,
		"nutrition": score.Nutrition,
	}
	for _, name := range []string{"overall", "physical", "mental", "sleep", "nutrition"} {
		if value := values[name]; value < 0 || value > 100 {
			return fmt.Errorf("%w: %s must be within 0-100, got %d", ErrInvalidPHIScore, name, value)
		}
	}
	return nil
}
