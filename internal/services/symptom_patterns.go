package services

import (
	"sort"
	"strings"

	"github.com/terraincognita07/cycleadvisor/internal/models"
)

type SymptomPattern struct {
	Tag        string `json:"tag"`
	Symptom    string `json:"symptom"`
	Frequency  int    `json:"frequency"`
	Percentage int    `json:"percentage"`
}

// AnalyzeSymptomPatterns counts in how many of the given cycles each tag
// occurs. Results are ordered by frequency; ties keep first-seen order.
func AnalyzeSymptomPatterns(cycles []models.CycleRecord) []SymptomPattern {
	patterns := make([]SymptomPattern, 0)
	if len(cycles) == 0 {
		return patterns
	}

	positionByTag := make(map[string]int)
	for _, cycle := range cycles {
		seenInCycle := make(map[string]struct{}, len(cycle.Symptoms))
		for _, raw := range cycle.Symptoms {
			tag := strings.TrimSpace(raw)
			if tag == "" {
				continue
			}
			if _, seen := seenInCycle[tag]; seen {
				continue
			}
			seenInCycle[tag] = struct{}{}

			if position, ok := positionByTag[tag]; ok {
				patterns[position].Frequency++
				continue
			}
			positionByTag[tag] = len(patterns)
			patterns = append(patterns, SymptomPattern{
				Tag:       tag,
				Symptom:   FormatSymptomTag(tag),
				Frequency: 1,
			})
		}
	}

	for index := range patterns {
		patterns[index].Percentage = roundToInt(float64(patterns[index].Frequency) / float64(len(cycles)) * 100)
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Frequency > patterns[j].Frequency
	})
	return patterns
}

func FormatSymptomTag(tag string) string {
	return strings.ReplaceAll(strings.TrimSpace(tag), "_", " ")
}

// NormalizeSymptomTags trims, lower-cases and deduplicates tags, keeping the
// first occurrence order.
func NormalizeSymptomTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, raw := range tags {
		tag := strings.ToLower(strings.TrimSpace(raw))
		tag = strings.Join(strings.Fields(tag), "_")
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}
