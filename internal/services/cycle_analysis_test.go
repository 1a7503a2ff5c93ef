package services

import (
	"testing"
)

func TestAnalyzeInsufficientData(t *testing.T) {
	t.Parallel()

	analysis := Analyze(historyFromLengths("2026-03-01", 28), PHISnapshot{}, mustParseDay("2026-03-10"))
	if analysis.Status != AnalysisInsufficientData {
		t.Fatalf("expected insufficient data, got %s", analysis.Status)
	}
	if analysis.Response != nil || analysis.Prediction != nil || analysis.DelayDays != nil || analysis.Stats != nil {
		t.Fatalf("expected no classification, got %+v", analysis)
	}
	if analysis.Tier() != "" {
		t.Fatalf("expected empty tier, got %q", analysis.Tier())
	}
	if analysis.CurrentCycle == nil || analysis.CurrentCycle.Day != 10 {
		t.Fatalf("expected current cycle from last start, got %+v", analysis.CurrentCycle)
	}
}

func TestAnalyzeTiersByReferenceDate(t *testing.T) {
	t.Parallel()

	history := historyFromLengths("2026-03-01", 28, 29, 30, 28, 27, 28)
	cases := []struct {
		reference string
		delay     int
		tier      Tier
	}{
		{reference: "2026-03-29", delay: 0, tier: TierNormal},
		{reference: "2026-04-01", delay: 3, tier: TierNormal},
		{reference: "2026-04-02", delay: 4, tier: TierCaution},
		{reference: "2026-04-05", delay: 7, tier: TierCaution},
		{reference: "2026-04-06", delay: 8, tier: TierConsultation},
	}

	for _, testCase := range cases {
		analysis := Analyze(history, PHISnapshot{}, mustParseDay(testCase.reference))
		if analysis.Status != AnalysisReady {
			t.Fatalf("reference %s: expected ready, got %s", testCase.reference, analysis.Status)
		}
		if analysis.DelayDays == nil || *analysis.DelayDays != testCase.delay {
			t.Fatalf("reference %s: expected delay %d, got %v", testCase.reference, testCase.delay, analysis.DelayDays)
		}
		if analysis.Tier() != testCase.tier {
			t.Fatalf("reference %s: expected tier %s, got %s", testCase.reference, testCase.tier, analysis.Tier())
		}
		if analysis.Prediction == nil {
			t.Fatalf("reference %s: expected prediction", testCase.reference)
		}
		if !analysis.ExpectedDate.Equal(mustParseDay("2026-03-29")) {
			t.Fatalf("reference %s: unexpected expected date %v", testCase.reference, analysis.ExpectedDate)
		}
	}
}

func TestAnalyzeCountsSkippedRecords(t *testing.T) {
	t.Parallel()

	history := historyFromLengths("2026-03-01", 28, 28)
	history = append(history, history[1])
	history[2].Length = 0

	analysis := Analyze(history, PHISnapshot{}, mustParseDay("2026-03-29"))
	if analysis.Status != AnalysisReady {
		t.Fatalf("expected ready, got %s", analysis.Status)
	}
	if analysis.SkippedRecords != 1 || analysis.Stats.SkippedRecords != 1 {
		t.Fatalf("expected one skipped record, got %d/%d", analysis.SkippedRecords, analysis.Stats.SkippedRecords)
	}
	if analysis.Stats.TotalCycles != 2 {
		t.Fatalf("expected two usable cycles, got %d", analysis.Stats.TotalCycles)
	}
	if analysis.Prediction != nil {
		t.Fatal("expected no prediction with two usable cycles")
	}
}
