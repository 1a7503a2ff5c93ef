package services

import (
	"fmt"
	"math"
)

type Tier string

const (
	TierNormal       Tier = "normal"
	TierCaution      Tier = "caution"
	TierConsultation Tier = "consultation"
)

type Thresholds struct {
	Delay    float64 `json:"delayThreshold"`
	Critical float64 `json:"criticalThreshold"`
}

// ComputeThresholds scales tier boundaries with the history's spread; the
// floors keep very regular histories from flagging one-day shifts.
func ComputeThresholds(standardDeviation float64) Thresholds {
	if math.IsNaN(standardDeviation) || standardDeviation < 0 {
		standardDeviation = 0
	}
	return Thresholds{
		Delay:    math.Max(3, standardDeviation*2),
		Critical: math.Max(7, standardDeviation*3),
	}
}

// ClassifyTier is total over all delays. A delay exactly on a boundary
// belongs to the lower tier.
func ClassifyTier(delayDays int, standardDeviation float64) Tier {
	thresholds := ComputeThresholds(standardDeviation)
	magnitude := float64(absInt(delayDays))
	switch {
	case magnitude <= thresholds.Delay:
		return TierNormal
	case magnitude <= thresholds.Critical:
		return TierCaution
	default:
		return TierConsultation
	}
}

// Response is implemented only by NormalResponse, CautionResponse and
// ConsultationResponse.
type Response interface {
	Tier() Tier
	Base() ResponseBase
	isResponse()
}

type ResponseBase struct {
	Level   Tier     `json:"level"`
	Title   string   `json:"title"`
	Message string   `json:"message"`
	Advice  []string `json:"advice"`
	Color   string   `json:"color"`
	Urgency string   `json:"urgency"`
}

func (base ResponseBase) Tier() Tier {
	return base.Level
}

func (base ResponseBase) Base() ResponseBase {
	return base
}

type SelfCare struct {
	Breathing string `json:"breathing"`
	Lifestyle string `json:"lifestyle"`
	Activity  string `json:"activity"`
}

type NormalResponse struct {
	ResponseBase
	SelfCare SelfCare `json:"selfCare"`
}

type CautionResponse struct {
	ResponseBase
	Factors         []string `json:"factors"`
	Recommendations []string `json:"recommendations"`
}

type ConsultationResponse struct {
	ResponseBase
	Summary     HealthcareSummary `json:"summary"`
	UrgentSigns []string          `json:"urgentSigns"`
}

func (NormalResponse) isResponse()       {}
func (CautionResponse) isResponse()      {}
func (ConsultationResponse) isResponse() {}

// ClassifyResponse builds the tier payload for a delay. Callers must only
// invoke it once statistics are available.
func ClassifyResponse(delayDays int, standardDeviation float64, history CycleHistory, phi PHISnapshot) Response {
	switch ClassifyTier(delayDays, standardDeviation) {
	case TierNormal:
		return buildNormalResponse(delayDays)
	case TierCaution:
		return buildCautionResponse(delayDays, history, phi)
	default:
		return buildConsultationResponse(delayDays, history, phi)
	}
}

func buildNormalResponse(delayDays int) NormalResponse {
	title := "Slight Delay - Within Normal Range"
	if delayDays < 0 {
		title = "Early Arrival - Normal Variation"
	}

	return NormalResponse{
		ResponseBase: ResponseBase{
			Level:   TierNormal,
			Title:   title,
			Message: fmt.Sprintf("Your cycle is %s, which is within your normal variation range.", describeDelay(delayDays)),
			Advice: []string{
				"This is completely normal and within expected variation",
				"Continue your regular self-care routine",
				"Stay hydrated and maintain good sleep habits",
				"Light exercise like walking or yoga can help",
			},
			Color:   "green",
			Urgency: "low",
		},
		SelfCare: SelfCare{
			Breathing: "Try 4-7-8 breathing: Inhale for 4, hold for 7, exhale for 8",
			Lifestyle: "Maintain regular sleep schedule and balanced nutrition",
			Activity:  "Gentle stretching or meditation for 10 minutes",
		},
	}
}

func buildCautionResponse(delayDays int, history CycleHistory, phi PHISnapshot) CautionResponse {
	title := "Moderate Delay Detected"
	if delayDays < 0 {
		title = "Notable Early Pattern"
	}

	return CautionResponse{
		ResponseBase: ResponseBase{
			Level:   TierCaution,
			Title:   title,
			Message: fmt.Sprintf("Your cycle is %s. Let's monitor this pattern.", describeDelay(delayDays)),
			Advice: []string{
				"This variation is worth noting but not immediately concerning",
				"Consider recent stress, travel, or lifestyle changes",
				"Track symptoms and mood changes more closely",
				"Maintain consistent sleep and nutrition patterns",
			},
			Color:   "orange",
			Urgency: "medium",
		},
		Factors: IdentifyInfluencingFactors(history, phi),
		Recommendations: []string{
			"Log daily symptoms and mood for better tracking",
			"Reduce stress through relaxation techniques",
			"Ensure adequate sleep (7-9 hours nightly)",
			"Consider gentle exercise routine",
		},
	}
}

func buildConsultationResponse(delayDays int, history CycleHistory, phi PHISnapshot) ConsultationResponse {
	title := "Extended Delay - Healthcare Consultation Recommended"
	if delayDays < 0 {
		title = "Significant Early Pattern - Consider Consultation"
	}

	return ConsultationResponse{
		ResponseBase: ResponseBase{
			Level:   TierConsultation,
			Title:   title,
			Message: fmt.Sprintf("Your cycle is %s. A healthcare consultation is recommended.", describeDelay(delayDays)),
			Advice: []string{
				"This pattern warrants professional medical evaluation",
				"Continue tracking all symptoms and changes",
				"Prepare a summary for your healthcare provider",
				"Schedule an appointment when convenient",
			},
			Color:   "red",
			Urgency: "high",
		},
		Summary: GenerateHealthcareSummary(history, phi, delayDays),
		UrgentSigns: []string{
			"Severe pain or cramping",
			"Heavy bleeding or unusual discharge",
			"Significant mood changes",
			"Other concerning symptoms",
		},
	}
}

func describeDelay(delayDays int) string {
	unit := "days"
	if absInt(delayDays) == 1 {
		unit = "day"
	}
	direction := "late"
	if delayDays < 0 {
		direction = "early"
	}
	return fmt.Sprintf("%d %s %s", absInt(delayDays), unit, direction)
}
