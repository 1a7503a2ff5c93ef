package services

const phiConcernThreshold = 70

const (
	FactorLowRecentPHI      = "Lower recent health scores may indicate stress or lifestyle factors"
	FactorPoorSleep         = "Poor sleep quality can affect cycle regularity"
	FactorMentalHealth      = "Stress or mental health factors may influence cycle timing"
	FactorIncreasingLengths = "Recent cycles show increasing length trend"
	FactorDecreasingLengths = "Recent cycles show decreasing length trend"
)

type PHICategories struct {
	Physical  int `json:"physical"`
	Mental    int `json:"mental"`
	Sleep     int `json:"sleep"`
	Nutrition int `json:"nutrition"`
}

// PHISnapshot carries the health-index side channel. Trend is chronological,
// oldest first. CategoriesUnknown marks a snapshot built without any recorded
// score; zero categories are real readings otherwise.
type PHISnapshot struct {
	Trend             []int         `json:"trend"`
	Categories        PHICategories `json:"categories"`
	CategoriesUnknown bool          `json:"-"`
}

// IdentifyInfluencingFactors evaluates every rule independently; the result
// follows rule order.
func IdentifyInfluencingFactors(history CycleHistory, phi PHISnapshot) []string {
	factors := make([]string, 0)

	recentPHI := tailInts(phi.Trend, 3)
	if len(recentPHI) > 0 && averageInts(recentPHI) < phiConcernThreshold {
		factors = append(factors, FactorLowRecentPHI)
	}
	if !phi.CategoriesUnknown {
		if phi.Categories.Sleep < phiConcernThreshold {
			factors = append(factors, FactorPoorSleep)
		}
		if phi.Categories.Mental < phiConcernThreshold {
			factors = append(factors, FactorMentalHealth)
		}
	}

	usable, _ := UsableRecords(history)
	if len(usable) < 3 {
		return factors
	}
	newest, middle, oldest := usable[0].Length, usable[1].Length, usable[2].Length
	switch {
	case newest > middle && middle > oldest:
		factors = append(factors, FactorIncreasingLengths)
	case newest < middle && middle < oldest:
		factors = append(factors, FactorDecreasingLengths)
	}
	return factors
}
