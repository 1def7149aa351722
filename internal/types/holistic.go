package types

// CategoryScore is one scored life-area within the holistic score
type CategoryScore struct {
	Category   string  `json:"category"`
	Label      string  `json:"label"`
	Percentage float64 `json:"percentage"` // 0-100 before weighting
	Weight     float64 `json:"weight"`
	Points     float64 `json:"points"`     // contribution to the 0-850 total
	MaxPoints  float64 `json:"max_points"` // weight * 850
	Details    string  `json:"details,omitempty"`
}

// ImprovementPotential identifies where additional points are easiest to gain
type ImprovementPotential struct {
	TotalPotentialGain float64 `json:"total_potential_gain"`
	BestArea           string  `json:"best_improvement_area"`
	BestAreaPoints     float64 `json:"potential_points_from_best_area"`
	PercentageToMax    float64 `json:"percentage_to_max"`
}

// HolisticScore is the composite credit-style career score
type HolisticScore struct {
	Total           float64              `json:"total_score"` // 0-850
	MaxScore        int                  `json:"max_score"`   // always 850
	Tier            string               `json:"tier"`
	TierDescription string               `json:"tier_description"`
	Opportunities   string               `json:"opportunities"`
	Percentile      int                  `json:"percentile"`
	Categories      []CategoryScore      `json:"categories"`
	Strengths       []string             `json:"strengths"`
	Weaknesses      []string             `json:"weaknesses"`
	Recommendations []string             `json:"recommendations"`
	Improvement     ImprovementPotential `json:"improvement_potential"`
}
