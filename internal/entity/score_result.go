package entity

// ScoreResult is the outcome of scoring one Lead against one Offer.
// RuleScore and AIPoints are kept next to Score for auditing.
type ScoreResult struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Company   string `json:"company"`
	Industry  string `json:"industry"`
	Intent    Intent `json:"intent"`
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
	RuleScore int    `json:"rule_score"`
	AIPoints  int    `json:"ai_points"`
}

func NewScoreResult(lead Lead, ruleScore int, c Classification) ScoreResult {
	aiPoints := c.Intent.Points()
	return ScoreResult{
		Name:      lead.Name,
		Role:      lead.Role,
		Company:   lead.Company,
		Industry:  lead.Industry,
		Intent:    c.Intent,
		Score:     ruleScore + aiPoints,
		Reasoning: c.Reasoning,
		RuleScore: ruleScore,
		AIPoints:  aiPoints,
	}
}
