package usecase

import (
	"strings"

	"github.com/xavierca1/lead-scoring/internal/entity"
)

const (
	rolePointsDecisionMaker = 20
	rolePointsInfluencer    = 10
	industryPointsExact     = 20
	industryPointsPartial   = 10
	completenessPoints      = 10

	// MaxRuleScore is the best attainable rule score.
	MaxRuleScore = rolePointsDecisionMaker + industryPointsExact + completenessPoints
)

var (
	decisionMakerKeywords = []string{
		"head", "director", "vp", "vice", "chief", "cfo", "cto",
		"ceo", "founder", "owner", "co-founder", "president", "lead",
	}
	influencerKeywords = []string{
		"manager", "senior", "principal", "specialist",
		"analyst", "consultant", "engineer", "developer",
	}
)

// RuleBreakdown holds the three rule sub-scores.
type RuleBreakdown struct {
	Role         int `json:"role"`
	Industry     int `json:"industry"`
	Completeness int `json:"completeness"`
}

func (b RuleBreakdown) Total() int {
	return b.Role + b.Industry + b.Completeness
}

// RuleScorer scores a lead's attributes against an ideal customer profile.
// It is pure and never fails.
type RuleScorer struct{}

// Score returns the rule score in [0, MaxRuleScore]. An empty icp means the
// profile is undefined and industry never matches.
func (s RuleScorer) Score(lead entity.Lead, icp string) int {
	return s.Breakdown(lead, icp).Total()
}

func (RuleScorer) Breakdown(lead entity.Lead, icp string) RuleBreakdown {
	return RuleBreakdown{
		Role:         roleScore(lead.Role),
		Industry:     industryScore(lead.Industry, icp),
		Completeness: completenessScore(lead),
	}
}

func roleScore(role string) int {
	if role == "" {
		return 0
	}
	r := strings.ToLower(role)
	if containsAny(r, decisionMakerKeywords) {
		return rolePointsDecisionMaker
	}
	if containsAny(r, influencerKeywords) {
		return rolePointsInfluencer
	}
	return 0
}

func industryScore(industry, icp string) int {
	ind := strings.ToLower(strings.TrimSpace(industry))
	target := strings.ToLower(strings.TrimSpace(icp))
	if ind == "" || target == "" {
		return 0
	}
	if ind == target {
		return industryPointsExact
	}
	if strings.Contains(ind, target) || strings.Contains(target, ind) {
		return industryPointsPartial
	}
	return 0
}

// completenessScore is all or nothing.
func completenessScore(lead entity.Lead) int {
	if lead.IsComplete() {
		return completenessPoints
	}
	return 0
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
