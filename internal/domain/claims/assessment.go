package claims

import "time"

// AIAssessment is the claim-level automated assessment returned by the
// backend's analysis endpoint.
type AIAssessment struct {
	ID              string           `json:"id"`
	OverallScore    float64          `json:"overallScore"` // 0-100 confidence
	EstimatedDamage float64          `json:"estimatedDamage"`
	RepairTime      float64          `json:"repairTime"` // days
	RiskFactors     []RiskFactor     `json:"riskFactors"`
	DamageAnalysis  []DamageAnalysis `json:"damageAnalysis"`
	Recommendations []string         `json:"recommendations"`
	ProcessedAt     time.Time        `json:"processedAt"`
	ModelVersion    string           `json:"modelVersion"`
}

// RiskFactor flags an elevated risk dimension of a claim.
type RiskFactor struct {
	Type        string  `json:"type"`  // fraud_risk, complexity, cost_escalation, timeline_risk
	Level       string  `json:"level"` // low, medium, high
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
}

// DamageAnalysis is a per-area breakdown inside an assessment.
type DamageAnalysis struct {
	Area             DamageArea `json:"area"`
	Severity         string     `json:"severity"` // minor, moderate, major, total_loss
	Confidence       float64    `json:"confidence"`
	EstimatedCost    float64    `json:"estimatedCost"`
	RepairComplexity string     `json:"repairComplexity"`
	PartsNeeded      []string   `json:"partsNeeded"`
}
