package analyzer

import (
	"fmt"

	"finwatch/internal/models"
	"finwatch/internal/random"
	"finwatch/internal/risk"
)

var riskLevels = []string{"Low", "Medium", "High"}

var regulatoryStatuses = []string{
	"Compliant with current regulations",
	"Requires additional documentation",
	"Under review",
}

var velocityConcerns = []string{
	"Low - normal transaction velocity",
	"Moderate - increased transaction frequency",
	"High - unusual transaction velocity",
}

// report assembles the four-section agent sub-report. Section and key names
// are fixed for frontend compatibility; some values derive from the
// transaction, others are independent draws.
func (s *service) report(ev *evaluation) models.AgentAnalysis {
	tx := ev.tx

	amountRisk := "Normal"
	if tx.Amount > ev.threshold {
		amountRisk = "High"
	}

	sanctions := "Clear"
	if ev.score > 85 && random.Chance(s.rng, 0.3) {
		sanctions = "Match found"
	}

	amlRequirements := "Standard monitoring"
	if ev.score > 70 {
		amlRequirements = "Requires SAR filing"
	}

	structuring := "None detected"
	if ev.score > veryHighBand && random.Chance(s.rng, 0.4) {
		structuring = "Detected"
	}

	layering := "None detected"
	if ev.score > 85 && random.Chance(s.rng, 0.3) {
		layering = "Detected"
	}

	geographic := "Low"
	switch ev.tier {
	case risk.TierHigh:
		geographic = "High"
	case risk.TierMedium:
		geographic = "Medium"
	}

	return models.AgentAnalysis{
		TransactionAnalysis: models.TransactionAnalysis{
			AmountRisk:    fmt.Sprintf("%s - %s", amountRisk, ev.amountStr),
			TimingRisk:    random.Pick(s.rng, riskLevels),
			FrequencyRisk: random.Pick(s.rng, riskLevels),
		},
		RiskAssessment: models.RiskAssessmentDetail{
			CustomerRisk:   ev.profile,
			GeographicRisk: geographic,
			BehavioralRisk: random.Pick(s.rng, riskLevels),
		},
		ComplianceCheck: models.ComplianceCheck{
			SanctionsScreening: sanctions,
			AMLRequirements:    amlRequirements,
			RegulatoryStatus:   random.Pick(s.rng, regulatoryStatuses),
		},
		PatternDetection: models.PatternDetection{
			StructuringIndicators: structuring,
			LayeringPatterns:      layering,
			VelocityConcerns:      random.Pick(s.rng, velocityConcerns),
		},
	}
}
