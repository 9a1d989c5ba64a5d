package models

import "time"

// Recommended actions
const (
	ActionMonitor  = "Monitor"
	ActionEscalate = "Escalate"
	ActionDismiss  = "Dismiss"
)

// TransactionAnalysis is the per-transaction sub-section of the agent report.
type TransactionAnalysis struct {
	AmountRisk    string `json:"amount_risk"`
	TimingRisk    string `json:"timing_risk"`
	FrequencyRisk string `json:"frequency_risk"`
}

// RiskAssessmentDetail breaks the assessment down by customer, geography and behavior.
type RiskAssessmentDetail struct {
	CustomerRisk   string `json:"customer_risk"`
	GeographicRisk string `json:"geographic_risk"`
	BehavioralRisk string `json:"behavioral_risk"`
}

// ComplianceCheck covers sanctions screening and regulatory status.
type ComplianceCheck struct {
	SanctionsScreening string `json:"sanctions_screening"`
	AMLRequirements    string `json:"aml_requirements"`
	RegulatoryStatus   string `json:"regulatory_status"`
}

// PatternDetection covers structuring, layering and velocity findings.
type PatternDetection struct {
	StructuringIndicators string `json:"structuring_indicators"`
	LayeringPatterns      string `json:"layering_patterns"`
	VelocityConcerns      string `json:"velocity_concerns"`
}

// AgentAnalysis is the nested sub-report attached to every analysis result.
// The four section names and their keys are fixed for frontend compatibility.
type AgentAnalysis struct {
	TransactionAnalysis TransactionAnalysis  `json:"transaction_analysis"`
	RiskAssessment      RiskAssessmentDetail `json:"risk_assessment"`
	ComplianceCheck     ComplianceCheck      `json:"compliance_check"`
	PatternDetection    PatternDetection     `json:"pattern_detection"`
}

// AnalysisResult is the risk analysis derived from a single transaction.
// It carries no state of its own and can be re-derived at any time.
type AnalysisResult struct {
	TransactionID     string        `json:"transactionId"`
	RiskScore         int           `json:"riskScore"`
	RiskAssessment    string        `json:"riskAssessment"`
	RecommendedAction string        `json:"recommendedAction"`
	Confidence        int           `json:"confidence"`
	Factors           []string      `json:"factors"`
	Reasoning         string        `json:"reasoning"`
	GeneratedAt       time.Time     `json:"generatedAt"`
	AgentAnalysis     AgentAnalysis `json:"agentAnalysis"`
}
