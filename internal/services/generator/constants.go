package generator

import (
	"finwatch/internal/models"
	"finwatch/internal/risk"
)

// Base distributions. More transfers and deposits than withdrawals and payments.
var (
	transactionTypeWeights = []float64{0.35, 0.30, 0.20, 0.15}

	riskIndicators       = []string{models.RiskNormal, models.RiskHigh}
	riskIndicatorWeights = []float64{0.7, 0.3}
)

// Country tier bias, conditioned on the risk level.
var (
	highRiskTierOrder   = []risk.Tier{risk.TierHigh, risk.TierMedium, risk.TierLow}
	highRiskTierWeights = []float64{0.6, 0.3, 0.1}

	normalTierOrder   = []risk.Tier{risk.TierLow, risk.TierMedium, risk.TierHigh}
	normalTierWeights = []float64{0.7, 0.25, 0.05}
)

// Status skews heavily to flagged for high-risk transactions.
var (
	statuses            = []string{models.StatusFlagged, models.StatusReviewed, models.StatusDismissed}
	statusHighWeights   = []float64{0.8, 0.15, 0.05}
	statusNormalWeights = []float64{0.3, 0.5, 0.2}
)

var (
	accountTypes       = []string{"Personal", "Business", "Private Banking", "Corporate"}
	accountTypeWeights = []float64{0.6, 0.25, 0.1, 0.05}
)

// Customer risk profile correlates with the transaction's risk indicator.
var (
	riskProfiles         = []string{models.ProfileLow, models.ProfileMedium, models.ProfileHigh}
	profileHighWeights   = []float64{0.1, 0.3, 0.6}
	profileNormalWeights = []float64{0.6, 0.3, 0.1}
)

const merchantCategoryFinancial = "Financial Services"

var merchantCategories = []string{
	"Retail", "Technology", merchantCategoryFinancial, "Healthcare", "Travel",
	"Entertainment", "Manufacturing", "Energy", "Construction", "Telecommunications",
	"Real Estate", "Hospitality", "Mining", "Logistics", "Gambling",
}

// Probability that a transfer carries merchant info; payments always do.
const transferMerchantProbability = 0.3

// Probability that a high-risk description gets a risk-flavor fragment.
const riskFragmentProbability = 0.3
