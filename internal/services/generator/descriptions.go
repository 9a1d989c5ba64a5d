package generator

import (
	"strings"

	"finwatch/internal/models"
	"finwatch/internal/random"
)

// One base phrase per type, plus a type-specific risk-flavor fragment that is
// appended only for high-risk transactions, with low probability.
var descriptionBases = map[string][]string{
	models.TypeTransfer: {
		"Wire transfer", "ACH transfer", "International transfer",
		"Fund transfer", "Cross-border transfer",
	},
	models.TypeDeposit: {
		"Cash deposit", "Check deposit", "Mobile deposit",
		"ATM deposit", "Batch deposit",
	},
	models.TypeWithdrawal: {
		"ATM withdrawal", "Bank withdrawal", "Cash withdrawal",
		"Teller withdrawal", "International withdrawal",
	},
	models.TypePayment: {
		"Online payment", "Direct payment", "Recurring payment",
		"Bill payment", "Retail payment", "International payment",
	},
}

var riskFragments = map[string][]string{
	models.TypeTransfer: {
		"to high-risk jurisdiction",
		"- unusual amount",
		"with incomplete documentation",
		"flagged by monitoring system",
	},
	models.TypeDeposit: {
		"- multiple small amounts",
		"- structured transaction",
		"with currency exchange",
		"from unverified source",
	},
	models.TypeWithdrawal: {
		"- above limit",
		"- multiple locations",
		"in high-risk location",
		"- unusual pattern",
	},
	models.TypePayment: {
		"- unusual merchant",
		"- high-risk vendor",
		"- suspicious pattern",
		"flagged for review",
	},
}

func (s *service) description(txType, riskLevel string, merchant *models.MerchantInfo) string {
	parts := []string{random.Pick(s.rng, descriptionBases[txType])}

	// Payments to a known merchant carry the merchant name before any
	// risk-flavor fragment.
	if txType == models.TypePayment && merchant != nil {
		parts = append(parts, "to "+merchant.Name)
	}

	if riskLevel == models.RiskHigh && random.Chance(s.rng, riskFragmentProbability) {
		parts = append(parts, random.Pick(s.rng, riskFragments[txType]))
	}

	return strings.Join(parts, " ")
}
