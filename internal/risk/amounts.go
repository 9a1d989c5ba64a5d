package risk

import "finwatch/internal/models"

// AmountProfile binds the generation ranges and the scoring threshold for a
// single transaction type. High ranges sit strictly above Normal ranges for
// every type; the threshold is what the scorer compares amounts against.
type AmountProfile struct {
	NormalMin float64
	NormalMax float64
	HighMin   float64
	HighMax   float64
	Threshold float64
}

// Range returns the [min, max] generation bounds for a risk level.
func (p AmountProfile) Range(riskLevel string) (float64, float64) {
	if riskLevel == models.RiskHigh {
		return p.HighMin, p.HighMax
	}
	return p.NormalMin, p.NormalMax
}

// AmountProfiles maps every transaction type to its SGD amount profile.
var AmountProfiles = map[string]AmountProfile{
	models.TypeTransfer: {
		NormalMin: 500, NormalMax: 50_000,
		HighMin: 50_000, HighMax: 2_000_000,
		Threshold: 50_000,
	},
	models.TypeDeposit: {
		NormalMin: 200, NormalMax: 25_000,
		HighMin: 25_000, HighMax: 800_000,
		Threshold: 25_000,
	},
	models.TypeWithdrawal: {
		NormalMin: 100, NormalMax: 15_000,
		HighMin: 15_000, HighMax: 200_000,
		Threshold: 15_000,
	},
	models.TypePayment: {
		NormalMin: 50, NormalMax: 5_000,
		HighMin: 5_000, HighMax: 150_000,
		Threshold: 5_000,
	},
}
