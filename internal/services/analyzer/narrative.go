package analyzer

import (
	"fmt"
	"strings"

	"finwatch/internal/models"
	"finwatch/internal/random"
	"finwatch/internal/risk"
)

var suspiciousPatterns = []string{
	"Transaction outside normal pattern",
	"Unusual timing or frequency",
	"Suspicious transaction structure",
	"Potential structuring behavior",
}

var normalPatterns = []string{
	"Transaction matches customer pattern",
	"Normal transaction frequency",
	"Expected transaction behavior",
}

// AML typology labels, used only as vocabulary.
var amlIndicators = []string{
	"Multiple money laundering indicators",
	"Potential sanctions evasion pattern",
	"Transaction layering indicators",
	"Placement phase red flags",
}

// assess maps the clamped score onto an assessment text and an action,
// highest band first.
func (s *service) assess(ev *evaluation) (string, string) {
	tx := ev.tx
	switch {
	case ev.score >= veryHighBand:
		assessment := fmt.Sprintf("Very high risk - %s in %s", tx.TransactionType, tx.Country)
		if tx.RiskIndicator == models.RiskHigh {
			assessment += " from high-risk entity"
		}
		return assessment, models.ActionEscalate
	case ev.score >= highBand:
		return fmt.Sprintf("High risk %s", tx.TransactionType), models.ActionEscalate
	case ev.score >= mediumBand:
		return fmt.Sprintf("Medium risk %s requiring review", tx.TransactionType), models.ActionMonitor
	case ev.score >= lowBand:
		return "Low risk transaction within normal parameters", models.ActionMonitor
	default:
		return fmt.Sprintf("Very low risk %s", tx.TransactionType), models.ActionDismiss
	}
}

// factors builds the ordered factor list: amount, country, profile, pattern,
// merchant, AML. The amount factor is always present; the rest are conditional.
func (s *service) factors(ev *evaluation) []string {
	tx := ev.tx
	factors := make([]string, 0, 6)

	switch {
	case tx.Amount > ev.threshold*5:
		factors = append(factors, fmt.Sprintf("Very large %s amount (%s)", tx.TransactionType, ev.amountStr))
	case tx.Amount > ev.threshold:
		factors = append(factors, fmt.Sprintf("Large %s amount (%s)", tx.TransactionType, ev.amountStr))
	default:
		factors = append(factors, fmt.Sprintf("Standard %s amount (%s)", tx.TransactionType, ev.amountStr))
	}

	switch ev.tier {
	case risk.TierHigh:
		factors = append(factors, fmt.Sprintf("High-risk jurisdiction (%s)", tx.Country))
	case risk.TierMedium:
		factors = append(factors, fmt.Sprintf("Medium-risk jurisdiction (%s)", tx.Country))
	}

	switch ev.profile {
	case models.ProfileHigh:
		factors = append(factors, "Customer has high risk profile")
	case models.ProfileMedium:
		factors = append(factors, "Customer has medium risk profile")
	}

	if ev.score > highBand {
		factors = append(factors, random.Pick(s.rng, suspiciousPatterns))
	} else {
		factors = append(factors, random.Pick(s.rng, normalPatterns))
	}

	if tx.MerchantInfo != nil {
		if ev.score > highBand {
			factors = append(factors, fmt.Sprintf("Unusual merchant (%s)", tx.MerchantInfo.Name))
		} else {
			factors = append(factors, fmt.Sprintf("Established merchant (%s)", tx.MerchantInfo.Name))
		}
	}

	if ev.score > 70 {
		factors = append(factors, random.Pick(s.rng, amlIndicators))
	}

	return factors
}

// reasoning concatenates fixed-order sentences covering the amount, the
// jurisdiction, the pattern and the customer profile.
func (s *service) reasoning(ev *evaluation) string {
	tx := ev.tx
	parts := make([]string, 0, 5)

	if ev.score > highBand {
		parts = append(parts, fmt.Sprintf(
			"This %s of %s is significantly larger than typical for this transaction type.",
			tx.TransactionType, ev.amountStr))
	} else {
		parts = append(parts, fmt.Sprintf(
			"The %s amount of %s is within expected parameters.",
			tx.TransactionType, ev.amountStr))
	}

	switch ev.tier {
	case risk.TierHigh:
		parts = append(parts, fmt.Sprintf(
			"The transaction involves %s, which is classified as a high-risk jurisdiction with elevated financial crime concerns.",
			tx.Country))
	case risk.TierMedium:
		parts = append(parts, fmt.Sprintf(
			"The transaction involves %s, which has moderate financial crime risk factors.",
			tx.Country))
	default:
		parts = append(parts, fmt.Sprintf(
			"The transaction occurs in %s, which is a lower-risk jurisdiction.",
			tx.Country))
	}

	if ev.score > highBand {
		parts = append(parts,
			"The transaction exhibits unusual characteristics that deviate from the customer's established patterns.")
		if ev.score > veryHighBand {
			parts = append(parts,
				"Multiple red flags indicate potential layering or structuring activity that warrants immediate investigation.")
		}
	} else {
		parts = append(parts,
			"The transaction is consistent with the customer's historical activity patterns.")
	}

	if ev.profile == models.ProfileHigh {
		parts = append(parts,
			"The customer's existing high-risk profile elevates the overall transaction risk.")
	}

	return strings.Join(parts, " ")
}
