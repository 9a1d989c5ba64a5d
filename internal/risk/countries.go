// Package risk holds the reference tables shared by the transaction
// generator and the scoring engine: the three country risk tiers and the
// per-type amount profiles. Keeping one table here is what stops the
// generation ranges and the scoring thresholds from drifting apart.
package risk

// Tier is one of the three disjoint country risk groupings.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "High"
	case TierMedium:
		return "Medium"
	default:
		return "Low"
	}
}

var (
	LowRiskCountries = []string{
		"USA", "Canada", "United Kingdom", "Germany", "France", "Japan",
		"Australia", "New Zealand", "Sweden", "Norway", "Denmark", "Finland",
	}

	MediumRiskCountries = []string{
		"Mexico", "Brazil", "India", "China", "South Africa", "Turkey",
		"Saudi Arabia", "UAE", "Thailand", "Malaysia",
	}

	HighRiskCountries = []string{
		"Russia", "Belarus", "North Korea", "Iran", "Afghanistan", "Syria",
		"Venezuela", "Cayman Islands", "Panama", "Cyprus",
	}
)

var tierByCountry = buildIndex()

func buildIndex() map[string]Tier {
	idx := make(map[string]Tier)
	for _, c := range LowRiskCountries {
		idx[c] = TierLow
	}
	for _, c := range MediumRiskCountries {
		idx[c] = TierMedium
	}
	for _, c := range HighRiskCountries {
		idx[c] = TierHigh
	}
	return idx
}

// TierOf returns the tier a country belongs to. The second return is false
// for countries outside all three tiers.
func TierOf(country string) (Tier, bool) {
	t, ok := tierByCountry[country]
	return t, ok
}

// Countries returns the member list of a tier.
func Countries(t Tier) []string {
	switch t {
	case TierHigh:
		return HighRiskCountries
	case TierMedium:
		return MediumRiskCountries
	default:
		return LowRiskCountries
	}
}
