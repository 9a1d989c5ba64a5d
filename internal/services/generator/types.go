package generator

// Options constrains a single generated transaction. Empty fields are drawn
// from the default distributions instead.
type Options struct {
	Country         string
	RiskLevel       string
	TransactionType string
}
