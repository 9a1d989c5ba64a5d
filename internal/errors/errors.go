// Package errors defines the domain error vocabulary shared by services
// and handlers. Handlers map error codes onto HTTP statuses.
package errors

// DomainError is a coded error that crosses service boundaries.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Error codes
const (
	CodeInvalidCount           = "INVALID_COUNT"
	CodeInvalidFraction        = "INVALID_FRACTION"
	CodeInvalidRiskLevel       = "INVALID_RISK_LEVEL"
	CodeInvalidTransactionType = "INVALID_TRANSACTION_TYPE"
	CodeInvalidCountry         = "INVALID_COUNTRY"
	CodeTransactionNotFound    = "TRANSACTION_NOT_FOUND"
	CodeAnalysisNotFound       = "ANALYSIS_NOT_FOUND"
	CodeUnknownTransactionType = "UNKNOWN_TRANSACTION_TYPE"
)
