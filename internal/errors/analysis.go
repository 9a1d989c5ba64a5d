package errors

var (
	ErrAnalysisNotFound = &DomainError{
		Code:    CodeAnalysisNotFound,
		Message: "analysis not found",
	}
	// ErrUnknownTransactionType signals a programming defect: the scorer
	// received a type outside the closed enum, so no threshold exists for it.
	ErrUnknownTransactionType = &DomainError{
		Code:    CodeUnknownTransactionType,
		Message: "no scoring threshold for transaction type",
	}
)
