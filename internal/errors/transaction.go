package errors

var (
	ErrInvalidCount = &DomainError{
		Code:    CodeInvalidCount,
		Message: "count must be a positive integer",
	}
	ErrInvalidFraction = &DomainError{
		Code:    CodeInvalidFraction,
		Message: "high-risk fraction must be between 0 and 1",
	}
	ErrInvalidRiskLevel = &DomainError{
		Code:    CodeInvalidRiskLevel,
		Message: "risk level must be Normal or High",
	}
	ErrInvalidTransactionType = &DomainError{
		Code:    CodeInvalidTransactionType,
		Message: "transaction type must be transfer, deposit, withdrawal or payment",
	}
	ErrInvalidCountry = &DomainError{
		Code:    CodeInvalidCountry,
		Message: "country is not in any known risk tier",
	}
	ErrTransactionNotFound = &DomainError{
		Code:    CodeTransactionNotFound,
		Message: "transaction not found",
	}
)
