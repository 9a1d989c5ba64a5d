package models

import "time"

// Transaction types
const (
	TypeTransfer   = "transfer"
	TypeDeposit    = "deposit"
	TypeWithdrawal = "withdrawal"
	TypePayment    = "payment"
)

// TransactionTypes lists every valid transaction type.
var TransactionTypes = []string{TypeTransfer, TypeDeposit, TypeWithdrawal, TypePayment}

// Risk indicators
const (
	RiskNormal = "Normal"
	RiskHigh   = "High"
)

// Transaction statuses
const (
	StatusFlagged   = "flagged"
	StatusReviewed  = "reviewed"
	StatusDismissed = "dismissed"
)

// Customer risk profiles
const (
	ProfileLow    = "Low"
	ProfileMedium = "Medium"
	ProfileHigh   = "High"
)

// DefaultCurrency is the single currency for the Bank of Singapore prototype.
const DefaultCurrency = "SGD"

// CustomerInfo describes the customer behind a transaction.
type CustomerInfo struct {
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
	RiskProfile string `json:"riskProfile"`
}

// MerchantInfo describes the counterparty merchant, when one exists.
type MerchantInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Transaction is a synthetic transaction record. Immutable once generated;
// the JSON field names are the wire contract the frontend relies on.
type Transaction struct {
	ID              string        `json:"id"`
	CustomerID      string        `json:"customerId"`
	Amount          float64       `json:"amount"`
	Currency        string        `json:"currency"`
	Country         string        `json:"country"`
	TransactionType string        `json:"transactionType"`
	RiskIndicator   string        `json:"riskIndicator"`
	Timestamp       time.Time     `json:"timestamp"`
	Status          string        `json:"status"`
	Description     string        `json:"description"`
	CustomerInfo    CustomerInfo  `json:"customerInfo"`
	MerchantInfo    *MerchantInfo `json:"merchantInfo,omitempty"`
}
