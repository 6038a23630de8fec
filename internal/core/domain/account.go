package domain

// AccountType classifies where money is held.
type AccountType string

const (
	Checking   AccountType = "CHECKING"
	Savings    AccountType = "SAVINGS"
	CreditCard AccountType = "CREDIT_CARD"
	Cash       AccountType = "CASH"
	Investment AccountType = "INVESTMENT"
)

// Account is a money holder that transactions are paid from or into.
type Account struct {
	AccountID    string      `json:"accountID"` // Primary Key (UUID)
	UserID       string      `json:"userID"`    // Owner
	Name         string      `json:"name"`
	AccountType  AccountType `json:"accountType"`
	CurrencyCode string      `json:"currencyCode"`
	Description  string      `json:"description"`
	IsActive     bool        `json:"isActive"`
	AuditFields
}
