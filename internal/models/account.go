package models

// AccountType mirrors the account_type column values.
type AccountType string

// Account represents a row of the accounts table.
type Account struct {
	AccountID    string      `db:"account_id"`
	UserID       string      `db:"user_id"`
	Name         string      `db:"name"`
	AccountType  AccountType `db:"account_type"`
	CurrencyCode string      `db:"currency_code"`
	Description  string      `db:"description"`
	IsActive     bool        `db:"is_active"`
	AuditFields
}
