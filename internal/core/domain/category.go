package domain

// Category groups transactions of one type for budgeting and reports.
type Category struct {
	CategoryID string          `json:"categoryID"` // Primary Key (UUID)
	UserID     string          `json:"userID"`     // Owner
	Name       string          `json:"name"`
	Type       TransactionType `json:"type"` // INCOME or EXPENSE
	Color      string          `json:"color"`
	Icon       string          `json:"icon"`
	AuditFields
}

// Tag is a free-form label attached to transactions through a side table.
type Tag struct {
	TagID  string `json:"tagID"` // Primary Key (UUID)
	UserID string `json:"userID"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	AuditFields
}
