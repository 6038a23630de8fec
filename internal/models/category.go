package models

// Category represents a row of the categories table.
type Category struct {
	CategoryID      string          `db:"category_id"`
	UserID          string          `db:"user_id"`
	Name            string          `db:"name"`
	TransactionType TransactionType `db:"transaction_type"`
	Color           string          `db:"color"`
	Icon            string          `db:"icon"`
	AuditFields
}

// Tag represents a row of the tags table.
type Tag struct {
	TagID  string `db:"tag_id"`
	UserID string `db:"user_id"`
	Name   string `db:"name"`
	Color  string `db:"color"`
	AuditFields
}
