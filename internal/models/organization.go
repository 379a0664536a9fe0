package models

// Organization mirrors the organizations table.
type Organization struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`     // unique
	Shortcut string `db:"shortcut"` // unique
}
