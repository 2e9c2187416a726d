package models

// User is a registered person.
// It maps to the `usuarios` table in SQLite.
type User struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"nome" json:"name"`
	Email string `db:"email" json:"email"`
}
