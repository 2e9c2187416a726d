package viewmodel

import (
	"strings"

	"golang.org/x/text/cases"

	"peopleRegistry/models"
)

// Filter returns the users whose name or email contains term, ignoring case.
// A blank term returns users unchanged.
func Filter(users []models.User, term string) []models.User {
	if strings.TrimSpace(term) == "" {
		return users
	}
	fold := cases.Fold()
	needle := fold.String(term)
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(fold.String(u.Name), needle) || strings.Contains(fold.String(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out
}
