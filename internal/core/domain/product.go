package domain

import (
	"fmt"
	"math"
	"strings"
)

// Product is a catalog entry owned by a user.
// Ownership is by email value; there is no key constraint on OwnerEmail.
type Product struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	OwnerEmail  string  `json:"owner_email"`
}

// Complete checks that every user-entered field is filled in and the
// price is finite. Storage does not enforce this; product forms do.
func (p *Product) Complete() error {
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		return fmt.Errorf("%w: price must be a finite number", ErrInvalidInput)
	}

	var missing []string
	if strings.TrimSpace(p.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(p.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(p.Category) == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

// OwnedBy reports whether the product belongs to email.
func (p *Product) OwnedBy(email string) bool {
	return p.OwnerEmail == email
}
