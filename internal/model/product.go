package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Product represents an inventory item as stored in the database.
// Description and ImageURL are pointers so a missing value serialises
// as JSON null rather than an empty string.
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Quantity    int       `json:"quantity" db:"quantity"`
	ImageURL    *string   `json:"imageUrl" db:"image_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ProductSummary is the projection returned by the list endpoint.
// Audit timestamps are excluded from this shape.
type ProductSummary struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
	Quantity    int     `json:"quantity" db:"quantity"`
	ImageURL    *string `json:"imageUrl" db:"image_url"`
}

// Quantity is an integer that also accepts numeric JSON strings, since
// the dashboard form submits input values as strings. Fractional values
// are truncated towards zero.
type Quantity int

// UnmarshalJSON implements json.Unmarshaler.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		// Per json.Unmarshaler convention, null is a no-op.
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*q = Quantity(n)
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid quantity %q", s)
	}
	*q = Quantity(int64(f))
	return nil
}

// ProductRequest is the request body for create and update. Quantity is
// a pointer so that an absent field is distinguishable from a literal 0,
// which is a legal quantity.
type ProductRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    *Quantity `json:"quantity"`
	ImageURL    string    `json:"imageUrl"`
}

// ProductInput holds validated, normalised fields ready for persistence.
type ProductInput struct {
	Name        string
	Description *string
	Quantity    int
	ImageURL    *string
}

// DeleteResponse confirms a successful delete.
type DeleteResponse struct {
	Message string `json:"message"`
}
