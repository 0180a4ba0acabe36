package domain

import "fmt"

type Customer struct {
	ID    string `json:"customer_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CustomerUpdate carries a partial modification; nil fields are left untouched.
type CustomerUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (c Customer) Summary() string {
	return fmt.Sprintf("Customer: %s | Email: %s", c.Name, c.Email)
}
