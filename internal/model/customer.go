package model

import (
	"time"
)

// Customer is a saved client that documents can be issued to
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c Customer) RecordID() string { return c.ID }

// ClientInfo copies the customer into the shape printed on a document
func (c Customer) ClientInfo() ClientInfo {
	return ClientInfo{
		Name:    c.Name,
		Email:   c.Email,
		Address: c.Address,
		Phone:   c.Phone,
	}
}
