package models

import "time"

// Contact represents an entry in the contact book.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactInput represents the data for creating or updating a contact.
type ContactInput struct {
	Name  string `json:"name" validate:"notblank"`
	Phone string `json:"phone" validate:"digits"`
}
