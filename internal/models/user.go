package models

import "time"

// User is an authenticated shop owner, identified by phone number.
type User struct {
	ID              string    `json:"id"`
	Phone           string    `json:"phone"`
	Name            string    `json:"name,omitempty"`
	BusinessType    string    `json:"business_type,omitempty"`
	ProfileImageURL string    `json:"profile_image,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
