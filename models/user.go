// File: models/user.go
package models

import "time"

// User is a registered fan account. Password holds the bcrypt hash and is
// never serialised.
type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}
