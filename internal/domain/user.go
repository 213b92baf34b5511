package domain

import (
	"fmt"
	"time"
)

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Credential is a plaintext username/password pair as read from a
// credentials file. It never reaches the database: the password is
// hashed before the user row is written.
type Credential struct {
	Username string `csv:"username"`
	Password string `csv:"password"`
}

func (c *Credential) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("username is required")
	}

	if c.Password == "" {
		return fmt.Errorf("password is required")
	}

	return nil
}
