package users

import "time"

// Identity is a registered user. Username is the natural key and never
// changes; PasswordHash is a bcrypt hash, never the plaintext.
type Identity struct {
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}
