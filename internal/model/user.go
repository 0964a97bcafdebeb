package model

// User identifies an account. The registry is keyed by email exactly as
// entered; emails are never normalized.
type User struct {
	Email string `json:"email"`
}

// Credential is the stored secret for one account. Hash is a bcrypt hash;
// the plaintext credential is never persisted.
type Credential struct {
	Hash string `json:"hash"`
}
