package model

// Session is the single currently-authenticated identity. At most one
// session exists process-wide; it survives restarts via the record store.
type Session struct {
	Email string `json:"email"`
}
