package model

// ReminderSettings is the per-account monthly email preference. Email is
// the destination address and may differ from the login email.
type ReminderSettings struct {
	Email  string `json:"email"`
	Active bool   `json:"active"`
}
