package model

// Scope identifies who initiated an operation.
type Scope struct {
	UserID   string
	Username string
}
