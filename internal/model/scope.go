package model

// Scope identifies the user a request acts for. It is handed over by the
// auth layer and is treated as an opaque key.
type Scope struct {
	UserID   string
	UserName string
}
