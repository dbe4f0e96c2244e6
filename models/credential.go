package models

// Credential is a username/password pair.
//
// It is used both as the login request body and as an entry of the static
// credential table loaded from configuration. Password is never logged.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
