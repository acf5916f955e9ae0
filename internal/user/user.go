// Package user identifies the operator running gradebook
package user

import (
	"os"
	"os/user"
)

// unknownOperator is reported when no username can be determined
const unknownOperator = "unknown"

// Operator returns the login name of the person running the session.
// It falls back to $USER, then to "unknown", so log lines always carry a value.
func Operator() string {
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return unknownOperator
}
