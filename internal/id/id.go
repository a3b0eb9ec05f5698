// Package id generates unique identifiers for ephemeral objects.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewToken creates a unique token identifier (jti claim).
// Format: tok-<nanoid>, e.g. "tok-V1StGXR8_Z5jdHi6B-myT".
// NanoIDs are URL-safe and compact, which keeps tokens small.
func NewToken() (string, error) {
	nid, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return "tok-" + nid, nil
}
