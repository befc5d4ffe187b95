package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	cryptoDomain "github.com/allisson/userguard/internal/crypto/domain"
)

// RunCreateDataKey generates a cryptographically secure 256-bit key for
// field-level encryption and prints it in the format expected by the
// DATA_ENCRYPTION_KEY environment variable.
func RunCreateDataKey(w io.Writer) error {
	raw := make([]byte, cryptoDomain.KeySize)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return fmt.Errorf("failed to generate key material: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(raw)

	// Zero the raw key after encoding.
	for i := range raw {
		raw[i] = 0
	}

	fmt.Fprintf(w, "DATA_ENCRYPTION_KEY=%q\n", encoded)
	return nil
}
