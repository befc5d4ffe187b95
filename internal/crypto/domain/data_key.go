package domain

import (
	"encoding/base64"
	"log/slog"
)

// DataKey holds the symmetric key used for field encryption. The raw bytes are
// never exposed through String or logging.
type DataKey struct {
	bytes []byte
}

// LoadDataKey decodes a standard base64 encoded key and verifies it is exactly
// KeySize bytes. Any failure here must abort startup.
func LoadDataKey(encoded string) (*DataKey, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidKeyEncoding
	}
	if len(raw) != KeySize {
		return nil, ErrInvalidKeySize
	}
	return &DataKey{bytes: raw}, nil
}

// NewDataKey wraps raw key bytes. It verifies the size so callers cannot
// construct an unusable key.
func NewDataKey(raw []byte) (*DataKey, error) {
	if len(raw) != KeySize {
		return nil, ErrInvalidKeySize
	}
	b := make([]byte, KeySize)
	copy(b, raw)
	return &DataKey{bytes: b}, nil
}

// Bytes returns the raw key material.
func (k *DataKey) Bytes() []byte {
	return k.bytes
}

// String returns a redacted representation. Keeps the key out of %v and %s
// formatting.
func (k *DataKey) String() string {
	return "[REDACTED]"
}

// LogValue keeps the key out of structured log output.
func (k *DataKey) LogValue() slog.Value {
	return slog.StringValue("[REDACTED]")
}
