package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

const (
	// FreeOrderPrefix marks synthetic order identifiers for zero-price
	// enrollments, which never touch the payment gateway.
	FreeOrderPrefix = "free-"

	// paymentKeyPrefix is the correlation token prefix shared with the
	// checkout widget.
	paymentKeyPrefix = "payment"
)

// Generate creates a random short ID with the specified length using Base62
// encoding. The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random short ID and panics on error.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// NewUUID returns a random UUID string, used as the public identifier for
// profiles, programs, subscriptions and payment orders.
func NewUUID() string {
	return uuid.NewString()
}

// IsUUID reports whether s parses as a UUID.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// NewOrderID generates a public payment-order identifier.
func NewOrderID() string {
	return uuid.NewString()
}

// NewFreeOrderID generates a synthetic order identifier for a zero-price
// enrollment.
func NewFreeOrderID() string {
	return FreeOrderPrefix + uuid.NewString()
}

// IsFreeOrderID reports whether the order identifier belongs to a free
// enrollment.
func IsFreeOrderID(orderID string) bool {
	return strings.HasPrefix(orderID, FreeOrderPrefix)
}

// NewPaymentKey builds the gateway correlation token for an order. The key
// embeds the order identifier so either token can be recovered from the other.
func NewPaymentKey(orderID string) string {
	return fmt.Sprintf("%s_%s_%d", paymentKeyPrefix, orderID, time.Now().UnixMilli())
}

// OrderIDFromPaymentKey extracts the embedded order identifier from a payment
// key generated by NewPaymentKey.
func OrderIDFromPaymentKey(paymentKey string) (string, error) {
	parts := strings.Split(paymentKey, "_")
	if len(parts) != 3 || parts[0] != paymentKeyPrefix {
		return "", fmt.Errorf("invalid payment key format: %s", paymentKey)
	}
	return parts[1], nil
}
