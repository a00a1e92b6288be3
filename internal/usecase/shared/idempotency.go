package shared

import "time"

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

// IdempotencyKey scopes a client-supplied key to its owner and endpoint.
// Owner is the user id for authenticated callers, otherwise the normalized email.
type IdempotencyKey struct {
	Key      string
	Owner    string
	Endpoint string
}

type IdempotencyRecord struct {
	IdempotencyKey
	Status          IdempotencyStatus
	RequestHash     string
	ResultReference *string
	ExpiresAt       time.Time
}
