package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"marketplace-orders/internal/domain/auth"
	"marketplace-orders/internal/infra"
	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/internal/usecase/shared"
)

const (
	idempotencyTTL          = 24 * time.Hour
	maxIdempotencyKeyLength = 255

	endpointCreatePurchase = "POST /purchase/anonymous"
	endpointCreateBooking  = "POST /bookings"
)

// idempotencyClaim ties an Idempotency-Key to the caller and the request it
// was first sent with.
type idempotencyClaim struct {
	key         shared.IdempotencyKey
	requestHash string
}

// newIdempotencyClaim returns nil when the request carries no key. Anonymous
// callers are scoped by their normalized contact email.
func newIdempotencyClaim(rawKey, endpoint string, caller auth.Caller, email string, request any) (*idempotencyClaim, error) {
	key := strings.TrimSpace(rawKey)
	if key == "" {
		return nil, nil
	}
	if len(key) > maxIdempotencyKeyLength {
		return nil, errs.Validation("Idempotency-Key must be at most %d characters", maxIdempotencyKeyLength)
	}

	owner := "email:" + auth.NormalizeEmail(email)
	if caller.IsAuthenticated() {
		owner = "user:" + caller.Identity.UserID.String()
	}

	hash, err := requestHash(request)
	if err != nil {
		return nil, err
	}

	return &idempotencyClaim{
		key:         shared.IdempotencyKey{Key: key, Owner: owner, Endpoint: endpoint},
		requestHash: hash,
	}, nil
}

func requestHash(request any) (string, error) {
	data, err := json.Marshal(request)
	if err != nil {
		return "", errs.Internal(err, "failed to hash request")
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// acquire reserves the key inside tx. A non-empty result is the reference
// produced by an earlier completed request with the same payload.
func (c *idempotencyClaim) acquire(ctx context.Context, tx shared.Tx, now time.Time) (string, error) {
	repo := tx.Idempotency()
	expiresAt := now.Add(idempotencyTTL)

	inserted, err := repo.TryInsert(ctx, tx.DB(), c.key, c.requestHash, expiresAt)
	if err != nil {
		return "", err
	}
	if inserted {
		return "", nil
	}

	existing, err := repo.Get(ctx, tx.DB(), c.key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.Conflict("request with this Idempotency-Key is still in progress")
		}
		return "", err
	}

	if !existing.ExpiresAt.After(now) {
		claimed, err := repo.ClaimExpired(ctx, tx.DB(), c.key, c.requestHash, now, expiresAt)
		if err != nil {
			return "", err
		}
		if !claimed {
			return "", errs.Conflict("request with this Idempotency-Key is still in progress")
		}
		return "", nil
	}

	if existing.RequestHash != c.requestHash {
		return "", errs.Conflict("Idempotency-Key was already used with a different request")
	}
	if existing.Status != shared.IdempotencyCompleted || existing.ResultReference == nil {
		return "", errs.Conflict("request with this Idempotency-Key is still in progress")
	}
	return *existing.ResultReference, nil
}

func (c *idempotencyClaim) complete(ctx context.Context, tx shared.Tx, reference string) error {
	return tx.Idempotency().Complete(ctx, tx.DB(), c.key, reference)
}
