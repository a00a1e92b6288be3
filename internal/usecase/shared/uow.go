package shared

import (
	"context"
	"time"

	"marketplace-orders/internal/domain/booking"
	"marketplace-orders/internal/domain/listing"
	"marketplace-orders/internal/domain/purchase"
	sqlc "marketplace-orders/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads outside transactions
	CommandReads() CommandReads
	// Stock: listing stock adjustments outside any transaction, for best-effort side effects
	Stock() ListingRepository
}

type Tx interface {
	Bookings() BookingRepository
	Purchases() PurchaseRepository
	Listings() ListingRepository
	Notifications() NotificationRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads loads aggregates for the write side.
type CommandReads interface {
	BookingByReference(ctx context.Context, reference string) (*booking.Booking, error)
	PurchaseByTrackingID(ctx context.Context, trackingID string) (*purchase.Purchase, error)
	ListingByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// UpdateState writes b only if the stored status still equals expected.
	UpdateState(ctx context.Context, tx sqlc.DBTX, expected booking.Status, b *booking.Booking) error
}

type PurchaseRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *purchase.Purchase) error
	UpdateState(ctx context.Context, tx sqlc.DBTX, expected purchase.Status, p *purchase.Purchase) error
}

// ListingRepository methods run against the pool when tx is nil.
type ListingRepository interface {
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, expected listing.Status, l *listing.Listing) error
	// DecrementStock reports false when the listing does not track stock or has too little.
	DecrementStock(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, quantity int32) (bool, error)
	// IncrementStock reports false when the listing does not track stock.
	IncrementStock(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, quantity int32) (bool, error)
}

type IdempotencyRepository interface {
	// TryInsert claims key in processing state and reports false when it already exists.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key IdempotencyKey, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, tx sqlc.DBTX, key IdempotencyKey) (*IdempotencyRecord, error)
	// ClaimExpired takes over a key whose previous claim expired before now.
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key IdempotencyKey, requestHash string, now, expiresAt time.Time) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key IdempotencyKey, resultReference string) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	PendingJobs(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkJob(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status JobStatus, lastErr *string, nextRunAt time.Time) error
}

type JobStatus string

const (
	JobPending JobStatus = "pending"
	JobSent    JobStatus = "sent"
	JobFailed  JobStatus = "failed"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}
