//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"marketplace-orders/internal/pkg/clock"
	"marketplace-orders/internal/usecase/shared"
	sharedmock "marketplace-orders/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

// harness wires a UnitOfWork mock whose Within runs the callback against a Tx mock.
type harness struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	bookings      *sharedmock.MockBookingRepository
	purchases     *sharedmock.MockPurchaseRepository
	listings      *sharedmock.MockListingRepository
	notifications *sharedmock.MockNotificationRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	dispatcher    *sharedmock.MockNotificationDispatcher
	clock         *clock.MockClock
	logger        *slog.Logger
}

func newHarness(ctrl *gomock.Controller) *harness {
	h := &harness{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		purchases:     sharedmock.NewMockPurchaseRepository(ctrl),
		listings:      sharedmock.NewMockListingRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		dispatcher:    sharedmock.NewMockNotificationDispatcher(ctrl),
		clock:         clock.NewMockClock(testNow),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).AnyTimes()
	h.uow.EXPECT().Stock().Return(h.listings).AnyTimes()

	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().Bookings().Return(h.bookings).AnyTimes()
	h.tx.EXPECT().Purchases().Return(h.purchases).AnyTimes()
	h.tx.EXPECT().Listings().Return(h.listings).AnyTimes()
	h.tx.EXPECT().Notifications().Return(h.notifications).AnyTimes()
	h.tx.EXPECT().Idempotency().Return(h.idempotency).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	return h
}

// expectDispatch records every dispatched event into out.
func (h *harness) expectDispatch(out *[]shared.NotificationEvent) {
	h.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev shared.NotificationEvent) shared.SideEffectResult {
			*out = append(*out, ev)
			return shared.SideEffectResult{Name: "notify"}
		}).AnyTimes()
}
