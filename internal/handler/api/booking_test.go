//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"marketplace-orders/internal/domain/auth"
	"marketplace-orders/internal/domain/booking"
	"marketplace-orders/internal/handler/api"
	resdto "marketplace-orders/internal/handler/dto/response"
	"marketplace-orders/internal/pkg/errs"
	"marketplace-orders/internal/usecase/commands"
	"marketplace-orders/internal/usecase/queries"
	"marketplace-orders/tests/common/builder"
	"marketplace-orders/tests/common/httptest"
	"marketplace-orders/tests/common/testutil"
	commandsmock "marketplace-orders/tests/mock/commands"
	queriesmock "marketplace-orders/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	auth         *fakeAuth
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.auth = &fakeAuth{userID: uuid.New()}

	bookings := s.router.Group("/bookings", s.auth.optional)
	bookings.POST("", s.handler.Create)
	bookings.GET("/:reference", s.handler.Get)
	bookings.PATCH("/:reference", s.auth.require, s.handler.ChangeStatus)
	bookings.PATCH("/:reference/cancellation-request", s.handler.RequestCancellation)
	bookings.PATCH("/:reference/resolve", s.handler.Resolve)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	validation := []testCaseBooking{
		{name: "missing field: listing_id (required)", mutate: testutil.Field("listing_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: project_title (required)", mutate: testutil.Field("project_title", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: client_name (required)", mutate: testutil.Field("client_name", nil), expectCode: http.StatusBadRequest},
		{name: "invalid client_email", mutate: testutil.Field("client_email", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "project_title length OK (200 chars)", mutate: testutil.Field("project_title", strings.Repeat("a", 200)), expectCode: http.StatusCreated},
		{name: "project_title too long (201 chars)", mutate: testutil.Field("project_title", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
		{name: "malformed listing_id", mutate: testutil.Field("listing_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with the booking reference", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateBookingRequest, caller auth.Caller) (*queries.BookingView, error) {
				s.Equal(reqBody.ListingID, req.ListingID)
				s.False(caller.IsAuthenticated())
				s.Equal(reqBody.ClientEmail, caller.ClaimedEmail)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.Success)
		s.Equal(returnView.Reference, body.BookingReference)
		s.Equal("150.00", body.Booking.Amount)
		s.Equal("pending", body.Booking.Status)
	})

	s.Run("success: authenticated caller is passed through", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ commands.CreateBookingRequest, caller auth.Caller) (*queries.BookingView, error) {
				s.True(caller.Is(s.auth.userID))
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: forwards the Idempotency-Key header", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateBookingRequest, _ auth.Caller) (*queries.BookingView, error) {
				s.Equal("booking-retry-1", req.IdempotencyKey)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": "booking-retry-1"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(returnView, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "listing not found",
				commandsError:  errs.NotFound("listing not found"),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "listing not found",
			},
			{
				name:           "listing not bookable",
				commandsError:  errs.Validation("listing is not active"),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "listing is not active",
			},
			{
				name:           "reference space exhausted",
				commandsError:  errs.Conflict("booking already exists"),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "booking already exists",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	returnView := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + returnView.Reference

	s.Run("success: returns 200 OK with the booking", func() {
		s.mockQueries.EXPECT().GetByReference(gomock.Any(), returnView.Reference).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Empty(body.BookingReference)
		s.Equal(returnView.ID, body.Booking.ID)
		s.Equal(returnView.ClientEmail, body.Booking.ClientEmail)
	})

	s.Run("error: 400 Bad Request for malformed reference", func() {
		s.mockQueries.EXPECT().GetByReference(gomock.Any(), "nope").
			Return(nil, errs.Validation("invalid booking reference format")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid booking reference format")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByReference(gomock.Any(), returnView.Reference).
			Return(nil, errs.NotFound("booking not found")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}

// ================================================================================
// TestChangeStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestChangeStatus() {
	returnView := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildView()
	url := "/bookings/" + returnView.Reference
	reqBody := map[string]any{"status": "confirmed", "providerResponse": "See you Monday"}

	s.Run("success: provider identity reaches the command", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), returnView.Reference, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req commands.ChangeBookingStatusRequest, caller auth.Caller) (*queries.BookingView, error) {
				s.Equal("confirmed", req.Status)
				s.Require().NotNil(req.ProviderResponse)
				s.Equal("See you Monday", *req.ProviderResponse)
				s.True(caller.Is(s.auth.userID))
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var body resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Booking.Status)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request without status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not the provider",
				commandsError:  errs.Forbidden("only the provider of this booking can perform this action"),
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "only the provider",
			},
			{
				name:           "illegal transition",
				commandsError:  errs.InvalidTransition("cannot transition booking from cancelled to confirmed"),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "cannot transition booking",
			},
			{
				name:           "lost a concurrent update",
				commandsError:  errs.Conflict("booking was modified concurrently"),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "modified concurrently",
			},
			{
				name:           "booking not found",
				commandsError:  errs.NotFound("booking not found"),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "booking not found",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), returnView.Reference, gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestRequestCancellation
// ================================================================================

func (s *BookingHandlerTestSuite) TestRequestCancellation() {
	returnView := builder.NewBookingBuilder().WithPendingRequest(booking.ActorClient, "Plans changed").BuildView()
	url := "/bookings/" + returnView.Reference + "/cancellation-request"
	reqBody := map[string]any{"actor": "client", "reason": "Plans changed", "clientEmail": "ada@example.com"}

	validation := []testCaseBooking{
		{name: "missing field: actor (required)", mutate: testutil.Field("actor", nil), expectCode: http.StatusBadRequest},
		{name: "system actor is rejected", mutate: testutil.Field("actor", "system"), expectCode: http.StatusBadRequest},
		{name: "missing field: reason (required)", mutate: testutil.Field("reason", nil), expectCode: http.StatusBadRequest},
		{name: "reason length OK (2000 chars)", mutate: testutil.Field("reason", strings.Repeat("r", 2000)), expectCode: http.StatusOK},
		{name: "reason too long (2001 chars)", mutate: testutil.Field("reason", strings.Repeat("r", 2001)), expectCode: http.StatusBadRequest},
		{name: "invalid clientEmail", mutate: testutil.Field("clientEmail", "ada"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: claimed email reaches the command", func() {
		s.mockCommands.EXPECT().RequestCancellation(gomock.Any(), returnView.Reference, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req commands.RequestCancellationRequest, caller auth.Caller) (*queries.BookingView, error) {
				s.Equal(commands.RequestCancellationRequest{Actor: "client", Reason: "Plans changed"}, req)
				s.False(caller.IsAuthenticated())
				s.Equal("ada@example.com", caller.ClaimedEmail)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")

		var body resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("client_cancellation_requested", body.Booking.Status)
		s.Require().NotNil(body.Booking.CancellationRequestedBy)
		s.Equal("client", *body.Booking.CancellationRequestedBy)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusOK {
					s.mockCommands.EXPECT().RequestCancellation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
						Return(returnView, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap, "")
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: 409 Conflict when a request is already pending", func() {
		s.mockCommands.EXPECT().RequestCancellation(gomock.Any(), returnView.Reference, gomock.Any(), gomock.Any()).
			Return(nil, errs.Conflict("a cancellation request is already pending for this booking")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already pending")
	})
}

// ================================================================================
// TestResolve
// ================================================================================

func (s *BookingHandlerTestSuite) TestResolve() {
	returnView := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildView()
	url := "/bookings/" + returnView.Reference + "/resolve"

	s.Run("success: status becomes the resolution", func() {
		s.mockCommands.EXPECT().ResolveCancellation(gomock.Any(), returnView.Reference, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req commands.ResolveCancellationRequest, caller auth.Caller) (*queries.BookingView, error) {
				s.Equal("cancelled", req.Resolution)
				s.Require().NotNil(req.ResolutionNotes)
				s.Equal("Agreed", *req.ResolutionNotes)
				s.True(caller.Is(s.auth.userID))
				return returnView, nil
			}).Times(1)

		reqBody := map[string]any{"status": "cancelled", "resolutionNotes": "Agreed", "cancelledBy": "client"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var body resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Booking.Status)
	})

	s.Run("error: 400 Bad Request for pending as a resolution", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "pending"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 Unauthorized for an anonymous caller without email", func() {
		s.mockCommands.EXPECT().ResolveCancellation(gomock.Any(), returnView.Reference, gomock.Any(), gomock.Any()).
			Return(nil, errs.Unauthorized("authentication required")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "confirmed"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "authentication required")
	})
}
