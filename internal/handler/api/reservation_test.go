//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"campsite-reservation/internal/domain/booking"
	"campsite-reservation/internal/handler/api"
	resdto "campsite-reservation/internal/handler/dto/response"
	"campsite-reservation/internal/pkg/errs"
	"campsite-reservation/internal/usecase/commands"
	"campsite-reservation/internal/usecase/queries"
	"campsite-reservation/tests/common/builder"
	"campsite-reservation/tests/common/httptest"
	"campsite-reservation/tests/common/testutil"
	commandsmock "campsite-reservation/tests/mock/commands"
	queriesmock "campsite-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/api/reservations/availability", s.handler.FindAvailability)
	s.router.POST("/api/reservations", s.handler.Create)
	s.router.GET("/api/reservations/:id", s.handler.Get)
	s.router.PUT("/api/reservations/:id", s.handler.Modify)
	s.router.DELETE("/api/reservations/:id", s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func mustDate(s string) time.Time {
	d, err := booking.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func mustRange(from, to string) booking.DateRange {
	r, err := booking.NewDateRange(mustDate(from), mustDate(to))
	if err != nil {
		panic(err)
	}
	return r
}

// ================================================================================
// TestFindAvailability
// ================================================================================

func (s *ReservationHandlerTestSuite) TestFindAvailability() {
	url := "/api/reservations/availability"

	s.Run("success: returns free ranges of the queried window", func() {
		from, to := mustDate("2026-06-01"), mustDate("2026-06-10")
		availability := booking.NewAvailability(mustRange("2026-06-01", "2026-06-10"))
		s.Require().NoError(availability.Add(mustRange("2026-06-01", "2026-06-03")))
		s.Require().NoError(availability.Add(mustRange("2026-06-05", "2026-06-10")))

		s.mockQueries.EXPECT().FindAvailability(gomock.Any(), queries.AvailabilityQuery{From: &from, To: &to}).
			Return(availability, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=2026-06-01&to=2026-06-10", nil)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.DateRangeResponse{From: "2026-06-01", To: "2026-06-10"}, body.Queried)
		s.Equal([]resdto.DateRangeResponse{
			{From: "2026-06-01", To: "2026-06-03"},
			{From: "2026-06-05", To: "2026-06-10"},
		}, body.Free)
	})

	s.Run("success: bounds are optional and an empty result is an empty list", func() {
		availability := booking.NewAvailability(mustRange("2026-06-01", "2026-07-01"))
		s.mockQueries.EXPECT().FindAvailability(gomock.Any(), queries.AvailabilityQuery{}).
			Return(availability, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotNil(body.Free)
		s.Empty(body.Free)
		s.Contains(rec.Body.String(), `"free":[]`)
	})

	s.Run("success: an open free range has no end date", func() {
		availability := booking.NewAvailability(booking.NewOpenDateRange(mustDate("2026-06-01")))
		s.Require().NoError(availability.Add(booking.NewOpenDateRange(mustDate("2026-06-04"))))
		s.mockQueries.EXPECT().FindAvailability(gomock.Any(), gomock.Any()).
			Return(availability, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=2026-06-01", nil)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]resdto.DateRangeResponse{{From: "2026-06-04"}}, body.Free)
	})

	s.Run("error: 400 Bad Request on malformed dates", func() {
		for _, query := range []string{"?from=06/01/2026", "?to=2026-13-01", "?from=tomorrow"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+query, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "inverted range",
				queriesError:   booking.ErrInvalidDateRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "end date must be after start date",
			},
			{
				name:           "store failure",
				queriesError:   errors.New("connection refused"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().FindAvailability(gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/api/reservations"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	expectedInput := b.BuildMakeInput()
	bookingID := uuid.New()

	bound := []testCaseReservation{
		{name: "fullName length OK (100 chars)", mutate: testutil.Field("fullName", strings.Repeat("a", 100)), expectCode: http.StatusCreated},
		{name: "fullName length invalid (101 chars)", mutate: testutil.Field("fullName", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
		{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "invalid date format", mutate: testutil.NestedField("dateRange", "from", "2026/06/01"), expectCode: http.StatusBadRequest},
		{name: "end before start", mutate: testutil.NestedField("dateRange", "to", "2000-01-01"), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseReservation{
		{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: fullName (required)", mutate: testutil.Field("fullName", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: dateRange (required)", mutate: testutil.Field("dateRange", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: dateRange.to (required)", mutate: testutil.NestedField("dateRange", "to", nil), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseReservation{bound, missing}

	s.Run("success: returns 201 Created with id and Location", func() {
		s.mockCommands.EXPECT().MakeReservation(gomock.Any(), expectedInput).
			Return(&commands.MakeReservationResult{BookingID: bookingID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(bookingID.String(), body["id"])
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/" + bookingID.String()})
	})

	s.Run("success: contact fields are trimmed", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("fullName", "  "+b.FullName+"  "),
		)
		s.mockCommands.EXPECT().MakeReservation(gomock.Any(), expectedInput).
			Return(&commands.MakeReservationResult{BookingID: bookingID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().MakeReservation(gomock.Any(), gomock.Any()).
							Return(&commands.MakeReservationResult{BookingID: bookingID}, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: malformed JSON body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"email":`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: binding failures list the offending fields", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("email", nil),
			testutil.NestedField("dateRange", "from", "06/01/2026"),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertViolations(s.T(), rec, "email", "dateRange.from")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "dates taken",
				commandsError:  errs.Wrap(booking.ErrNoAvailability, "[2026-06-05, 2026-06-07)"),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "requested dates are not available",
			},
			{
				name:           "too long",
				commandsError:  booking.ErrBookingTooLong,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "maximum number of days",
			},
			{
				name:           "outside booking window",
				commandsError:  booking.ErrLeadTimeOutOfBounds,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "allowed booking window",
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
				s.mockCommands.EXPECT().MakeReservation(gomock.Any(), expectedInput).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	b := builder.NewBookingBuilder()
	returnBooking := b.BuildReconstructed()
	url := "/api/reservations/" + b.ID.String()

	s.Run("success: returns 200 OK with ReservationResponse", func() {
		s.mockQueries.EXPECT().GetReservation(gomock.Any(), b.ID).
			Return(returnBooking, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.ID, response.ID)
		s.Equal(b.Email, response.Email)
		s.Equal(b.FullName, response.FullName)
		s.Equal(booking.FormatDate(b.From), response.DateRange.From)
		s.Equal(booking.FormatDate(b.To), response.DateRange.To)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/invalid-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation id")
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.mockQueries.EXPECT().GetReservation(gomock.Any(), b.ID).
			Return(nil, booking.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}

// ================================================================================
// TestModify
// ================================================================================

func (s *ReservationHandlerTestSuite) TestModify() {
	b := builder.NewBookingBuilder()
	url := "/api/reservations/" + b.ID.String()
	reqBody := b.BuildDateRangeDTO()
	expectedRange, err := b.BuildDateRange()
	s.Require().NoError(err)

	s.Run("success: returns 200 OK with the updated reservation", func() {
		s.mockCommands.EXPECT().ModifyReservation(gomock.Any(), b.ID, expectedRange).
			Return(b.BuildReconstructed(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.ID, response.ID)
		s.Equal(reqBody.From, response.DateRange.From)
		s.Equal(reqBody.To, response.DateRange.To)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseReservation{
			{name: "missing field: from (required)", mutate: testutil.Field("from", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: to (required)", mutate: testutil.Field("to", nil), expectCode: http.StatusBadRequest},
			{name: "invalid date format", mutate: testutil.Field("to", "next week"), expectCode: http.StatusBadRequest},
			{name: "empty range", mutate: testutil.Field("to", reqBody.From), expectCode: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/reservations/invalid-uuid", reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  booking.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "booking not found",
			},
			{
				name:           "dates taken",
				commandsError:  booking.ErrNoAvailability,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "not available",
			},
			{
				name:           "past dates",
				commandsError:  booking.ErrPastDate,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "in the past",
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
				s.mockCommands.EXPECT().ModifyReservation(gomock.Any(), b.ID, expectedRange).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/api/reservations/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/reservations/invalid-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation id")
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), bookingID).
			Return(booking.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), bookingID).
			Return(errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
