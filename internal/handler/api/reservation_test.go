//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/domain/schedule"
	"table-booking/internal/handler/api"
	resdto "table-booking/internal/handler/dto/response"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"
	"table-booking/tests/common/builder"
	"table-booking/tests/common/httptest"
	"table-booking/tests/common/testutil"
	commandsmock "table-booking/tests/mock/commands"
	queriesmock "table-booking/tests/mock/queries"

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
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	h := api.NewReservationHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/reservations", fakeAuth)
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	b := builder.NewReservationBuilder().WithUserID(testUser.ID)
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildViewQuery()

	s.Run("success: 201 with the stored reservation in UTC", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), testUser, reqBody.ToCommand()).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testUser, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, userToken)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("booked", body.Status)
		s.Equal(time.UTC, body.DateTime.Location())
		s.True(view.DateTime.Equal(body.DateTime))
		httptest.AssertLocation(s.T(), rec, "reservations", view.ID.String())
	})

	s.Run("success: admin books on behalf of a user", func() {
		onBehalf := reqBody
		onBehalf.UserID = &testUser.ID
		s.mockCommands.EXPECT().Create(gomock.Any(), testAdmin, onBehalf.ToCommand()).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testAdmin, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", onBehalf, adminToken)
		s.Equal(http.StatusCreated, rec.Code)
	})

	bindingCases := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing restaurantId", mutate: testutil.Field("restaurantId", nil)},
		{name: "missing dateTime", mutate: testutil.Field("dateTime", nil)},
		{name: "restaurantId not a uuid", mutate: testutil.Field("restaurantId", "sushi")},
		{name: "dateTime not a string", mutate: testutil.Field("dateTime", 1760000000)},
	}
	for _, tc := range bindingCases {
		s.Run("error: 400 "+tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", body, userToken)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: 422 outside working hours carries the window", func() {
		outside := errs.WithDetail(schedule.ErrOutsideHours, "working hours: %s", "10:00 - 22:00")
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, outside)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, userToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "outside working hours")
		httptest.AssertErrorDetail(s.T(), rec, "working hours: 10:00 - 22:00")
	})

	usecaseErrors := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "quota", err: reservation.ErrQuotaExceeded, expectCode: http.StatusUnprocessableEntity},
		{name: "foreign owner", err: reservation.ErrForeignOwner, expectCode: http.StatusForbidden},
		{name: "unknown restaurant", err: commands.ErrRestaurantNotFound, expectCode: http.StatusNotFound},
		{name: "bad timestamp", err: schedule.ErrInvalidTimestamp, expectCode: http.StatusBadRequest},
	}
	for _, tc := range usecaseErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, userToken)
			s.Equal(tc.expectCode, rec.Code)
		})
	}

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestList / TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	restaurantID := uuid.New()
	items := []*queries.ReservationView{
		builder.NewReservationBuilder().WithUserID(testUser.ID).WithRestaurantID(restaurantID).BuildViewQuery(),
	}

	s.Run("success: filters by restaurant", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), testUser, &restaurantID, (*queries.Cursor)(nil), 5).Return(items, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?restaurantId="+restaurantID.String()+"&limit=5", nil, userToken)

		var body resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Reservations, 1)
		s.Equal(restaurantID, body.Reservations[0].RestaurantID)
	})

	s.Run("success: admin without filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), testAdmin, (*uuid.UUID)(nil), gomock.Any(), queries.DefaultListLimit).Return(items, nil, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, adminToken)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed restaurantId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?restaurantId=abc", nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid restaurant id")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildViewQuery()
	url := "/reservations/" + view.ID.String()

	s.Run("error: 403 for another user's reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testUser, view.ID).Return(nil, reservation.ErrNotOwner)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "does not own")
	})

	s.Run("success: admin reads it", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testAdmin, view.ID).Return(view, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, adminToken)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.UserID, body.UserID)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrReservationNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+uuid.NewString(), nil, userToken)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdate() {
	view := builder.NewReservationBuilder().WithUserID(testUser.ID).WithStatus(reservation.StatusCancelled).BuildViewQuery()
	url := "/reservations/" + view.ID.String()

	s.Run("success: cancel", func() {
		status := "cancelled"
		s.mockCommands.EXPECT().Update(gomock.Any(), testUser, view.ID, commands.UpdateReservationRequest{Status: &status}).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testUser, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "cancelled"}, userToken)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	transitionErrors := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "terminal state", err: reservation.ErrTerminalState, expectCode: http.StatusUnprocessableEntity},
		{name: "completed too early", err: reservation.ErrCompletedTooEarly, expectCode: http.StatusUnprocessableEntity},
		{name: "unknown status", err: reservation.ErrUnknownStatus, expectCode: http.StatusBadRequest},
		{name: "reopen requires admin", err: reservation.ErrReopenRequiresAdmin, expectCode: http.StatusForbidden},
	}
	for _, tc := range transitionErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), view.ID, gomock.Any()).Return(tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "completed"}, userToken)
			s.Equal(tc.expectCode, rec.Code)
		})
	}

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": 7}, userToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.mockCommands.EXPECT().Delete(gomock.Any(), testUser, id).Return(nil)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, userToken)
	s.Equal(http.StatusNoContent, rec.Code)

	s.mockCommands.EXPECT().Delete(gomock.Any(), testUser, id).Return(commands.ErrReservationNotFound)
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, userToken)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/nope", nil, userToken)
	s.Equal(http.StatusBadRequest, rec.Code)
}
