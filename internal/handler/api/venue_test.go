//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"tablebook/internal/handler/api"
	resdto "tablebook/internal/handler/dto/response"
	"tablebook/internal/usecase/queries"
	"tablebook/tests/common/httptest"
	queriesmock "tablebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VenueHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockVenueQueries
	handler     *api.VenueHandler
}

func (s *VenueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockVenueQueries(s.mockCtrl)
	s.handler = api.NewVenueHandler(s.mockQueries)

	s.router.GET("/venues", s.handler.List)
	s.router.GET("/venues/search", s.handler.Search)
}

func (s *VenueHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVenueHandlerSuite(t *testing.T) {
	suite.Run(t, new(VenueHandlerTestSuite))
}

func venueView(name, cuisine, location string, rating float64) *queries.VenueView {
	return &queries.VenueView{
		ID:        uuid.New(),
		Name:      name,
		Cuisine:   cuisine,
		Location:  location,
		PriceTier: "mid",
		Rating:    rating,
		CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (s *VenueHandlerTestSuite) TestList() {
	s.Run("returns all venues", func() {
		views := []*queries.VenueView{
			venueView("Trattoria Uno", "Italian", "downtown", 4.8),
			venueView("Dragon Palace", "Chinese", "uptown", 4.5),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues", nil, "")

		var body []resdto.VenueResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("Trattoria Uno", body[0].Name)
	})

	s.Run("returns empty array when no venues exist", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues", nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq("[]", w.Body.String())
	})

	s.Run("maps read failures to 500", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *VenueHandlerTestSuite) TestSearch() {
	s.Run("forwards both filters", func() {
		views := []*queries.VenueView{venueView("Trattoria Uno", "Italian", "downtown", 4.8)}
		s.mockQueries.EXPECT().Search(gomock.Any(), "Italian", "downtown").Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/venues/search?cuisine=Italian&location=downtown", nil, "")

		var body []resdto.VenueResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("downtown", body[0].Location)
	})

	s.Run("missing filters search everything", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "", "").Return(nil, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/search", nil, "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("maps read failures to 500", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "Italian", "").Return(nil, errors.New("connection refused"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/search?cuisine=Italian", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}
