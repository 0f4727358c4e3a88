package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/commutemap/internal/pkg/middleware"
	"github.com/piresc/commutemap/internal/pkg/models"
	"github.com/piresc/commutemap/internal/pkg/websocket"
	"github.com/piresc/commutemap/services/session/mocks"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	mockUC.EXPECT().State().Return(models.SessionState{Mode: models.ModeCar})
	mockUC.EXPECT().RemoveFrequent(gomock.Any(), "f1").Return(nil)

	e := echo.New()
	NewHandler(mockUC, nil, &models.Config{}).RegisterRoutes(e, middleware.NewMiddleware(middleware.Config{}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/state", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/places/frequent/f1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ws", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterRoutes_Stream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := echo.New()
	NewHandler(mocks.NewMockSessionUC(ctrl), websocket.NewManager(), &models.Config{}).
		RegisterRoutes(e, middleware.NewMiddleware(middleware.Config{}))

	// a plain GET reaches the upgrader, which rejects the missing handshake
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ws", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
