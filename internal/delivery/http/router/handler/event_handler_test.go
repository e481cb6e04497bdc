package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gatherly/internal/domain/entity"
	"gatherly/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEventUsecase records the inputs it was called with and returns canned
// values.
type stubEventUsecase struct {
	listInput usecase.ListEventsInput
	events    []*entity.Event
	event     *entity.Event
	png       []byte
	err       error
}

func (s *stubEventUsecase) List(_ context.Context, input usecase.ListEventsInput) ([]*entity.Event, error) {
	s.listInput = input

	return s.events, s.err
}

func (s *stubEventUsecase) Get(context.Context, uuid.UUID) (*entity.Event, error) {
	return s.event, s.err
}

func (s *stubEventUsecase) ShareQR(context.Context, uuid.UUID) ([]byte, error) {
	return s.png, s.err
}

func TestEventHandler_List_PassesFilters(t *testing.T) {
	stub := &stubEventUsecase{
		events: []*entity.Event{{ID: uuid.New(), Title: "Yoga"}},
	}
	handler := &EventHandler{uc: stub}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/events?q=yoga&location=kad%C4%B1k%C3%B6y", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "yoga", stub.listInput.Query)
	assert.Equal(t, "kadıköy", stub.listInput.Location)
	assert.Contains(t, rec.Body.String(), "Yoga")
}

func TestEventHandler_Get_InvalidID(t *testing.T) {
	handler := &EventHandler{uc: &stubEventUsecase{}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/events/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.Get(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestEventHandler_ShareQR_ServesPNG(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	handler := &EventHandler{uc: &stubEventUsecase{png: png}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/events/"+uuid.NewString()+"/qr", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	require.NoError(t, handler.ShareQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
