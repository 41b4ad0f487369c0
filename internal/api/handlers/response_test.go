package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusOK, map[string]int{"count": 3})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":3}`, rec.Body.String())
}

func TestRespondErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "Nie znaleziono procedury.")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Nie znaleziono procedury."}`, rec.Body.String())

	rec = httptest.NewRecorder()
	RespondServiceUnavailable(rec)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("Retry-After"))

	rec = httptest.NewRecorder()
	RespondInternalError(rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInternalError)
}

func TestDecodeJSON(t *testing.T) {
	var dest struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"olga"}`))
	require.NoError(t, DecodeJSON(req, &dest))
	assert.Equal(t, "olga", dest.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"olga","extra":1}`))
	assert.Error(t, DecodeJSON(req, &dest))

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	assert.ErrorIs(t, DecodeJSON(req, &dest), ErrEmptyBody)
}

func TestQueryHelpers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/?category=%20osteo%20&empty=&duration=60&bad=x&start=2024-06-11T10:00:00%2B02:00", nil)

	category := OptionalQuery(req, "category")
	require.NotNil(t, category)
	assert.Equal(t, "osteo", *category)
	assert.Nil(t, OptionalQuery(req, "empty"))
	assert.Nil(t, OptionalQuery(req, "missing"))

	duration, err := QueryInt(req, "duration")
	require.NoError(t, err)
	assert.Equal(t, 60, duration)

	missing, err := QueryInt(req, "missing")
	require.NoError(t, err)
	assert.Equal(t, 0, missing)

	_, err = QueryInt(req, "bad")
	assert.Error(t, err)

	start, err := QueryTime(req, "start")
	require.NoError(t, err)
	require.NotNil(t, start)
	assert.Equal(t, "2024-06-11T10:00:00+02:00", FormatInstant(*start))

	_, err = QueryTime(req, "bad")
	assert.Error(t, err)
}
