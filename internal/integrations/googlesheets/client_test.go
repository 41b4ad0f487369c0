package googlesheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type nopMetrics struct{ failures int }

func (m *nopMetrics) ObserveUpstream(_, _ string, _ float64, err error) {
	if err != nil {
		m.failures++
	}
}

var testRanges = Ranges{
	Weekly:     "weekly!A1:Z100",
	Exceptions: "exceptions!A1:Z1000",
	Procedures: "procedures!A1:Z1000",
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *nopMetrics) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m := &nopMetrics{}
	client, err := NewClient(context.Background(), testRanges, nil, m, logger.NewNop(),
		option.WithHTTPClient(srv.Client()),
		option.WithEndpoint(srv.URL+"/"),
	)
	require.NoError(t, err)
	return client, m
}

func valuesResponse(t *testing.T, w http.ResponseWriter, values [][]interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
		"majorDimension": "ROWS",
		"values":         values,
	}))
}

func TestClient_ReadsMasterSheet(t *testing.T) {
	var requestedPaths []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requestedPaths = append(requestedPaths, r.URL.Path)

		switch {
		case strings.Contains(r.URL.Path, "weekly"):
			valuesResponse(t, w, [][]interface{}{
				{"weekday", "hours", "is_day_off"},
				{"tuesday", "10:00-17:00", "no"},
			})
		case strings.Contains(r.URL.Path, "procedures"):
			valuesResponse(t, w, [][]interface{}{
				{"id", "name_pl", "duration_min", "order"},
				{"massage", "Masaż", 60, 1},
			})
		default:
			valuesResponse(t, w, nil)
		}
	})
	master := domain.Master{ID: "juli", SheetID: "sheet-juli"}

	weekly, err := client.GetWeeklySchedule(context.Background(), master)
	require.NoError(t, err)
	assert.Equal(t, "10:00-17:00", weekly[domain.Tuesday].Hours)

	procedures, err := client.GetProcedures(context.Background(), master)
	require.NoError(t, err)
	require.Len(t, procedures, 1)
	assert.Equal(t, 60, procedures[0].DurationMinutes)
	require.NotNil(t, procedures[0].Order)
	assert.Equal(t, 1, *procedures[0].Order)

	exceptions, err := client.GetExceptions(context.Background(), master)
	require.NoError(t, err)
	assert.Empty(t, exceptions)

	require.NotEmpty(t, requestedPaths)
	assert.Contains(t, requestedPaths[0], "sheet-juli")
}

func TestClient_UpstreamError(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"Requested entity was not found."}}`))
	})

	_, err := client.GetWeeklySchedule(context.Background(), domain.Master{ID: "olga", SheetID: "missing"})

	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, 1, m.failures)
}

func TestClient_MasterWithoutSheet(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.GetProcedures(context.Background(), domain.Master{ID: "olga"})
	assert.ErrorIs(t, err, ErrMissingSheet)
}
