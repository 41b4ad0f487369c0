package googlecalendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type upstreamCall struct {
	upstream, operation string
	failed              bool
}

type recordingMetrics struct {
	calls []upstreamCall
}

func (m *recordingMetrics) ObserveUpstream(upstream, operation string, _ float64, err error) {
	m.calls = append(m.calls, upstreamCall{upstream: upstream, operation: operation, failed: err != nil})
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordingMetrics) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)

	m := &recordingMetrics{}
	client, err := NewClient(context.Background(), loc, nil, m, logger.NewNop(),
		option.WithHTTPClient(srv.Client()),
		option.WithEndpoint(srv.URL+"/"),
	)
	require.NoError(t, err)

	return client, m
}

func writeJSON(t *testing.T, w http.ResponseWriter, body interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestGetBusyIntervals_PaginatesAndFilters(t *testing.T) {
	var requests int32
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		assert.Equal(t, "true", r.URL.Query().Get("singleEvents"))
		assert.NotEmpty(t, r.URL.Query().Get("timeMin"))

		if r.URL.Query().Get("pageToken") == "" {
			writeJSON(t, w, map[string]interface{}{
				"nextPageToken": "page-2",
				"items": []map[string]interface{}{
					{
						"id":     "evt-1",
						"status": "confirmed",
						"start":  map[string]string{"dateTime": "2024-06-11T10:00:00+02:00"},
						"end":    map[string]string{"dateTime": "2024-06-11T11:00:00+02:00"},
					},
					{
						"id":     "evt-cancelled",
						"status": "cancelled",
						"start":  map[string]string{"dateTime": "2024-06-11T12:00:00+02:00"},
						"end":    map[string]string{"dateTime": "2024-06-11T13:00:00+02:00"},
					},
					{
						"id":           "evt-free",
						"transparency": "transparent",
						"start":        map[string]string{"dateTime": "2024-06-11T13:00:00+02:00"},
						"end":          map[string]string{"dateTime": "2024-06-11T14:00:00+02:00"},
					},
				},
			})
			return
		}

		writeJSON(t, w, map[string]interface{}{
			"items": []map[string]interface{}{
				{
					"id":    "evt-2",
					"start": map[string]string{"dateTime": "2024-06-11T15:00:00Z"},
					"end":   map[string]string{"dateTime": "2024-06-11T15:30:00Z"},
				},
				{
					"id":    "evt-broken",
					"start": map[string]string{"dateTime": "2024-06-11T16:00:00Z"},
					"end":   map[string]string{"dateTime": "2024-06-11T16:00:00Z"},
				},
			},
		})
	})

	from := time.Date(2024, time.June, 11, 3, 0, 0, 0, time.UTC)
	busy, err := client.GetBusyIntervals(context.Background(), "olga@group.calendar.google.com", from, from.Add(17*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&requests))
	require.Len(t, busy, 2)
	assert.Equal(t, "evt-1", busy[0].ID)
	assert.True(t, time.Date(2024, time.June, 11, 8, 0, 0, 0, time.UTC).Equal(busy[0].Start))
	assert.Equal(t, "evt-2", busy[1].ID)
	assert.Equal(t, 30*time.Minute, busy[1].End.Sub(busy[1].Start))

	require.Len(t, m.calls, 1)
	assert.Equal(t, upstreamCall{upstream: "google_calendar", operation: "events.list"}, m.calls[0])
}

func TestGetBusyIntervals_AllDayEventBlocksLocalDay(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]interface{}{
			"items": []map[string]interface{}{
				{
					"id":    "vacation",
					"start": map[string]string{"date": "2024-06-11"},
					"end":   map[string]string{"date": "2024-06-12"},
				},
			},
		})
	})

	busy, err := client.GetBusyIntervals(context.Background(), "cal", time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	require.Len(t, busy, 1)
	assert.True(t, time.Date(2024, time.June, 10, 22, 0, 0, 0, time.UTC).Equal(busy[0].Start))
	assert.Equal(t, 24*time.Hour, busy[0].End.Sub(busy[0].Start))
}

func TestGetBusyIntervals_UpstreamError(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"forbidden"}}`))
	})

	busy, err := client.GetBusyIntervals(context.Background(), "cal", time.Now(), time.Now().Add(time.Hour))

	assert.Nil(t, busy)
	assert.ErrorIs(t, err, ErrRequestFailed)
	require.Len(t, m.calls, 1)
	assert.True(t, m.calls[0].failed)
}

func TestGetBusyIntervals_Timeout(t *testing.T) {
	release := make(chan struct{})
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)
	client.SetTimeout(50 * time.Millisecond)

	_, err := client.GetBusyIntervals(context.Background(), "cal", time.Now(), time.Now().Add(time.Hour))

	assert.ErrorIs(t, err, ErrRequestFailed)
}
