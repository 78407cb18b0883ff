package handlers

import (
	"context"
	"dormdash-route-service/internal/domain"
	"dormdash-route-service/internal/services"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePlanner struct {
	route *domain.SmartRoute
	err   error
	got   *services.SmartRouteRequest
}

func (p *fakePlanner) Plan(_ context.Context, req services.SmartRouteRequest) (*domain.SmartRoute, error) {
	p.got = &req
	if p.err != nil {
		return nil, p.err
	}
	if p.route != nil {
		return p.route, nil
	}
	return domain.EmptySmartRoute(req.CurrentLocation), nil
}

func serveSmartRoute(t *testing.T, planner RoutePlanner, target string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /movers/{moverID}/smart-route", NewSmartRouteHandler(planner, zap.NewNop()).SmartRoute)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSmartRouteResponseShape(t *testing.T) {
	scheduled := time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)
	pickup := domain.Address{Label: "Totem Park", Coordinates: domain.Coordinates{Lat: 49.2606, Lon: -123.2460}}
	dropoff := domain.Address{Label: "Warehouse", Coordinates: domain.Coordinates{Lat: 49.2, Lon: -123.1}}

	planner := &fakePlanner{route: &domain.SmartRoute{
		Route: []domain.RouteEntry{{
			Job: domain.Job{
				JobID: "job-1", OrderID: "order-1", StudentID: "student-1",
				Type: domain.JobTypeStorage, Volume: 2, Price: 80,
				Pickup: pickup, Dropoff: dropoff, ScheduledTime: scheduled,
			},
			EstimatedStartTime:     scheduled,
			EstimatedDuration:      60,
			DistanceFromPrevious:   1.5,
			TravelTimeFromPrevious: 2,
		}},
		Metrics: domain.RouteMetrics{
			TotalEarnings: 80, TotalJobs: 1, TotalDistance: 1.5, TotalDuration: 62, EarningsPerHour: 77.42,
		},
		StartLocation: domain.Coordinates{Lat: 49.25, Lon: -123.2},
	}}

	rec := serveSmartRoute(t, planner, "/movers/abc/smart-route?currentLat=49.25&currentLon=-123.2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	assert.JSONEq(t, `{
		"route": [{
			"jobId": "job-1",
			"orderId": "order-1",
			"studentId": "student-1",
			"jobType": "STORAGE",
			"volume": 2,
			"price": 80,
			"pickupAddress": {"label": "Totem Park", "lat": 49.2606, "lon": -123.246},
			"dropoffAddress": {"label": "Warehouse", "lat": 49.2, "lon": -123.1},
			"scheduledTime": "2026-10-19T18:00:00Z",
			"estimatedStartTime": "2026-10-19T18:00:00Z",
			"estimatedDuration": 60,
			"distanceFromPrevious": 1.5,
			"travelTimeFromPrevious": 2
		}],
		"metrics": {"totalEarnings": 80, "totalJobs": 1, "totalDistance": 1.5, "totalDuration": 62, "earningsPerHour": 77.42},
		"startLocation": {"lat": 49.25, "lon": -123.2}
	}`, rec.Body.String())

	require.NotNil(t, planner.got)
	assert.Equal(t, "abc", planner.got.MoverID)
	assert.Nil(t, planner.got.MaxDurationMinutes)
}

func TestSmartRouteEmptyRouteIsAnArray(t *testing.T) {
	rec := serveSmartRoute(t, &fakePlanner{}, "/movers/unknown/smart-route?currentLat=49.25&currentLon=-123.2")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, []any{}, body["route"])
	assert.Equal(t, map[string]any{"lat": 49.25, "lon": -123.2}, body["startLocation"])
}

func TestSmartRoutePassesMaxDuration(t *testing.T) {
	planner := &fakePlanner{}
	rec := serveSmartRoute(t, planner, "/movers/m/smart-route?currentLat=49.25&currentLon=-123.2&maxDuration=90")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, planner.got.MaxDurationMinutes)
	assert.Equal(t, 90.0, *planner.got.MaxDurationMinutes)
}

func TestSmartRouteBadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"missing lat", "currentLon=-123.2", "currentLat is required"},
		{"missing lon", "currentLat=49.25", "currentLon is required"},
		{"non-numeric lat", "currentLat=north&currentLon=-123.2", "currentLat must be a number"},
		{"lat out of range", "currentLat=91&currentLon=-123.2", "currentLat must be a valid latitude"},
		{"lon out of range", "currentLat=49.25&currentLon=-181", "currentLon must be a valid longitude"},
		{"non-numeric max duration", "currentLat=49.25&currentLon=-123.2&maxDuration=soon", "maxDuration must be a number"},
		{"zero max duration", "currentLat=49.25&currentLon=-123.2&maxDuration=0", "maxDuration must be a positive number"},
		{"negative max duration", "currentLat=49.25&currentLon=-123.2&maxDuration=-5", "maxDuration must be a positive number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := &fakePlanner{}
			rec := serveSmartRoute(t, planner, "/movers/m/smart-route?"+tt.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, decodeBody(t, rec)["error"])
			assert.Nil(t, planner.got)
		})
	}
}

func TestSmartRouteErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			"invalid budget from planner",
			fmt.Errorf("plan smart route: %w", services.ErrInvalidMaxDuration),
			http.StatusBadRequest,
			"maxDuration must be a positive number",
		},
		{
			"calculation failure",
			fmt.Errorf("%w: %w", services.ErrRouteCalculation, errors.New("dial tcp: connection refused")),
			http.StatusInternalServerError,
			"route calculation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveSmartRoute(t, &fakePlanner{err: tt.err}, "/movers/m/smart-route?currentLat=49.25&currentLon=-123.2")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, map[string]any{"error": tt.wantMsg}, decodeBody(t, rec))
		})
	}
}
