package handlers

import (
	"context"
	"dormdash-route-service/internal/api/dto"
	"dormdash-route-service/internal/domain"
	"dormdash-route-service/internal/platform/obs"
	"dormdash-route-service/internal/services"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// RoutePlanner computes smart routes. *services.SmartRoutePlanner implements it.
type RoutePlanner interface {
	Plan(ctx context.Context, req services.SmartRouteRequest) (*domain.SmartRoute, error)
}

type SmartRouteHandler struct {
	Planner  RoutePlanner
	Validate *validator.Validate
	Log      *zap.Logger
}

func NewSmartRouteHandler(planner RoutePlanner, log *zap.Logger) *SmartRouteHandler {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("query"); name != "" {
			return name
		}
		return f.Name
	})

	return &SmartRouteHandler{Planner: planner, Validate: v, Log: log}
}

// SmartRoute answers GET /movers/{moverID}/smart-route.
//
// Unknown or malformed mover IDs still get 200 with an empty route; only bad
// query parameters are rejected.
func (h *SmartRouteHandler) SmartRoute(w http.ResponseWriter, r *http.Request) {
	q, err := parseSmartRouteQuery(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Validate.Struct(q); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	req := services.SmartRouteRequest{
		MoverID:            r.PathValue("moverID"),
		CurrentLocation:    domain.Coordinates{Lat: *q.CurrentLat, Lon: *q.CurrentLon},
		MaxDurationMinutes: q.MaxDuration,
	}

	route, err := h.Planner.Plan(r.Context(), req)
	if errors.Is(err, services.ErrInvalidMaxDuration) {
		writeError(w, r, http.StatusBadRequest, "maxDuration must be a positive number")
		return
	}
	if err != nil {
		h.Log.Error("smart route failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.String("mover_id", req.MoverID),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, services.ErrRouteCalculation.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewSmartRouteResponse(route))
}

func parseSmartRouteQuery(r *http.Request) (dto.SmartRouteQuery, error) {
	values := r.URL.Query()
	var q dto.SmartRouteQuery

	for _, p := range []struct {
		key string
		dst **float64
	}{
		{"currentLat", &q.CurrentLat},
		{"currentLon", &q.CurrentLon},
		{"maxDuration", &q.MaxDuration},
	} {
		raw := strings.TrimSpace(values.Get(p.key))
		if raw == "" {
			continue
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return dto.SmartRouteQuery{}, fmt.Errorf("%s must be a number", p.key)
		}
		*p.dst = &f
	}

	return q, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid query"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "latitude":
		return fe.Field() + " must be a valid latitude"
	case "longitude":
		return fe.Field() + " must be a valid longitude"
	case "gt":
		return fe.Field() + " must be a positive number"
	default:
		return fe.Field() + " is invalid"
	}
}
