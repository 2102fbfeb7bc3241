package drivers_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fastfare/internal/dto"
	"fastfare/internal/service/driver"
	"fastfare/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fleetIDStr := r.URL.Query().Get("fleet_id")
	fleetID, err := strconv.ParseInt(fleetIDStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverEntities, err := h.service.GetFleetDrivers(r.Context(), fleetID)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrInvalidFleetID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	driverDTOs := dto.FromDriverEntities(driverEntities)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(driverDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
