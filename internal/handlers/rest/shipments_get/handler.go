package shipments_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fastfare/internal/dto"
	"fastfare/internal/entities"
	"fastfare/internal/service/shipment"
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

// ServeHTTP отдает отправки по одному из фильтров: owner_id либо driver_id.
// Ровно один фильтр обязателен.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ownerIDStr := r.URL.Query().Get("owner_id")
	driverIDStr := r.URL.Query().Get("driver_id")

	if (ownerIDStr == "") == (driverIDStr == "") {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var shipmentEntities []entities.Shipment
	var err error
	if ownerIDStr != "" {
		var ownerID int64
		ownerID, err = strconv.ParseInt(ownerIDStr, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		shipmentEntities, err = h.service.ListByOwner(r.Context(), ownerID)
	} else {
		var driverID int64
		driverID, err = strconv.ParseInt(driverIDStr, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		shipmentEntities, err = h.service.ListByDriver(r.Context(), driverID)
	}
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidOwnerID),
			errors.Is(err, shipment.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	shipmentDTOs := dto.FromShipmentEntities(shipmentEntities)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(shipmentDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
