package shipment_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastfare/internal/dto"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var cancelRequestDTO dto.ShipmentCancelRequest
	err := json.NewDecoder(r.Body).Decode(&cancelRequestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shipmentEntity, err := h.service.Cancel(r.Context(), cancelRequestDTO.ShipmentID)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidShipmentID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrShipmentTerminal):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromShipmentEntity(shipmentEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
