package shipment_scan_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastfare/internal/dto"
	"fastfare/internal/service/confirmation"
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
	var scanRequestDTO dto.ShipmentScanRequest
	err := json.NewDecoder(r.Body).Decode(&scanRequestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shipmentEntity, err := h.service.Scan(r.Context(), scanRequestDTO.Payload, scanRequestDTO.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, confirmation.ErrMalformedScanPayload),
			errors.Is(err, confirmation.ErrUnknownTokenType),
			errors.Is(err, confirmation.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, confirmation.ErrDriverNotAssigned):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrUnexpectedStatus):
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
