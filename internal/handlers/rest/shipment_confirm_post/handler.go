package shipment_confirm_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastfare/internal/dto"
	"fastfare/internal/service/confirmation"
	"fastfare/internal/service/driver"
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
	var confirmRequestDTO dto.ShipmentConfirmRequest
	err := json.NewDecoder(r.Body).Decode(&confirmRequestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shipmentEntity, err := h.service.Confirm(
		r.Context(),
		confirmRequestDTO.ShipmentID,
		confirmRequestDTO.DriverID,
		confirmRequestDTO.FleetID,
	)
	if err != nil {
		switch {
		case errors.Is(err, confirmation.ErrInvalidShipmentID),
			errors.Is(err, confirmation.ErrInvalidDriverID),
			errors.Is(err, confirmation.ErrInvalidFleetID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, confirmation.ErrForeignFleetDriver):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, shipment.ErrShipmentNotFound),
			errors.Is(err, driver.ErrDriverNotFound):
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
