package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/checkout"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/storage"
)

const sessionCookie = "packetery_session"

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleSavePickupPoint(w http.ResponseWriter, r *http.Request) {
	form, err := parseForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := sessionID(form)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	point := checkout.PickupPoint{
		MethodCode:           form.str("packetery_rate_id"),
		ID:                   form.str("packetery_point_id"),
		Name:                 form.str("packetery_point_name"),
		City:                 form.str("packetery_point_city"),
		Zip:                  form.str("packetery_point_zip"),
		Street:               form.str("packetery_point_street"),
		URL:                  form.str("packetery_point_url"),
		CarrierID:            form.str("packetery_carrier_id"),
		CarrierPickupPointID: form.str("packetery_point_carrier_id"),
	}
	country := form.str("packetery_country")
	weight := form.float("packetery_weight")
	if err := form.err(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.validate.Struct(point); err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	err = s.Checkout.SavePickupPoint(r.Context(), id, country, weight, point)
	if err != nil {
		if errors.Is(err, checkout.ErrInvalidPickupPoint) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.logger.Error("Failed to save pickup point", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save pickup point")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Pickup point saved"})
}

func (s *Server) handleSaveValidatedAddress(w http.ResponseWriter, r *http.Request) {
	form, err := parseForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := sessionID(form)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	addr := checkout.ValidatedAddress{
		MethodCode:  form.str("packetery_rate_id"),
		Street:      form.str("packetery_address_street"),
		HouseNumber: form.str("packetery_address_house_number"),
		City:        form.str("packetery_address_city"),
		Zip:         form.str("packetery_address_zip"),
		Country:     form.str("packetery_address_country"),
		County:      form.str("packetery_address_county"),
		Latitude:    form.str("packetery_address_latitude"),
		Longitude:   form.str("packetery_address_longitude"),
	}
	if err := s.validate.Struct(addr); err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if err := s.Checkout.SaveValidatedAddress(r.Context(), id, addr); err != nil {
		s.logger.Error("Failed to save validated address", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save address")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Address saved"})
}

func (s *Server) handleSaveCarDelivery(w http.ResponseWriter, r *http.Request) {
	form, err := parseForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := sessionID(form)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	details := checkout.CarDelivery{
		MethodCode:           form.str("packetery_rate_id"),
		ID:                   form.str("packetery_car_delivery_id"),
		Street:               form.str("packetery_address_street"),
		City:                 form.str("packetery_address_city"),
		Zip:                  form.str("packetery_address_zip"),
		Country:              form.str("packetery_address_country"),
		ExpectedDeliveryFrom: form.str("packetery_expected_delivery_from"),
		ExpectedDeliveryTo:   form.str("packetery_expected_delivery_to"),
	}
	if err := s.validate.Struct(details); err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if err := s.Checkout.SaveCarDelivery(r.Context(), id, details); err != nil {
		if errors.Is(err, checkout.ErrCarDeliveryDisabled) {
			respondError(w, http.StatusForbidden, err.Error())
			return
		}
		s.logger.Error("Failed to save car delivery details", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save car delivery details")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Car delivery details saved"})
}

func (s *Server) handleRemoveSavedData(w http.ResponseWriter, r *http.Request) {
	form, err := parseForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := sessionID(form)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.Checkout.RemoveSavedData(r.Context(), id); err != nil {
		s.logger.Error("Failed to remove saved checkout data", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to remove saved data")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Saved data removed"})
}

func (s *Server) handleSaveOrderModal(w http.ResponseWriter, r *http.Request) {
	form, err := parseForm(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	orderNumber := form.str("order_number")
	if orderNumber == "" {
		respondError(w, http.StatusBadRequest, "order_number is required")
		return
	}

	ctx := r.Context()
	order, err := s.Orders.GetOrder(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		s.logger.Error("Failed to load order", zap.String("order_number", orderNumber), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load order")
		return
	}
	if order.IsExported {
		respondError(w, http.StatusConflict, "order was already submitted to Packeta")
		return
	}

	details := repository.OrderDetails{
		Weight:       form.float("packetery_weight"),
		Length:       form.optionalFloat("packetery_length"),
		Width:        form.optionalFloat("packetery_width"),
		Height:       form.optionalFloat("packetery_height"),
		Value:        order.Value,
		Cod:          form.optionalDecimal("packetery_cod"),
		AdultContent: form.bool("packetery_adult_content"),
	}
	if value := form.optionalDecimal("packetery_value"); value.Valid {
		details.Value = value.Decimal
	}
	if err := form.err(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if details.Weight < 0 {
		respondError(w, http.StatusBadRequest, "packetery_weight must not be negative")
		return
	}

	if err := s.Orders.UpdateOrderDetails(ctx, orderNumber, details); err != nil {
		s.logger.Error("Failed to update order details", zap.String("order_number", orderNumber), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to update order")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Order updated"})
}

func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	var req checkout.RatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Country = strings.ToUpper(req.Country)
	if err := s.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	rates, err := s.Checkout.AvailableRates(r.Context(), req)
	if err != nil {
		s.logger.Error("Failed to collect rates", zap.String("country", req.Country), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to collect rates")
		return
	}
	respondJSON(w, http.StatusOK, rates)
}

type orderPlacedRequest struct {
	checkout.ShopOrder
	SessionID string                `json:"session_id"`
	Point     *checkout.PickupPoint `json:"pickup_point,omitempty"`
}

func (s *Server) handleOrderPlaced(w http.ResponseWriter, r *http.Request) {
	var req orderPlacedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req.ShopOrder); err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	if req.Point != nil {
		if err := s.validate.Struct(req.Point); err != nil {
			respondError(w, http.StatusBadRequest, validationMessage(err))
			return
		}
	}

	event := checkout.OrderPlaced{Order: req.ShopOrder, SessionID: req.SessionID, Point: req.Point}
	if err := s.Dispatcher.Dispatch(r.Context(), event); err != nil {
		if errors.Is(err, checkout.ErrPickupPointMissing) || errors.Is(err, carrier.ErrUnknownCarrier) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.logger.Error("Failed to handle placed order", zap.String("order_number", req.OrderNumber), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to store order")
		return
	}
	respondJSON(w, http.StatusCreated, messageResponse{Message: "Order stored"})
}

func (s *Server) handleAddressChanged(w http.ResponseWriter, r *http.Request) {
	var event checkout.AddressChanged
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	event.OrderNumber = mux.Vars(r)["orderNumber"]
	if err := s.validate.Struct(event); err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if err := s.Dispatcher.Dispatch(r.Context(), event); err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		s.logger.Error("Failed to update order address", zap.String("order_number", event.OrderNumber), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to update address")
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Address updated"})
}
