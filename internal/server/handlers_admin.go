package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/export"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/objectstore"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/packetapi"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/storage"
)

const defaultLogLimit = 50

// pricingRuleStatus maps pricing rule errors to HTTP statuses.
func pricingRuleStatus(err error) int {
	switch {
	case errors.Is(err, storage.ErrDuplicateCountry):
		return http.StatusConflict
	case errors.Is(err, storage.ErrPricingRuleNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrInvalidMaxWeight),
		errors.Is(err, storage.ErrWeightRuleMissing),
		errors.Is(err, storage.ErrInvalidPricingRule),
		errors.Is(err, storage.ErrCarrierNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleSavePricingRule(w http.ResponseWriter, r *http.Request) {
	var rule storage.PricingRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := s.PricingRules.SavePricingRule(r.Context(), rule)
	if err != nil {
		status := pricingRuleStatus(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("Failed to save pricing rule", zap.Error(err))
			respondError(w, status, "failed to save pricing rule")
			return
		}
		respondError(w, status, err.Error())
		return
	}

	status := http.StatusOK
	if rule.ID == nil {
		status = http.StatusCreated
	}
	respondJSON(w, status, map[string]int64{"id": id})
}

func (s *Server) handleListPricingRules(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var country *string
	if c := query.Get("country"); c != "" {
		upper := strings.ToUpper(c)
		country = &upper
	}
	var enabled *bool
	if e := query.Get("enabled"); e != "" {
		v, err := strconv.ParseBool(e)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid enabled filter")
			return
		}
		enabled = &v
	}

	rules, err := s.PricingRules.FindPricingRules(r.Context(), country, enabled)
	if err != nil {
		s.logger.Error("Failed to list pricing rules", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to list pricing rules")
		return
	}
	respondJSON(w, http.StatusOK, rules)
}

func (s *Server) handleSetPricingRuleEnabled(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid pricing rule id")
		return
	}
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.PricingRules.SetPricingRuleEnabled(r.Context(), id, body.Enabled); err != nil {
		status := pricingRuleStatus(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("Failed to toggle pricing rule", zap.Int64("id", id), zap.Error(err))
			respondError(w, status, "failed to update pricing rule")
			return
		}
		respondError(w, status, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDisablePricingRulesExcept(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs []int64 `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.PricingRules.DisablePricingRulesExcept(r.Context(), body.IDs); err != nil {
		s.logger.Error("Failed to disable pricing rules", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to disable pricing rules")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListCarriers(w http.ResponseWriter, r *http.Request) {
	includeDeleted := r.URL.Query().Get("include_deleted") == "true"
	carriers, err := s.Carriers.ListCarriers(r.Context(), includeDeleted)
	if err != nil {
		s.logger.Error("Failed to list carriers", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to list carriers")
		return
	}
	respondJSON(w, http.StatusOK, carriers)
}

func (s *Server) handleSyncCarriers(w http.ResponseWriter, r *http.Request) {
	var feed []*repository.Carrier
	if err := json.NewDecoder(r.Body).Decode(&feed); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	if err := s.Carriers.SyncCarriers(ctx, feed); err != nil {
		s.logger.Error("Failed to sync carriers", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to sync carriers")
		return
	}
	if err := s.Strategies.Refresh(ctx); err != nil {
		s.logger.Warn("Carrier strategies were not refreshed", zap.Error(err))
	}
	respondJSON(w, http.StatusOK, map[string]int{"synced": len(feed)})
}

func (s *Server) handleSaveCarrierOptions(w http.ResponseWriter, r *http.Request) {
	var options repository.CarrierOptions
	if err := json.NewDecoder(r.Body).Decode(&options); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	options.CarrierID = mux.Vars(r)["carrierID"]
	if options.DefaultPrice.IsNegative() || options.MaxWeight < 0 {
		respondError(w, http.StatusUnprocessableEntity, "price and max weight must not be negative")
		return
	}

	if err := s.Carriers.SaveCarrierOptions(r.Context(), &options); err != nil {
		if errors.Is(err, storage.ErrCarrierNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		s.logger.Error("Failed to save carrier options", zap.String("carrier_id", options.CarrierID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save carrier options")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type orderNumbersRequest struct {
	OrderNumbers []string `json:"order_numbers" validate:"required,min=1,dive,required"`
	Format       string   `json:"format"`
	Offset       int      `json:"offset" validate:"gte=0"`
}

func (s *Server) decodeOrderNumbers(w http.ResponseWriter, r *http.Request) (*orderNumbersRequest, bool) {
	var req orderNumbersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if err := s.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return nil, false
	}
	return &req, true
}

func (s *Server) handleExportOrders(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeOrderNumbers(w, r)
	if !ok {
		return
	}

	result, err := s.Exporter.ExportOrders(r.Context(), req.OrderNumbers)
	if err != nil {
		s.logger.Error("Failed to export orders", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to export orders")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handlePrintLabels(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeOrderNumbers(w, r)
	if !ok {
		return
	}

	keys, err := s.Exporter.PrintLabels(r.Context(), req.OrderNumbers, req.Format, req.Offset)
	if err != nil {
		if errors.Is(err, export.ErrNoPackets) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.logger.Error("Failed to print labels", zap.Error(err))
		respondError(w, http.StatusBadGateway, "failed to print labels")
		return
	}
	respondJSON(w, http.StatusOK, map[string][]string{"labels": keys})
}

func (s *Server) handleDownloadLabel(w http.ResponseWriter, r *http.Request) {
	key := "labels/" + mux.Vars(r)["path"]
	data, err := s.Labels.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, objectstore.ErrObjectNotFound) {
			respondError(w, http.StatusNotFound, "label not found")
			return
		}
		s.logger.Error("Failed to read label", zap.String("key", key), zap.Error(err))
		respondError(w, http.StatusBadGateway, "failed to read label")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleCancelPacket(w http.ResponseWriter, r *http.Request) {
	orderNumber := mux.Vars(r)["orderNumber"]
	if err := s.Exporter.CancelPacket(r.Context(), orderNumber); err != nil {
		s.respondExportError(w, orderNumber, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePacketStatus(w http.ResponseWriter, r *http.Request) {
	orderNumber := mux.Vars(r)["orderNumber"]
	status, err := s.Exporter.RefreshStatus(r.Context(), orderNumber)
	if err != nil {
		s.respondExportError(w, orderNumber, err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

func (s *Server) respondExportError(w http.ResponseWriter, orderNumber string, err error) {
	var fault *packetapi.Fault
	switch {
	case errors.Is(err, storage.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, export.ErrNotExported):
		respondError(w, http.StatusConflict, err.Error())
	case errors.As(err, &fault):
		respondError(w, http.StatusUnprocessableEntity, fault.Error())
	default:
		s.logger.Error("Packet API call failed", zap.String("order_number", orderNumber), zap.Error(err))
		respondError(w, http.StatusBadGateway, "packet API call failed")
	}
}

func (s *Server) handleOrderLog(w http.ResponseWriter, r *http.Request) {
	orderNumber := mux.Vars(r)["orderNumber"]
	limit := defaultLogLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = v
	}

	entries, err := s.Orders.GetOrderLog(r.Context(), orderNumber, limit)
	if err != nil {
		s.logger.Error("Failed to load order log", zap.String("order_number", orderNumber), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load order log")
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

type customsRequest struct {
	Declaration repository.CustomsDeclaration        `json:"declaration"`
	Items       []*repository.CustomsDeclarationItem `json:"items"`
}

func (s *Server) handleSaveCustoms(w http.ResponseWriter, r *http.Request) {
	var req customsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Declaration.OrderNumber = mux.Vars(r)["orderNumber"]

	if err := s.Orders.SaveCustomsDeclaration(r.Context(), &req.Declaration, req.Items); err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidCustomsDeclaration):
			respondError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, storage.ErrOrderNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		default:
			s.logger.Error("Failed to save customs declaration", zap.Error(err))
			respondError(w, http.StatusInternalServerError, "failed to save customs declaration")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetFeatureFlag(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	name := mux.Vars(r)["name"]

	if err := s.FeatureFlags.Set(r.Context(), name, body.Enabled); err != nil {
		s.logger.Error("Failed to set feature flag", zap.String("flag", name), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to set feature flag")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
