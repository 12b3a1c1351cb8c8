package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/pricing"
)

// legacyResponse is the envelope of the store configuration endpoints.
type legacyResponse struct {
	Success bool        `json:"success"`
	Value   interface{} `json:"value"`
}

type storeCarrierConfig struct {
	Code    string                 `json:"code"`
	Config  *carrier.Config        `json:"config"`
	Methods []carrier.MethodOption `json:"methods"`
}

func (s *Server) handleStoreConfig(w http.ResponseWriter, r *http.Request) {
	form, err := parseForm(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, legacyResponse{Value: err.Error()})
		return
	}
	storeID := form.str("store_id")
	ctx := r.Context()

	strategies := s.Strategies.All()
	configs := make([]storeCarrierConfig, 0, len(strategies))
	for _, strategy := range strategies {
		cfg, err := s.Carriers.CarrierConfig(ctx, strategy, storeID)
		if err != nil {
			s.logger.Warn("Skipping carrier without configuration",
				zap.String("carrier", strategy.Code()), zap.Error(err))
			continue
		}
		configs = append(configs, storeCarrierConfig{
			Code:    strategy.Code(),
			Config:  cfg,
			Methods: strategy.MethodSelect(),
		})
	}

	respondJSON(w, http.StatusOK, legacyResponse{Success: true, Value: configs})
}

// handleShippingRatesConfig returns the store's rates table, replacing it
// first when a new table is posted in the value field.
func (s *Server) handleShippingRatesConfig(w http.ResponseWriter, r *http.Request) {
	form, err := parseForm(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, legacyResponse{Value: err.Error()})
		return
	}
	storeID := form.str("store_id")
	ctx := r.Context()

	if raw := form.str("value"); raw != "" {
		var table pricing.RatesTable
		if err := json.Unmarshal([]byte(raw), &table); err != nil {
			respondJSON(w, http.StatusOK, legacyResponse{Value: "value is not a valid rates table"})
			return
		}
		if err := s.RatesConfig.Save(ctx, storeID, table); err != nil {
			if errors.Is(err, pricing.ErrInvalidRange) {
				respondJSON(w, http.StatusOK, legacyResponse{Value: err.Error()})
				return
			}
			s.logger.Error("Failed to save shipping rates", zap.String("store_id", storeID), zap.Error(err))
			respondJSON(w, http.StatusInternalServerError, legacyResponse{Value: "failed to save shipping rates"})
			return
		}
	}

	table, err := s.RatesConfig.Load(ctx, storeID)
	if err != nil {
		s.logger.Error("Failed to load shipping rates", zap.String("store_id", storeID), zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, legacyResponse{Value: "failed to load shipping rates"})
		return
	}
	respondJSON(w, http.StatusOK, legacyResponse{Success: true, Value: table})
}
