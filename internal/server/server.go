//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/checkout"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/events"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/export"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/featureflag"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/packetapi"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/storage"
)

type PricingRules interface {
	SavePricingRule(ctx context.Context, rule storage.PricingRule) (int64, error)
	FindPricingRules(ctx context.Context, country *string, enabled *bool) ([]storage.PricingRule, error)
	SetPricingRuleEnabled(ctx context.Context, id int64, enabled bool) error
	DisablePricingRulesExcept(ctx context.Context, ids []int64) error
}

type Orders interface {
	GetOrder(ctx context.Context, orderNumber string) (*repository.Order, error)
	UpdateOrderDetails(ctx context.Context, orderNumber string, details repository.OrderDetails) error
	GetOrderLog(ctx context.Context, orderNumber string, limit int) ([]*repository.LogEntry, error)
	SaveCustomsDeclaration(ctx context.Context, declaration *repository.CustomsDeclaration, items []*repository.CustomsDeclarationItem) error
}

type Carriers interface {
	ListCarriers(ctx context.Context, includeDeleted bool) ([]*repository.Carrier, error)
	SyncCarriers(ctx context.Context, feed []*repository.Carrier) error
	SaveCarrierOptions(ctx context.Context, options *repository.CarrierOptions) error
	CarrierConfig(ctx context.Context, strategy carrier.Strategy, storeID string) (*carrier.Config, error)
}

type Strategies interface {
	All() []carrier.Strategy
	Refresh(ctx context.Context) error
}

type Checkout interface {
	AvailableRates(ctx context.Context, req checkout.RatesRequest) ([]pricing.RateResult, error)
	SavePickupPoint(ctx context.Context, sessionID, country string, weight float64, point checkout.PickupPoint) error
	SaveValidatedAddress(ctx context.Context, sessionID string, addr checkout.ValidatedAddress) error
	SaveCarDelivery(ctx context.Context, sessionID string, details checkout.CarDelivery) error
	RemoveSavedData(ctx context.Context, sessionID string) error
}

type Dispatcher interface {
	Dispatch(ctx context.Context, event events.Event) error
}

type Exporter interface {
	ExportOrders(ctx context.Context, orderNumbers []string) (*export.Result, error)
	PrintLabels(ctx context.Context, orderNumbers []string, format string, offset int) ([]string, error)
	CancelPacket(ctx context.Context, orderNumber string) error
	RefreshStatus(ctx context.Context, orderNumber string) (*packetapi.CurrentStatus, error)
}

type Labels interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

type RatesConfig interface {
	Load(ctx context.Context, storeID string) (pricing.RatesTable, error)
	Save(ctx context.Context, storeID string, table pricing.RatesTable) error
}

type FeatureFlags interface {
	Load(ctx context.Context) (featureflag.Flags, error)
	Set(ctx context.Context, name string, enabled bool) error
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

// Deps are the use cases served over HTTP.
type Deps struct {
	PricingRules PricingRules
	Orders       Orders
	Carriers     Carriers
	Strategies   Strategies
	Checkout     Checkout
	Dispatcher   Dispatcher
	Exporter     Exporter
	Labels       Labels
	RatesConfig  RatesConfig
	FeatureFlags FeatureFlags
	Users        UserRepo
	Audit        AuditSink
}

type Config struct {
	CheckoutRate   rate.Limit
	CheckoutBurst  int
	AuditWorkers   int
	AuditBatchSize int
	AuditTimeout   time.Duration
}

func DefaultConfig() Config {
	return Config{
		CheckoutRate:   rate.Limit(5),
		CheckoutBurst:  10,
		AuditWorkers:   2,
		AuditBatchSize: 5,
		AuditTimeout:   500 * time.Millisecond,
	}
}

type Server struct {
	Deps
	server       *http.Server
	validate     *validator.Validate
	limiter      *ipRateLimiter
	logger       *zap.Logger
	AuditManager *AuditManager
}

func New(deps Deps, cfg Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	audit := NewAuditManager(cfg.AuditWorkers, cfg.AuditBatchSize, cfg.AuditTimeout, logger)
	if deps.Audit != nil {
		audit.SetSink(deps.Audit)
	}
	return &Server{
		Deps:         deps,
		validate:     validator.New(),
		limiter:      newIPRateLimiter(cfg.CheckoutRate, cfg.CheckoutBurst, 3*time.Minute),
		logger:       logger,
		AuditManager: audit,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.setupRoutes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("Server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")

	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return err
		}
	}
	s.AuditManager.Shutdown(ctx)
	s.logger.Info("Server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	r := mux.NewRouter()
	r.Use(s.featureFlagMiddleware)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	order := r.PathPrefix("/packeta/internal/order").Subrouter()
	order.Use(s.basicAuthMiddleware, s.auditLogMiddleware)
	order.HandleFunc("/save-modal", s.handleSaveOrderModal).Methods(http.MethodPost).Name("saveOrderModal")

	internal := r.PathPrefix("/packeta/internal").Subrouter()
	internal.Use(s.rateLimitMiddleware)
	internal.HandleFunc("/checkout/save-selected-pickup-point", s.handleSavePickupPoint).Methods(http.MethodPost).Name("savePickupPoint")
	internal.HandleFunc("/checkout/save-validated-address", s.handleSaveValidatedAddress).Methods(http.MethodPost).Name("saveValidatedAddress")
	internal.HandleFunc("/checkout/save-car-delivery-details", s.handleSaveCarDelivery).Methods(http.MethodPost).Name("saveCarDelivery")
	internal.HandleFunc("/checkout/remove-saved-data", s.handleRemoveSavedData).Methods(http.MethodPost).Name("removeSavedData")

	legacy := r.PathPrefix("/packetery/config").Subrouter()
	legacy.Use(s.basicAuthMiddleware)
	legacy.HandleFunc("/storeconfig", s.handleStoreConfig).Methods(http.MethodPost).Name("storeConfig")
	legacy.HandleFunc("/shippingratesconfig", s.handleShippingRatesConfig).Methods(http.MethodPost).Name("shippingRatesConfig")

	shop := r.NewRoute().Subrouter()
	shop.Use(s.rateLimitMiddleware)
	shop.HandleFunc("/checkout/rates", s.handleRates).Methods(http.MethodPost).Name("rates")
	shop.HandleFunc("/orders/placed", s.handleOrderPlaced).Methods(http.MethodPost).Name("orderPlaced")
	shop.HandleFunc("/orders/{orderNumber}/address", s.handleAddressChanged).Methods(http.MethodPost).Name("addressChanged")

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(s.basicAuthMiddleware, s.auditLogMiddleware)
	admin.HandleFunc("/pricing-rules", s.handleSavePricingRule).Methods(http.MethodPost).Name("savePricingRule")
	admin.HandleFunc("/pricing-rules", s.handleListPricingRules).Methods(http.MethodGet).Name("listPricingRules")
	admin.HandleFunc("/pricing-rules/disable-except", s.handleDisablePricingRulesExcept).Methods(http.MethodPost).Name("disablePricingRulesExcept")
	admin.HandleFunc("/pricing-rules/{id:[0-9]+}/enabled", s.handleSetPricingRuleEnabled).Methods(http.MethodPost).Name("setPricingRuleEnabled")
	admin.HandleFunc("/carriers", s.handleListCarriers).Methods(http.MethodGet).Name("listCarriers")
	admin.HandleFunc("/carriers/sync", s.handleSyncCarriers).Methods(http.MethodPost).Name("syncCarriers")
	admin.HandleFunc("/carriers/{carrierID}/options", s.handleSaveCarrierOptions).Methods(http.MethodPut).Name("saveCarrierOptions")
	admin.HandleFunc("/orders/export", s.handleExportOrders).Methods(http.MethodPost).Name("exportOrders")
	admin.HandleFunc("/orders/labels", s.handlePrintLabels).Methods(http.MethodPost).Name("printLabels")
	admin.HandleFunc("/labels/{path:.+\\.pdf}", s.handleDownloadLabel).Methods(http.MethodGet).Name("downloadLabel")
	admin.HandleFunc("/orders/{orderNumber}/cancel", s.handleCancelPacket).Methods(http.MethodPost).Name("cancelPacket")
	admin.HandleFunc("/orders/{orderNumber}/status", s.handlePacketStatus).Methods(http.MethodGet).Name("packetStatus")
	admin.HandleFunc("/orders/{orderNumber}/log", s.handleOrderLog).Methods(http.MethodGet).Name("orderLog")
	admin.HandleFunc("/orders/{orderNumber}/customs", s.handleSaveCustoms).Methods(http.MethodPut).Name("saveCustoms")
	admin.HandleFunc("/feature-flags/{name}", s.handleSetFeatureFlag).Methods(http.MethodPut).Name("setFeatureFlag")

	return r
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
