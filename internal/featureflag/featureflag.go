// Package featureflag loads feature flags per request and carries them in the
// request context.
package featureflag

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/redisstore"
)

const (
	// CarDelivery enables the car delivery checkout option.
	CarDelivery = "car_delivery"
	// PickupPointValidation validates selected pickup points against the
	// widget API before they are saved.
	PickupPointValidation = "pickup_point_validation"
	// CustomsDeclaration sends stored customs declarations with exported packets.
	CustomsDeclaration = "customs_declaration"
)

const flagsKey = "packetery:feature_flags"

// Flags is an immutable set of flag values.
type Flags map[string]bool

func DefaultFlags() Flags {
	return Flags{
		CarDelivery:           false,
		PickupPointValidation: true,
		CustomsDeclaration:    true,
	}
}

type Store struct {
	kv       redisstore.KV
	defaults Flags
	logger   *zap.Logger
}

func NewStore(kv redisstore.KV, defaults Flags, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaults == nil {
		defaults = DefaultFlags()
	}
	return &Store{kv: kv, defaults: defaults, logger: logger}
}

// Load returns the defaults overridden by the flags stored in redis. When
// redis is unavailable the defaults are returned along with the error.
func (s *Store) Load(ctx context.Context) (Flags, error) {
	flags := make(Flags, len(s.defaults))
	for name, value := range s.defaults {
		flags[name] = value
	}

	stored, err := s.kv.HGetAll(ctx, flagsKey)
	if err != nil {
		return flags, fmt.Errorf("failed to load feature flags: %w", err)
	}
	for name, raw := range stored {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			s.logger.Warn("Ignoring malformed feature flag", zap.String("flag", name), zap.String("value", raw))
			continue
		}
		flags[name] = value
	}
	return flags, nil
}

func (s *Store) Set(ctx context.Context, name string, enabled bool) error {
	return s.kv.HSet(ctx, flagsKey, map[string]string{name: strconv.FormatBool(enabled)})
}

type contextKey struct{}

func WithFlags(ctx context.Context, flags Flags) context.Context {
	return context.WithValue(ctx, contextKey{}, flags)
}

func FromContext(ctx context.Context) Flags {
	flags, _ := ctx.Value(contextKey{}).(Flags)
	if flags == nil {
		return DefaultFlags()
	}
	return flags
}

// IsEnabled reports whether the flag is on for the request carried by ctx.
func IsEnabled(ctx context.Context, name string) bool {
	return FromContext(ctx)[name]
}
