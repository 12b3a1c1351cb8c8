package carrier

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
)

var (
	ErrNotPacketeryMethod = errors.New("shipping method is not a packetery method")
	ErrUnknownCarrier     = errors.New("unknown carrier")
)

// CarrierLister lists the carriers known from the carrier feed.
type CarrierLister interface {
	GetAll(ctx context.Context, includeDeleted bool) ([]*repository.Carrier, error)
}

// DynamicCode is the carrier code of a partner carrier.
func DynamicCode(carrierID string) string {
	return PacketaCode + "-" + carrierID
}

// MethodCode builds the shipping method code stored with shop orders.
func MethodCode(carrierCode string, method Method) string {
	return carrierCode + "_" + string(method)
}

// ParseMethodCode splits a shipping method code into the carrier code and the
// delivery method suffix.
func ParseMethodCode(code string) (string, Method, error) {
	idx := strings.LastIndex(code, "_")
	if idx <= 0 || idx == len(code)-1 {
		return "", "", ErrNotPacketeryMethod
	}
	carrierCode, method := code[:idx], Method(code[idx+1:])
	if carrierCode != PacketaCode && !strings.HasPrefix(carrierCode, PacketaCode+"-") {
		return "", "", ErrNotPacketeryMethod
	}
	if !method.Valid() {
		return "", "", fmt.Errorf("%w: unknown method %q", ErrNotPacketeryMethod, method)
	}
	return carrierCode, method, nil
}

// CarrierIDFromCode returns the carrier id encoded in a carrier code.
func CarrierIDFromCode(carrierCode string) string {
	if carrierCode == PacketaCode {
		return PacketaID
	}
	return strings.TrimPrefix(carrierCode, PacketaCode+"-")
}

type Registry struct {
	lister   CarrierLister
	packeta  *PacketaStrategy
	mu       sync.RWMutex
	external map[string]*ExternalStrategy
}

func NewRegistry(lister CarrierLister) *Registry {
	return &Registry{
		lister:   lister,
		packeta:  NewPacketaStrategy(),
		external: make(map[string]*ExternalStrategy),
	}
}

// Refresh rebuilds the partner carrier strategies from the carrier feed.
func (r *Registry) Refresh(ctx context.Context) error {
	carriers, err := r.lister.GetAll(ctx, false)
	if err != nil {
		return fmt.Errorf("failed to load carriers: %w", err)
	}

	external := make(map[string]*ExternalStrategy, len(carriers))
	for _, c := range carriers {
		if c.ID == PacketaID {
			continue
		}
		s := NewExternalStrategy(c)
		external[s.Code()] = s
	}

	r.mu.Lock()
	r.external = external
	r.mu.Unlock()
	return nil
}

func (r *Registry) ForCode(code string) (Strategy, error) {
	if code == PacketaCode {
		return r.packeta, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.external[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCarrier, code)
	}
	return s, nil
}

// Resolve returns the strategy and delivery method of a shipping method code.
func (r *Registry) Resolve(methodCode string) (Strategy, Method, error) {
	carrierCode, method, err := ParseMethodCode(methodCode)
	if err != nil {
		return nil, "", err
	}
	s, err := r.ForCode(carrierCode)
	if err != nil {
		return nil, "", err
	}
	return s, method, nil
}

// ForCountry returns the strategies delivering to country, Packeta first.
func (r *Registry) ForCountry(ctx context.Context, country string) ([]Strategy, error) {
	var result []Strategy
	for _, s := range r.All() {
		countries, err := s.AvailableCountries(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range countries {
			if strings.EqualFold(c, country) {
				result = append(result, s)
				break
			}
		}
	}
	return result, nil
}

func (r *Registry) All() []Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.external))
	for code := range r.external {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	strategies := make([]Strategy, 0, len(codes)+1)
	strategies = append(strategies, r.packeta)
	for _, code := range codes {
		strategies = append(strategies, r.external[code])
	}
	return strategies
}
