package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/redisstore"
)

// DefaultSessionTTL is how long checkout selections are kept before the order
// is placed.
const DefaultSessionTTL = 2 * time.Hour

const sessionKeyPrefix = "packetery:checkout:"

// PickupPoint is a pickup point selected in the widget.
type PickupPoint struct {
	MethodCode           string `json:"method_code"`
	ID                   string `json:"id" validate:"required"`
	Name                 string `json:"name"`
	City                 string `json:"city"`
	Zip                  string `json:"zip"`
	Street               string `json:"street"`
	URL                  string `json:"url"`
	CarrierID            string `json:"carrier_id"`
	CarrierPickupPointID string `json:"carrier_pickup_point_id"`
}

// IsCarrierPoint reports whether the point belongs to a partner carrier.
func (p PickupPoint) IsCarrierPoint() bool {
	return p.CarrierID != "" && p.CarrierPickupPointID != ""
}

// ValidatedAddress is an address confirmed by the address widget.
type ValidatedAddress struct {
	MethodCode  string `json:"method_code"`
	Street      string `json:"street" validate:"required"`
	HouseNumber string `json:"house_number"`
	City        string `json:"city" validate:"required"`
	Zip         string `json:"zip" validate:"required"`
	Country     string `json:"country" validate:"required,len=2"`
	County      string `json:"county"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
}

// CarDelivery is a car delivery slot selected at checkout.
type CarDelivery struct {
	MethodCode           string `json:"method_code"`
	ID                   string `json:"id" validate:"required"`
	Street               string `json:"street"`
	City                 string `json:"city"`
	Zip                  string `json:"zip"`
	Country              string `json:"country"`
	ExpectedDeliveryFrom string `json:"expected_delivery_from"`
	ExpectedDeliveryTo   string `json:"expected_delivery_to"`
}

// Session holds the selections a customer made before placing the order.
type Session struct {
	PickupPoint *PickupPoint      `json:"pickup_point,omitempty"`
	Address     *ValidatedAddress `json:"address,omitempty"`
	CarDelivery *CarDelivery      `json:"car_delivery,omitempty"`
}

// PickupPointFor returns the saved pickup point if it was selected for
// methodCode.
func (s *Session) PickupPointFor(methodCode string) *PickupPoint {
	if s == nil || s.PickupPoint == nil || s.PickupPoint.MethodCode != methodCode {
		return nil
	}
	return s.PickupPoint
}

func (s *Session) AddressFor(methodCode string) *ValidatedAddress {
	if s == nil || s.Address == nil || s.Address.MethodCode != methodCode {
		return nil
	}
	return s.Address
}

func (s *Session) CarDeliveryFor(methodCode string) *CarDelivery {
	if s == nil || s.CarDelivery == nil || s.CarDelivery.MethodCode != methodCode {
		return nil
	}
	return s.CarDelivery
}

// SessionStore keeps checkout sessions in redis.
type SessionStore struct {
	kv  redisstore.KV
	ttl time.Duration
}

func NewSessionStore(kv redisstore.KV, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{kv: kv, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// Load returns the session, or an empty one if nothing was saved yet.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (*Session, error) {
	raw, err := s.kv.Get(ctx, sessionKey(sessionID))
	if err != nil {
		if errors.Is(err, redisstore.ErrKeyNotFound) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("failed to load checkout session: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to decode checkout session: %w", err)
	}
	return &session, nil
}

func (s *SessionStore) SavePickupPoint(ctx context.Context, sessionID string, point PickupPoint) error {
	return s.update(ctx, sessionID, func(session *Session) {
		session.PickupPoint = &point
	})
}

func (s *SessionStore) SaveValidatedAddress(ctx context.Context, sessionID string, addr ValidatedAddress) error {
	return s.update(ctx, sessionID, func(session *Session) {
		session.Address = &addr
	})
}

func (s *SessionStore) SaveCarDelivery(ctx context.Context, sessionID string, details CarDelivery) error {
	return s.update(ctx, sessionID, func(session *Session) {
		session.CarDelivery = &details
	})
}

// Remove drops every selection of the session.
func (s *SessionStore) Remove(ctx context.Context, sessionID string) error {
	if err := s.kv.Del(ctx, sessionKey(sessionID)); err != nil {
		return fmt.Errorf("failed to remove checkout session: %w", err)
	}
	return nil
}

func (s *SessionStore) update(ctx context.Context, sessionID string, apply func(*Session)) error {
	session, err := s.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	apply(session)

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode checkout session: %w", err)
	}
	if err := s.kv.Set(ctx, sessionKey(sessionID), string(data), s.ttl); err != nil {
		return fmt.Errorf("failed to save checkout session: %w", err)
	}
	return nil
}
