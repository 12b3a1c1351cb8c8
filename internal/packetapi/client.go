// Package packetapi is a client of the Packeta SOAP Packet API.
package packetapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/metrics"
)

const (
	DefaultEndpoint = "https://www.zasilkovna.cz/api/soap"

	soapEnvNS = "http://schemas.xmlsoap.org/soap/envelope/"
	apiNS     = "http://www.zasilkovna.cz/api/soap.wsdl"
)

var ErrUnexpectedResponse = errors.New("unexpected packet API response")

type Config struct {
	Endpoint    string
	APIPassword string
	Timeout     time.Duration
	// MaxRetries bounds retries of read-only operations on transport errors.
	MaxRetries uint64
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
	newBackOff func() backoff.BackOff
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 200 * time.Millisecond
			b.MaxElapsedTime = cfg.Timeout
			return b
		},
	}
}

func (c *Client) CreatePacket(ctx context.Context, attributes PacketAttributes) (*PacketIDDetail, error) {
	resp, err := call[createPacketResponse](ctx, c, "createPacket", false, createPacketRequest{
		APIPassword: c.cfg.APIPassword,
		Attributes:  attributes,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Result, nil
}

// PacketAttributesValid returns a *Fault describing the invalid attributes,
// or nil when the packet could be created.
func (c *Client) PacketAttributesValid(ctx context.Context, attributes PacketAttributes) error {
	_, err := call[emptyResponse](ctx, c, "packetAttributesValid", true, packetAttributesValidRequest{
		APIPassword: c.cfg.APIPassword,
		Attributes:  attributes,
	})
	return err
}

func (c *Client) CancelPacket(ctx context.Context, packetID string) error {
	_, err := call[emptyResponse](ctx, c, "cancelPacket", false, packetIDRequest{
		XMLName:     xml.Name{Local: "ns1:cancelPacket"},
		APIPassword: c.cfg.APIPassword,
		PacketID:    packetID,
	})
	return err
}

func (c *Client) PacketStatus(ctx context.Context, packetID string) (*CurrentStatus, error) {
	resp, err := call[packetStatusResponse](ctx, c, "packetStatus", true, packetIDRequest{
		XMLName:     xml.Name{Local: "ns1:packetStatus"},
		APIPassword: c.cfg.APIPassword,
		PacketID:    packetID,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Result, nil
}

func (c *Client) CreateShipment(ctx context.Context, packetIDList []string, customBarcode string) (*ShipmentIDDetail, error) {
	resp, err := call[createShipmentResponse](ctx, c, "createShipment", false, createShipmentRequest{
		APIPassword:   c.cfg.APIPassword,
		PacketIDs:     packetIDs{IDs: packetIDList},
		CustomBarcode: customBarcode,
	})
	if err != nil {
		return nil, err
	}
	return &resp.Result, nil
}

// BarcodePng returns the PNG image of a barcode.
func (c *Client) BarcodePng(ctx context.Context, barcode string) ([]byte, error) {
	resp, err := call[barcodePngResponse](ctx, c, "barcodePng", true, barcodePngRequest{
		APIPassword: c.cfg.APIPassword,
		Barcode:     barcode,
	})
	if err != nil {
		return nil, err
	}
	return decodeBinary("barcodePng", resp.Result)
}

// PacketsLabelsPdf returns one PDF with the labels of all packets. offset
// skips label positions on the first page.
func (c *Client) PacketsLabelsPdf(ctx context.Context, packetIDList []string, format string, offset int) ([]byte, error) {
	resp, err := call[packetsLabelsPdfResponse](ctx, c, "packetsLabelsPdf", true, packetsLabelsPdfRequest{
		APIPassword: c.cfg.APIPassword,
		PacketIDs:   packetIDs{IDs: packetIDList},
		Format:      format,
		Offset:      offset,
	})
	if err != nil {
		return nil, err
	}
	return decodeBinary("packetsLabelsPdf", resp.Result)
}

func decodeBinary(operation, encoded string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s result: %w", operation, err)
	}
	return data, nil
}

type requestEnvelope struct {
	XMLName xml.Name `xml:"SOAP-ENV:Envelope"`
	SoapNS  string   `xml:"xmlns:SOAP-ENV,attr"`
	APINS   string   `xml:"xmlns:ns1,attr"`
	Body    struct {
		Content interface{}
	} `xml:"SOAP-ENV:Body"`
}

type responseEnvelope[T any] struct {
	Body struct {
		Fault    *soapFault `xml:"Fault"`
		Response *T         `xml:",any"`
	} `xml:"Body"`
}

// call posts one SOAP operation. Read-only operations are retried on
// transport errors and server errors that carry no SOAP fault.
func call[T any](ctx context.Context, c *Client, operation string, idempotent bool, request interface{}) (*T, error) {
	env := requestEnvelope{SoapNS: soapEnvNS, APINS: apiNS}
	env.Body.Content = request
	payload, err := xml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", operation, err)
	}
	payload = append([]byte(xml.Header), payload...)

	var result *T
	attempt := func() error {
		body, status, err := c.post(ctx, operation, payload)
		if err != nil {
			return err
		}

		var resp responseEnvelope[T]
		if err := xml.Unmarshal(body, &resp); err != nil {
			if status >= http.StatusInternalServerError {
				return fmt.Errorf("%w: %s returned status %d", ErrUnexpectedResponse, operation, status)
			}
			return backoff.Permanent(fmt.Errorf("failed to decode %s response: %w", operation, err))
		}
		if resp.Body.Fault != nil {
			return backoff.Permanent(resp.Body.Fault.toFault())
		}
		if status != http.StatusOK {
			err := fmt.Errorf("%w: %s returned status %d", ErrUnexpectedResponse, operation, status)
			if status >= http.StatusInternalServerError {
				return err
			}
			return backoff.Permanent(err)
		}

		result = resp.Body.Response
		if result == nil {
			result = new(T)
		}
		return nil
	}

	var policy backoff.BackOff = &backoff.StopBackOff{}
	if idempotent && c.cfg.MaxRetries > 0 {
		policy = backoff.WithMaxRetries(c.newBackOff(), c.cfg.MaxRetries)
	}

	start := time.Now()
	err = backoff.RetryNotify(attempt, backoff.WithContext(policy, ctx), func(err error, wait time.Duration) {
		c.logger.Warn("Retrying packet API call",
			zap.String("operation", operation), zap.Duration("wait", wait), zap.Error(err))
	})
	metrics.PacketAPIRequestDuration.WithLabelValues(operation, callStatus(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		c.logger.Info("Packet API call failed", zap.String("operation", operation), zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (c *Client) post(ctx context.Context, operation string, payload []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", apiNS+"#"+operation)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s request failed: %w", operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read %s response: %w", operation, err)
	}
	return body, resp.StatusCode, nil
}

func callStatus(err error) string {
	var fault *Fault
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &fault):
		return "fault"
	default:
		return "error"
	}
}
