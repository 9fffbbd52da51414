package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/garaga28/Librario/pkg/circuit_breaker"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PaymentGateway is the narrow contract the reconciler needs from the
// payment provider: order creation and signature verification.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (string, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type Config struct {
	BaseURL   string        `yaml:"baseUrl" envconfig:"GATEWAY_BASE_URL" default:"https://api.razorpay.com"`
	KeyID     string        `yaml:"keyId" envconfig:"GATEWAY_KEY_ID"`
	KeySecret string        `yaml:"keySecret" envconfig:"GATEWAY_KEY_SECRET"`
	Timeout   time.Duration `yaml:"timeout" envconfig:"GATEWAY_TIMEOUT" default:"30s"`
}

type razorpay struct {
	cfg    Config
	client *http.Client
	cb     circuit_breaker.CircuitBreaker
	log    *zap.Logger
}

func New(cfg Config, log *zap.Logger) PaymentGateway {
	return &razorpay{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		cb:     circuit_breaker.New(20, 10*time.Second, 0.5, 3),
		log:    log.Named("gateway"),
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

func (g *razorpay) CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (string, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:   amountMinorUnits,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return "", err
	}

	var orderID string
	err = g.cb.Call(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			g.cfg.BaseURL+"/v1/orders", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.SetBasicAuth(g.cfg.KeyID, g.cfg.KeySecret)

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("gateway order create: status %d", resp.StatusCode)
		}
		var out createOrderResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return err
		}
		orderID = out.ID
		return nil
	})
	if err != nil {
		g.log.Warn("CreateOrder", zap.Error(err))
		return "", errors.Wrap(err, "create order")
	}
	return orderID, nil
}

// VerifySignature checks the provider signature: HMAC-SHA256 over
// "orderID|paymentID" keyed with the API secret, hex encoded.
func (g *razorpay) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.cfg.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
