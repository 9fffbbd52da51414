package gateway_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/garaga28/Librario/internal/gateway"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRazorpay_CreateOrder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "key", user)
		require.Equal(t, "secret", pass)

		var req struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
			Receipt  string `json:"receipt"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, int64(15000), req.Amount)
		require.Equal(t, "INR", req.Currency)

		_ = json.NewEncoder(w).Encode(map[string]string{"id": "order_test123"})
	}))
	defer srv.Close()

	gw := gateway.New(gateway.Config{
		BaseURL:   srv.URL,
		KeyID:     "key",
		KeySecret: "secret",
		Timeout:   time.Second,
	}, zap.NewExample())

	orderID, err := gw.CreateOrder(context.Background(), 15000, "INR", "rcpt-1")
	require.NoError(t, err)
	require.Equal(t, "order_test123", orderID)
}

func TestRazorpay_CreateOrder_error(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	gw := gateway.New(gateway.Config{BaseURL: srv.URL, Timeout: time.Second}, zap.NewExample())

	_, err := gw.CreateOrder(context.Background(), 100, "INR", "rcpt-2")
	require.Error(t, err)
}

func TestRazorpay_VerifySignature(t *testing.T) {
	t.Parallel()

	gw := gateway.New(gateway.Config{KeySecret: "secret"}, zap.NewExample())

	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte("order_1|pay_1"))
	good := hex.EncodeToString(mac.Sum(nil))

	require.True(t, gw.VerifySignature("order_1", "pay_1", good))
	require.False(t, gw.VerifySignature("order_1", "pay_1", "deadbeef"))
	require.False(t, gw.VerifySignature("order_2", "pay_1", good))
}
