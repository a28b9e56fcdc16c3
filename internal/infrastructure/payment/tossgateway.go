// Package payment implements the Toss Payments confirmation client.
package payment

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/coachfit-inc/coachfit/internal/application/checkout/paymentgateway"
	"github.com/coachfit-inc/coachfit/internal/shared/config"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
)

const (
	defaultBaseURL        = "https://api.tosspayments.com"
	defaultTimeout        = 10 * time.Second
	maxConfirmBodySize    = 64 << 10
	confirmPathFmt        = "/v1/payments/%s"
	contentTypeJSON       = "application/json"
	authorizationBasicFmt = "Basic %s"
)

type confirmRequestBody struct {
	OrderID string `json:"orderId"`
	Amount  int64  `json:"amount"`
}

// confirmResponseBody holds the subset of the Toss payment object the
// checkout flow reads.
type confirmResponseBody struct {
	Status  string `json:"status"`
	Method  string `json:"method"`
	OrderID string `json:"orderId"`
}

type tossErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TossGateway confirms payments against the Toss Payments v1 API using the
// merchant secret key as HTTP basic auth.
type TossGateway struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
	logger     logger.Interface
}

func NewTossGateway(cfg *config.TossConfig, logger logger.Interface) *TossGateway {
	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	// Toss basic auth is the secret key with an empty password.
	encoded := base64.StdEncoding.EncodeToString([]byte(cfg.SecretKey + ":"))

	return &TossGateway{
		baseURL:    baseURL,
		authHeader: fmt.Sprintf(authorizationBasicFmt, encoded),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

var _ paymentgateway.PaymentGateway = (*TossGateway)(nil)

// Confirm captures the payment identified by paymentKey. Non-2xx responses
// are returned as errors with the gateway's code and message when available.
func (g *TossGateway) Confirm(ctx context.Context, req paymentgateway.ConfirmRequest) (*paymentgateway.ConfirmResponse, error) {
	body, err := json.Marshal(confirmRequestBody{
		OrderID: req.OrderID,
		Amount:  req.Amount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal confirm request: %w", err)
	}

	url := g.baseURL + fmt.Sprintf(confirmPathFmt, req.PaymentKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create confirm request: %w", err)
	}
	httpReq.Header.Set("Authorization", g.authHeader)
	httpReq.Header.Set("Content-Type", contentTypeJSON)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("confirm request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody := io.LimitReader(resp.Body, maxConfirmBodySize)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var tossErr tossErrorBody
		if err := json.NewDecoder(respBody).Decode(&tossErr); err == nil && tossErr.Code != "" {
			g.logger.Warnw("toss confirm rejected",
				"status_code", resp.StatusCode, "code", tossErr.Code, "order_id", req.OrderID)
			return nil, fmt.Errorf("toss confirm failed: %s (%s)", tossErr.Code, tossErr.Message)
		}
		return nil, fmt.Errorf("toss confirm failed with status %d", resp.StatusCode)
	}

	var payment confirmResponseBody
	if err := json.NewDecoder(respBody).Decode(&payment); err != nil {
		return nil, fmt.Errorf("failed to decode confirm response: %w", err)
	}

	g.logger.Infow("toss confirm succeeded",
		"order_id", payment.OrderID, "status", payment.Status, "method", payment.Method)

	return &paymentgateway.ConfirmResponse{
		Status:  payment.Status,
		Method:  payment.Method,
		OrderID: payment.OrderID,
	}, nil
}
