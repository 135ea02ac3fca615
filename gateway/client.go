// Package gateway implements the HTTP client for the payment gateway. Every
// call is scoped to a session token and most return a full session state
// snapshot.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"

	"github.com/monext/checkout.sdk.go/config"
	"github.com/monext/checkout.sdk.go/models"
)

// SDKVersion is reported to the gateway in the X-Widget-SDK header and the
// remote log payloads.
const SDKVersion = "1.0.0"

const (
	servicesPath    = "/services"
	applicationJSON = "application/json"
)

// Client is the gateway surface the rest of the SDK depends on. Implemented
// by HTTPClient; mocked in tests.
type Client interface {
	FetchCurrentState(ctx context.Context, token string) (*models.SessionState, error)
	IsActiveWaitingDone(ctx context.Context, token, cardCode string) (bool, error)
	SubmitPayment(ctx context.Context, token string, req *models.PaymentRequest) (*models.SessionState, error)
	SubmitSecuredPayment(ctx context.Context, token string, req *models.SecuredPaymentRequest) (*models.SessionState, error)
	SubmitWalletPayment(ctx context.Context, token string, req *models.WalletPaymentRequest) (*models.SessionState, error)
	SubmitAuthenticationResponse(ctx context.Context, token string, res *models.AuthenticationResponse) (*models.SessionState, error)
	FetchAvailableCardNetworks(ctx context.Context, token string, req *models.AvailableCardNetworksRequest) (*models.AvailableCardNetworksResponse, error)
	FetchDirectoryServerSchemes(ctx context.Context, token string) ([]models.RemoteScheme, error)
	ReturnURL(token string) string
	ReportError(ctx context.Context, token, loggerName, message string)
}

// HTTPClient talks to the gateway over HTTPS.
type HTTPClient struct {
	cfg        *config.Config
	httpClient *http.Client
	now        func() time.Time
}

// NewHTTPClient returns a gateway client for the configured environment.
func NewHTTPClient(cfg *config.Config) *HTTPClient {
	return &HTTPClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		now:        time.Now,
	}
}

// hostAndPath splits the configured host into a hostname and an optional
// leading path segment. Custom environments may carry a path, e.g.
// "gateway.example.com/payline-widget".
func (c *HTTPClient) hostAndPath() (string, string) {
	host := c.cfg.Host()
	if i := strings.Index(host, "/"); i >= 0 {
		return host[:i], "/" + strings.Trim(host[i:], "/")
	}
	return host, ""
}

func (c *HTTPClient) serviceURL(endpoint string) string {
	host, extraPath := c.hostAndPath()
	return "https://" + host + extraPath + servicesPath + endpoint
}

// ReturnURL is the merchant return URL embedded in every payment request.
func (c *HTTPClient) ReturnURL(token string) string {
	host, extraPath := c.hostAndPath()
	return "https://" + host + extraPath + "/v2?token=" + url.QueryEscape(token)
}

// FetchCurrentState retrieves the authoritative session state for a token.
func (c *HTTPClient) FetchCurrentState(ctx context.Context, token string) (*models.SessionState, error) {
	var state models.SessionState
	endpoint := fmt.Sprintf("/token/%s/state/current", url.PathEscape(token))
	if err := c.doJSON(ctx, http.MethodGet, endpoint, token, nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// IsActiveWaitingDone asks whether the pending partner action has completed.
// The timestamp query defeats intermediate caches.
func (c *HTTPClient) IsActiveWaitingDone(ctx context.Context, token, cardCode string) (bool, error) {
	var done bool
	endpoint := fmt.Sprintf("/token/%s/cardCode/%s/activewaiting/isDone?timestamp=%d",
		url.PathEscape(token), url.PathEscape(cardCode), c.now().Unix())
	if err := c.doJSON(ctx, http.MethodGet, endpoint, token, nil, &done); err != nil {
		return false, err
	}
	return done, nil
}

// SubmitPayment posts a standard payment request.
func (c *HTTPClient) SubmitPayment(ctx context.Context, token string, req *models.PaymentRequest) (*models.SessionState, error) {
	return c.postForState(ctx, token, "/paymentRequest", req)
}

// SubmitSecuredPayment posts a secured payment request carrying sensitive
// card data and a device fingerprint.
func (c *HTTPClient) SubmitSecuredPayment(ctx context.Context, token string, req *models.SecuredPaymentRequest) (*models.SessionState, error) {
	return c.postForState(ctx, token, "/securedPaymentRequest", req)
}

// SubmitWalletPayment posts a stored-wallet payment request.
func (c *HTTPClient) SubmitWalletPayment(ctx context.Context, token string, req *models.WalletPaymentRequest) (*models.SessionState, error) {
	return c.postForState(ctx, token, "/walletPaymentRequest", req)
}

// SubmitAuthenticationResponse posts the final 3DS challenge outcome.
func (c *HTTPClient) SubmitAuthenticationResponse(ctx context.Context, token string, res *models.AuthenticationResponse) (*models.SessionState, error) {
	return c.postForState(ctx, token, "/SdkPaymentRequest", res)
}

// FetchAvailableCardNetworks resolves the networks a card prefix can route
// through, for co-badged card selection.
func (c *HTTPClient) FetchAvailableCardNetworks(ctx context.Context, token string, req *models.AvailableCardNetworksRequest) (*models.AvailableCardNetworksResponse, error) {
	var res models.AvailableCardNetworksResponse
	endpoint := fmt.Sprintf("/token/%s/availablecardnetworks", url.PathEscape(token))
	if err := c.doJSON(ctx, http.MethodPost, endpoint, token, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// FetchDirectoryServerSchemes retrieves the directory-server key list used
// for sandbox 3DS scheme resolution.
func (c *HTTPClient) FetchDirectoryServerSchemes(ctx context.Context, token string) ([]models.RemoteScheme, error) {
	var res models.DirectoryServerSdkKeyListResponse
	endpoint := fmt.Sprintf("/token/%s/directoryServerSdkKeys", url.PathEscape(token))
	if err := c.doJSON(ctx, http.MethodGet, endpoint, token, nil, &res); err != nil {
		return nil, err
	}
	return res.DirectoryServerSdkKeyList, nil
}

func (c *HTTPClient) postForState(ctx context.Context, token, suffix string, body interface{}) (*models.SessionState, error) {
	var state models.SessionState
	endpoint := fmt.Sprintf("/token/%s%s", url.PathEscape(token), suffix)
	if err := c.doJSON(ctx, http.MethodPost, endpoint, token, body, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, rawURL string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	host, _ := c.hostAndPath()
	req.Header.Set("Content-Type", applicationJSON)
	req.Header.Set("Accept", applicationJSON)
	req.Header.Set("Accept-Language", c.cfg.Locale)
	req.Header.Set("Origin", host)
	req.Header.Set("X-Widget-SDK", "GO "+SDKVersion)
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, endpoint, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshalling request body: [%v]", err)
		}
		reader = bytes.NewReader(encoded)
	}

	rawURL := c.serviceURL(endpoint)
	req, err := c.newRequest(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("error building request: [%v]", err)
	}

	log.TraceC(token, "sending request to gateway", log.Data{"method": method, "path": endpoint})

	res, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		log.ErrorC(token, fmt.Errorf("gateway returned status [%v]", res.StatusCode),
			log.Data{"path": endpoint, "status": res.StatusCode})
		return &StatusError{StatusCode: res.StatusCode, Body: data}
	}

	if err = json.Unmarshal(data, out); err != nil {
		log.ErrorC(token, fmt.Errorf("error decoding gateway response: [%v]", err), log.Data{"path": endpoint})
		c.ReportError(ctx, token, "gateway", err.Error())
		return &DecodingError{Err: err}
	}

	return nil
}

// logPayload is the remote log line shape expected by the /log endpoint.
type logPayload struct {
	Logger    string `json:"logger"`
	Timestamp int64  `json:"timestamp"`
	Level     string `json:"level"`
	URL       string `json:"url"`
	Message   string `json:"message"`
	Token     string `json:"token"`
}

// ReportError ships an error line to the gateway's remote log. Failures are
// logged locally and swallowed; remote logging never affects the checkout.
func (c *HTTPClient) ReportError(ctx context.Context, token, loggerName, message string) {
	payload := logPayload{
		Logger:    "SDK GO - " + SDKVersion,
		Timestamp: c.now().UnixMilli(),
		Level:     "ERROR",
		Message:   loggerName + " - " + message,
		Token:     token,
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		log.ErrorC(token, fmt.Errorf("error marshalling remote log payload: [%v]", err))
		return
	}

	// The log endpoint expects a form-encoded JSON array, one line per entry.
	form := url.Values{}
	form.Set("data", "["+string(encoded)+"]")
	form.Set("layout", "JsonLayout")

	host, extraPath := c.hostAndPath()
	rawURL := "https://" + host + extraPath + "/log"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		log.ErrorC(token, fmt.Errorf("error building remote log request: [%v]", err))
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", applicationJSON)
	req.Header.Set("Accept-Language", c.cfg.Locale)
	req.Header.Set("Origin", host)
	req.Header.Set("X-Widget-SDK", "GO "+SDKVersion)

	res, err := c.httpClient.Do(req)
	if err != nil {
		log.ErrorC(token, fmt.Errorf("error shipping remote log: [%v]", err))
		return
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)
}
