package startpage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"
)

// DefaultTimeout bounds a single HTTP request
const DefaultTimeout = 30 * time.Second

// TransportConfig configures a Transport. Zero values pick the defaults;
// a negative Delay disables request spacing. Proxy and Timeout configure the
// client built by NewTransport and cannot be combined with HTTPClient.
type TransportConfig struct {
	Proxy      string
	Timeout    time.Duration
	Delay      time.Duration
	HTTPClient *http.Client
	Logger     logrus.FieldLogger
}

// Transport issues rate limited requests with browser-like headers and
// classifies the outcome into the package error types.
type Transport struct {
	httpClient *http.Client
	limiter    *RateLimiter
	log        logrus.FieldLogger
}

func NewTransport(cfg TransportConfig) (*Transport, error) {
	if cfg.HTTPClient != nil && (cfg.Proxy != "" || cfg.Timeout != 0) {
		return nil, &ConfigError{Field: "http_client", Message: "proxy and timeout must be configured on the supplied client"}
	}
	if cfg.Timeout < 0 {
		return nil, &ConfigError{Field: "timeout", Message: "must not be negative"}
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Delay == 0 {
		cfg.Delay = DefaultDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		base := http.DefaultTransport.(*http.Transport).Clone()
		if cfg.Proxy != "" {
			proxyURL, err := parseProxy(cfg.Proxy)
			if err != nil {
				return nil, err
			}
			base.Proxy = http.ProxyURL(proxyURL)
		}
		httpClient = &http.Client{Transport: base, Timeout: cfg.Timeout}
	}

	return &Transport{
		httpClient: httpClient,
		limiter:    NewRateLimiter(cfg.Delay),
		log:        cfg.Logger,
	}, nil
}

func parseProxy(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &ConfigError{Field: "proxy", Message: err.Error()}
	}
	switch u.Scheme {
	case "http", "https", "socks5":
	default:
		return nil, &ConfigError{Field: "proxy", Message: fmt.Sprintf("unsupported scheme %q", u.Scheme)}
	}
	if u.Host == "" {
		return nil, &ConfigError{Field: "proxy", Message: "missing host"}
	}
	return u, nil
}

// Get fetches rawURL and returns the decoded body. referer is optional.
func (t *Transport) Get(ctx context.Context, rawURL, referer string) (string, error) {
	return t.do(ctx, http.MethodGet, rawURL, nil, referer)
}

// PostForm submits form to rawURL and returns the decoded body.
func (t *Transport) PostForm(ctx context.Context, rawURL string, form url.Values, referer string) (string, error) {
	return t.do(ctx, http.MethodPost, rawURL, form, referer)
}

// Limiter exposes the gate shared by every request of this transport.
func (t *Transport) Limiter() *RateLimiter {
	return t.limiter
}

func (t *Transport) do(ctx context.Context, method, rawURL string, form url.Values, referer string) (string, error) {
	tk := t.limiter.claimTicket(ctx)
	if tk == nil {
		tk = t.limiter.reserve()
	}
	release, err := tk.wait(ctx)
	if err != nil {
		return "", &TransportError{Method: method, URL: rawURL, Err: err}
	}
	defer release()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return "", &TransportError{Method: method, URL: rawURL, Err: err}
	}
	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.log.WithFields(logrus.Fields{"method": method, "url": rawURL, "took": time.Since(start)}).
			WithError(err).Debug("[Startpage] request failed")
		return "", &TransportError{Method: method, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	fields := logrus.Fields{"method": method, "url": rawURL, "status": resp.StatusCode, "took": time.Since(start)}

	if resp.StatusCode == http.StatusTooManyRequests {
		t.log.WithFields(fields).Warn("[Startpage] rate limited")
		return "", &RateLimitError{
			HTTPError:  HTTPError{StatusCode: resp.StatusCode, Message: statusMessage(resp)},
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		t.log.WithFields(fields).Debug("[Startpage] unexpected status")
		return "", &HTTPError{StatusCode: resp.StatusCode, Message: statusMessage(resp)}
	}

	text, err := readBody(resp)
	if err != nil {
		return "", &TransportError{Method: method, URL: rawURL, Err: fmt.Errorf("read body: %w", err)}
	}
	t.log.WithFields(fields).WithField("bytes", len(text)).Debug("[Startpage] request completed")
	return text, nil
}

// readBody converts the body to UTF-8 using the declared or sniffed charset.
func readBody(resp *http.Response) (string, error) {
	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func statusMessage(resp *http.Response) string {
	msg := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return msg
}

func parseRetryAfter(v string) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
