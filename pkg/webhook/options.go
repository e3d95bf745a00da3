package webhook

import (
	"net/http"
	"time"
)

// DeliveryResult describes one delivery attempt.
type DeliveryResult struct {
	Success    bool
	StatusCode int
	Attempt    int
	Duration   time.Duration
	Error      error
}

// DeliveryHook is called after each delivery attempt
type DeliveryHook func(result DeliveryResult)

type sendOptions struct {
	timeout         time.Duration
	headers         map[string]string
	httpClient      *http.Client
	maxRetries      int
	retryInterval   time.Duration
	signatureSecret string
	onDelivery      DeliveryHook
}

// defaultSendOptions makes a single attempt with a 10s timeout.
func defaultSendOptions() *sendOptions {
	return &sendOptions{
		timeout:       10 * time.Second,
		headers:       make(map[string]string),
		retryInterval: time.Second,
	}
}

type SendOption func(*sendOptions)

// WithTimeout bounds each attempt. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) SendOption {
	return func(o *sendOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

func WithHeader(key, value string) SendOption {
	return func(o *sendOptions) {
		if key != "" && value != "" {
			o.headers[key] = value
		}
	}
}

// WithRetry enables up to attempts extra deliveries spaced by interval.
// Permanent 4xx failures are never retried.
func WithRetry(attempts int, interval time.Duration) SendOption {
	return func(o *sendOptions) {
		if attempts >= 0 {
			o.maxRetries = attempts
		}
		if interval > 0 {
			o.retryInterval = interval
		}
	}
}

// WithSignature signs the body with HMAC-SHA256 (see SignPayload).
// An empty secret leaves requests unsigned.
func WithSignature(secret string) SendOption {
	return func(o *sendOptions) {
		o.signatureSecret = secret
	}
}

func WithHTTPClient(client *http.Client) SendOption {
	return func(o *sendOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithOnDelivery registers a hook invoked after every attempt.
func WithOnDelivery(hook DeliveryHook) SendOption {
	return func(o *sendOptions) {
		o.onDelivery = hook
	}
}
