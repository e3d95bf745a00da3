// Package webhook delivers JSON payloads to HTTP endpoints.
//
// A Sender makes exactly one attempt unless WithRetry is given, so callers on
// a request path never block on a slow receiver for longer than the
// configured timeout. WithSignature adds HMAC-SHA256 headers that receivers
// can check with ExtractSignatureHeaders and VerifySignature.
//
//	sender := webhook.NewSender()
//	err := sender.Send(ctx, "https://hooks.example.com/leads", rec,
//		webhook.WithSignature(secret),
//		webhook.WithTimeout(5*time.Second),
//	)
package webhook
