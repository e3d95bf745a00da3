// Package binder decodes HTTP request bodies into typed request structs for
// handler.Wrap.
//
// JSON reads at most DefaultMaxJSONSize bytes, requires an application/json
// media type, decodes exactly one JSON value and trims surrounding whitespace
// and control characters from every string field. By default unknown fields
// are ignored so older and newer clients can talk to the same endpoint;
// WithStrictFields rejects them instead.
//
//	http.HandleFunc("/api/collect-email", handler.Wrap(svc.Collect,
//		handler.WithBinder[handler.Context, collect.Record](binder.JSON()),
//	))
//
// All failures wrap one of the sentinel errors in errors.go. A binder that
// does not apply to a request returns ErrBinderNotApplicable, which
// handler.Wrap skips.
package binder
