// Package handler provides type-safe HTTP request handling for JSON endpoints.
//
// Handlers are generic functions that receive a bound request value and
// return a Response. Wrap turns them into plain http.HandlerFuncs:
//
//	type CollectRequest struct {
//		Email string `json:"email"`
//	}
//
//	func collect(ctx handler.Context, req CollectRequest) handler.Response {
//		if req.Email == "" {
//			return handler.JSONError(handler.NewHTTPError(http.StatusBadRequest, "Invalid email address"))
//		}
//		return handler.JSON(map[string]any{"success": true})
//	}
//
//	r.Post("/api/collect", handler.Wrap(collect,
//		handler.WithBinder[handler.Context, CollectRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, CollectRequest](handler.NewErrorHandler(log)),
//	))
//
// # Errors
//
// HTTPError carries a status code and a public message. Everything that
// reaches a response body goes through that message, so internal error text
// never leaks to callers: JSONError renders {"error": "<message>"} and falls
// back to "Internal server error" for any other error.
//
// NewErrorHandler builds the ErrorHandler used for binding and rendering
// failures. It logs 4xx at warn and 5xx at error, tagging the entry with the
// request id from pkg/requestid.
//
// # Decorators
//
// Decorators wrap a HandlerFunc the way middleware wraps an http.Handler.
// Recover converts a panic inside the handler into a 500 response.
package handler
