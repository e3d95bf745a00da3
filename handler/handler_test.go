package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msprojectmerger/landing/handler"
	"github.com/msprojectmerger/landing/pkg/binder"
	"github.com/msprojectmerger/landing/pkg/environment"
	"github.com/msprojectmerger/landing/pkg/logger"
)

type greetRequest struct {
	Name string `json:"name"`
}

func postJSON(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/greet", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body handler.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestWrap(t *testing.T) {
	t.Parallel()

	greet := func(ctx handler.Context, req greetRequest) handler.Response {
		return handler.JSON(map[string]string{"hello": req.Name}, handler.WithJSONStatus(http.StatusCreated))
	}

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(greet, handler.WithBinder[handler.Context, greetRequest](binder.JSON()))

		w := httptest.NewRecorder()
		h(w, postJSON(`{"name":" Ada "}`))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"hello":"Ada"}`, w.Body.String())
	})

	t.Run("binding error goes to error handler", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(greet,
			handler.WithBinder[handler.Context, greetRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, greetRequest](func(ctx handler.Context, err error) {
				got = err
				ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
			}),
		)

		w := httptest.NewRecorder()
		h(w, postJSON(`{`))

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.ErrorIs(t, got, binder.ErrFailedToParseJSON)
	})

	t.Run("not applicable binders are skipped", func(t *testing.T) {
		t.Parallel()
		skip := func(r *http.Request, v any) error { return binder.ErrBinderNotApplicable }
		h := handler.Wrap(greet, handler.WithBinders[handler.Context, greetRequest](skip, binder.JSON()))

		w := httptest.NewRecorder()
		h(w, postJSON(`{"name":"Bob"}`))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("nil response renders internal error", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(ctx handler.Context, req greetRequest) handler.Response { return nil })

		w := httptest.NewRecorder()
		h(w, postJSON(`{}`))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, handler.MsgInternal, decodeError(t, w))
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()
		var order []string
		mark := func(name string) handler.Decorator[handler.Context, greetRequest] {
			return func(next handler.HandlerFunc[handler.Context, greetRequest]) handler.HandlerFunc[handler.Context, greetRequest] {
				return func(ctx handler.Context, req greetRequest) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		h := handler.Wrap(greet, handler.WithDecorators(mark("outer"), mark("inner")))
		h(httptest.NewRecorder(), postJSON(`{}`))
		assert.Equal(t, []string{"outer", "inner"}, order)
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"http error", handler.NewHTTPError(http.StatusBadRequest, "Invalid email address"), http.StatusBadRequest, "Invalid email address"},
		{"wrapped http error", errors.Join(errors.New("ctx"), handler.ErrMethodNotAllowed), http.StatusMethodNotAllowed, handler.MsgMethodNotAllowed},
		{"cause is hidden", handler.ErrInternal.WithCause(errors.New("db password wrong")), http.StatusInternalServerError, handler.MsgInternal},
		{"plain error", errors.New("secret detail"), http.StatusInternalServerError, handler.MsgInternal},
		{"empty message uses status text", handler.HTTPError{Code: http.StatusNotFound}, http.StatusNotFound, "Not Found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			require.NoError(t, handler.JSONError(tt.err).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, w))
		})
	}
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := handler.ErrInternal.WithCause(cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Internal server error: boom", err.Error())
	assert.Equal(t, "Method not allowed", handler.ErrMethodNotAllowed.Error())
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
	eh := handler.NewErrorHandler(log)

	t.Run("client error logs warn", func(t *testing.T) {
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/x", nil)), handler.ErrMethodNotAllowed)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), `"status_code":405`)
	})

	t.Run("client error logs info in production", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/x", nil)
		r = r.WithContext(environment.WithContext(r.Context(), environment.Production))
		eh(handler.NewContext(w, r), handler.ErrBadRequest)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, buf.String(), `"level":"INFO"`)
	})

	t.Run("server error logs cause but hides it", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, httptest.NewRequest(http.MethodPost, "/x", nil)), errors.New("disk full"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, handler.MsgInternal, decodeError(t, w))
		assert.NotContains(t, w.Body.String(), "disk full")
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), "disk full")
	})
}

func TestRecover(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))
	h := handler.Wrap(
		func(ctx handler.Context, req greetRequest) handler.Response { panic("sink exploded") },
		handler.WithDecorators(handler.Recover[handler.Context, greetRequest](log)),
	)

	w := httptest.NewRecorder()
	h(w, postJSON(`{}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, handler.MsgInternal, decodeError(t, w))
	assert.NotContains(t, w.Body.String(), "sink exploded")
	assert.Contains(t, buf.String(), "sink exploded")
}
