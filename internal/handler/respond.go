package handler

import (
	"net/http"

	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// writeJSON writes the encoder's buffer with the given status code.
func writeJSON(w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// rejected writes the 4xx validation contract:
// {"success": false, "errors": [...]}.
func rejected(w http.ResponseWriter, status int, violations []string) {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("success", func(e *jx.Encoder) { e.Bool(false) })
		e.Field("errors", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, v := range violations {
					e.Str(v)
				}
			})
		})
	})
	writeJSON(w, status, &e)
}

// failed writes the single-message error contract:
// {"success": false, "error": "..."}. The message must already be safe to
// show to clients.
func failed(w http.ResponseWriter, status int, msg string) {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("success", func(e *jx.Encoder) { e.Bool(false) })
		e.Field("error", func(e *jx.Encoder) { e.Str(msg) })
	})
	writeJSON(w, status, &e)
}

// serverError logs the cause with the request-scoped logger and answers with
// an opaque 500. Database detail never crosses the interface.
func serverError(w http.ResponseWriter, r *http.Request, op string, err error) {
	zctx.From(r.Context()).Error("request failed",
		zap.String("op", op),
		zap.Error(err),
	)

	span := trace.SpanFromContext(r.Context())
	span.RecordError(err)
	span.SetStatus(codes.Error, op)

	failed(w, http.StatusInternalServerError, "internal error")
}
