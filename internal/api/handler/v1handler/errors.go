package v1handler

import (
	"context"
	"net/http"
	"ontrack/pkg/logger"
	"ontrack/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// WriteError renders err as a {"code","message"} body. The status and code
// come from the error's semantic kind; internal errors are logged and their
// details are never exposed.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	status := serrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(serrors.KindOf(err).Error()) })
		e.Field("message", func(e *jx.Encoder) { e.Str(serrors.PublicMessage(err)) })
	})
	writeJSON(w, status, e.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
