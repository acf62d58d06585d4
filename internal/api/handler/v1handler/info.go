package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"
)

// Info describes the service and its main endpoints.
func (h *Handler) Info(w http.ResponseWriter, _ *http.Request) {
	endpoints := [][2]string{
		{"survey", "/v1/survey/questions"},
		{"submit", "/v1/survey/submit"},
		{"icons", "/v1/survey/icon/{icon_id}"},
		{"school_icons", "/v1/survey/school-icon/{school}"},
		{"docs", "/v1/docs/"},
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("message", func(e *jx.Encoder) { e.Str("Welcome to OnTrack API") })
		e.Field("version", func(e *jx.Encoder) { e.Str(h.deps.Version) })
		e.Field("endpoints", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				for _, ep := range endpoints {
					e.Field(ep[0], func(e *jx.Encoder) { e.Str(ep[1]) })
				}
			})
		})
	})
	writeJSON(w, http.StatusOK, e.Bytes())
}
