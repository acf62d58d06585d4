// Package v1handler implements the version 1 survey HTTP API: the question
// bank, submission scoring and the icon assets referenced by results.
package v1handler

import (
	"fmt"
	"net/http"
	"ontrack/internal/survey"

	"github.com/xeipuuv/gojsonschema"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	// DefaultMaxBodyBytes bounds a submission body when Deps leaves it unset.
	DefaultMaxBodyBytes = 64 << 10
	// DefaultVersion is reported by the root info route when Deps leaves it unset.
	DefaultVersion = "2.0"
)

// Deps holds the collaborators of the v1 handlers.
type Deps struct {
	Survey survey.Service
	// Meter creates the API's OTel instruments. A no-op meter is used when nil.
	Meter metric.Meter
	// StaticDir contains the icon/ and school_icon/ directories.
	StaticDir string
	// MaxBodyBytes limits submission bodies.
	MaxBodyBytes int64
	// Version is reported by the info route.
	Version string
}

type Handler struct {
	deps         Deps
	submitSchema *gojsonschema.Schema
	primaryCodes metric.Int64Counter
}

func New(deps Deps) (*Handler, error) {
	if deps.Meter == nil {
		deps.Meter = noop.NewMeterProvider().Meter("")
	}
	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if deps.Version == "" {
		deps.Version = DefaultVersion
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(submitSchema))
	if err != nil {
		return nil, fmt.Errorf("could not compile submit schema: %w", err)
	}

	primaryCodes, err := deps.Meter.Int64Counter("survey.primary_code",
		metric.WithDescription("Scored submissions by primary RIASEC category"),
		metric.WithUnit("{submission}"))
	if err != nil {
		return nil, fmt.Errorf("could not create primary code counter: %w", err)
	}

	return &Handler{
		deps:         deps,
		submitSchema: schema,
		primaryCodes: primaryCodes,
	}, nil
}

// Register mounts the v1 routes and the root info route on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Info)
	mux.HandleFunc("GET /v1/survey/questions", h.Questions)
	mux.HandleFunc("POST /v1/survey/submit", h.Submit)
	mux.HandleFunc("GET /v1/survey/icon/{iconID}", h.Icon)
	mux.HandleFunc("GET /v1/survey/school-icon/{school}", h.SchoolIcon)
}
