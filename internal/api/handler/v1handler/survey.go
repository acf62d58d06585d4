package v1handler

import (
	"errors"
	"io"
	"net/http"
	"ontrack/pkg/serrors"
	"strings"

	"github.com/go-faster/jx"
	"github.com/xeipuuv/gojsonschema"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// submitSchema describes the submission body. Answer values are not
// restricted to Yes/No: anything but a case-insensitive "yes" counts as no.
const submitSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["answers"],
  "properties": {
    "answers": {
      "type": "array",
      "maxItems": 1000,
      "items": {"type": "string", "maxLength": 32}
    }
  }
}`

// Questions serves the question bank in survey order.
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	var e jx.Encoder
	encodeQuestions(&e, h.deps.Survey.Questions())
	writeJSON(w, http.StatusOK, e.Bytes())
}

// Submit scores a submission and returns the personality, the recommended
// industries and the generated codes.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.deps.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(ctx, w, serrors.With(serrors.ErrBadRequest, "request body exceeds %d bytes", tooLarge.Limit))

			return
		}
		WriteError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body"))

		return
	}

	answers, err := h.decodeSubmission(body)
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	result := h.deps.Survey.ProcessSubmission(ctx, answers)
	h.primaryCodes.Add(ctx, 1, metric.WithAttributes(attribute.String("code", string(result.PrimaryCode))))

	var e jx.Encoder
	encodeSubmission(&e, result)
	writeJSON(w, http.StatusOK, e.Bytes())
}

// decodeSubmission validates body against the submit schema and extracts the
// answers.
func (h *Handler) decodeSubmission(body []byte) ([]string, error) {
	res, err := h.submitSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "malformed JSON body")
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}

		return nil, serrors.With(serrors.ErrBadRequest, "invalid submission: %s", strings.Join(msgs, "; "))
	}

	answers := []string{}
	err = jx.DecodeBytes(body).Obj(func(d *jx.Decoder, key string) error {
		if key != "answers" {
			return d.Skip()
		}

		return d.Arr(func(d *jx.Decoder) error {
			s, err := d.Str()
			if err != nil {
				return err
			}
			answers = append(answers, s)

			return nil
		})
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "malformed JSON body")
	}

	return answers, nil
}
