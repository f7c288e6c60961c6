package httputil

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/matzehuels/flierkit/pkg/errors"
)

// MaxBodyBytes bounds request bodies accepted by [DecodeJSON].
const MaxBodyBytes = 1 << 20

// ErrorBody is the JSON shape of an error response.
type ErrorBody struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// WriteError writes err as an [ErrorBody] with the status from [StatusFor].
// Errors without a code are reported as INTERNAL_ERROR.
func WriteError(w http.ResponseWriter, requestID string, err error) int {
	status := StatusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	_ = WriteJSON(w, status, ErrorBody{
		Code:      code,
		Message:   errors.UserMessage(err),
		RequestID: requestID,
	})
	return status
}

// StatusFor maps an error to an HTTP status.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound):
		return http.StatusNotFound
	case errors.HasCode(err, errors.ErrCodeTimeout), stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, errors.ErrCodeUpstreamGeneration):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON decodes the request body into v. Bodies larger than
// [MaxBodyBytes], trailing data and malformed JSON are INVALID_FORMAT.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err := dec.Decode(v); err != nil {
		if stderrors.Is(err, io.EOF) {
			return errors.New(errors.ErrCodeInvalidFormat, "empty request body")
		}
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body")
	}
	if dec.More() {
		return errors.New(errors.ErrCodeInvalidFormat, "unexpected data after JSON body")
	}
	if dec.InputOffset() > MaxBodyBytes {
		return errors.New(errors.ErrCodeInvalidFormat, "request body exceeds %s", humanBytes(MaxBodyBytes))
	}
	return nil
}

func humanBytes(n int) string {
	if n >= 1<<20 {
		return fmt.Sprintf("%d MiB", n>>20)
	}
	return fmt.Sprintf("%d bytes", n)
}
