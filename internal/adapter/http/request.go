package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"budget-review/internal/core/domain"
)

const defaultMaxBodyBytes = 32 << 10

// requestError is a client error carrying its HTTP status.
type requestError struct {
	status int
	msg    string
}

func (e *requestError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return &requestError{status: http.StatusBadRequest, msg: fmt.Sprintf(format, args...)}
}

// reviewBody is the union of the individual and batch request shapes. The
// presence of clientIds selects a batch.
type reviewBody struct {
	ClientID   string   `json:"clientId"`
	ClientIDs  []string `json:"clientIds"`
	AccountID  string   `json:"accountId"`
	Platform   string   `json:"platform"`
	ReviewDate string   `json:"reviewDate"`
}

type individualRequest struct {
	ClientID   string `json:"clientId" validate:"required,max=128"`
	AccountID  string `json:"accountId" validate:"max=128"`
	Platform   string `json:"platform" validate:"omitempty,oneof=meta google"`
	ReviewDate string `json:"reviewDate" validate:"omitempty,datetime=2006-01-02"`
}

type batchRequest struct {
	ClientIDs  []string `json:"clientIds" validate:"required,min=1,max=1000,dive,required,max=128"`
	Platform   string   `json:"platform" validate:"omitempty,oneof=meta google"`
	ReviewDate string   `json:"reviewDate" validate:"omitempty,datetime=2006-01-02"`
}

type ignoreWarningRequest struct {
	ClientID  string `json:"clientId" validate:"required,max=128"`
	AccountID string `json:"accountId" validate:"max=128"`
	Platform  string `json:"platform" validate:"omitempty,oneof=meta google"`
	Ignored   *bool  `json:"ignored" validate:"required"`
}

func (b reviewBody) isBatch() bool {
	return b.ClientIDs != nil
}

func (b reviewBody) individual() (individualRequest, error) {
	if b.ClientIDs != nil {
		return individualRequest{}, badRequest("clientId and clientIds are mutually exclusive")
	}
	return individualRequest{ClientID: b.ClientID, AccountID: b.AccountID, Platform: b.Platform, ReviewDate: b.ReviewDate}, nil
}

func (b reviewBody) batch() (batchRequest, error) {
	if b.ClientID != "" || b.AccountID != "" {
		return batchRequest{}, badRequest("clientIds cannot be combined with clientId or accountId")
	}
	return batchRequest{ClientIDs: b.ClientIDs, Platform: b.Platform, ReviewDate: b.ReviewDate}, nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON reads a single JSON object from the capped request body.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return &requestError{status: http.StatusUnsupportedMediaType, msg: "content type must be application/json"}
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err = dec.Decode(dst); err != nil {
		return decodeError(err, h.maxBodyBytes)
	}
	if dec.More() {
		return badRequest("request body must contain a single JSON object")
	}
	return nil
}

func decodeError(err error, limit int64) error {
	var (
		maxBytesErr  *http.MaxBytesError
		syntaxErr    *json.SyntaxError
		unmarshalErr *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &maxBytesErr):
		return &requestError{status: http.StatusRequestEntityTooLarge, msg: fmt.Sprintf("request body must not exceed %d bytes", limit)}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return badRequest("malformed JSON in request body")
	case errors.As(err, &unmarshalErr):
		return badRequest("invalid value for field %q", unmarshalErr.Field)
	case errors.Is(err, io.EOF):
		return badRequest("request body must not be empty")
	case strings.HasPrefix(err.Error(), "json: unknown field"):
		return badRequest("unknown field %s", strings.TrimPrefix(err.Error(), "json: unknown field "))
	default:
		return badRequest("invalid request body")
	}
}

// validate checks v against its struct tags.
func (h *Handler) validate(v any) error {
	err := h.validator.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return badRequest("invalid request")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return badRequest("%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "datetime":
		return fe.Field() + " must be a YYYY-MM-DD date"
	case "min":
		return fmt.Sprintf("%s must have at least %s items", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s exceeds the maximum of %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}

// parseDate returns the zero time for an empty value, meaning today.
func (h *Handler) parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return domain.ParseDate(s, h.loc)
}
