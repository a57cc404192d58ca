// Package errors defines the JSON error envelope returned by the dashboard
// and the translation of report failures into it.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"sales-dashboard/internal/rating"
	"sales-dashboard/internal/report"
)

type ErrorCode string

const (
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeBadRequest    ErrorCode = "BAD_REQUEST"
	CodeRateLimit     ErrorCode = "RATE_LIMIT_EXCEEDED"
	CodeUnprocessable ErrorCode = "UNPROCESSABLE_REPORT"
	CodeTooLarge      ErrorCode = "PAYLOAD_TOO_LARGE"
)

var statusByCode = map[ErrorCode]int{
	CodeValidation:    http.StatusBadRequest,
	CodeNotFound:      http.StatusNotFound,
	CodeBadRequest:    http.StatusBadRequest,
	CodeRateLimit:     http.StatusTooManyRequests,
	CodeUnprocessable: http.StatusUnprocessableEntity,
	CodeTooLarge:      http.StatusRequestEntityTooLarge,
}

// AppError is the error half of every JSON response. Fields carries the
// table, column, row or value a report error points at.
type AppError struct {
	Code       ErrorCode      `json:"code"`
	Message    string         `json:"message"`
	Details    string         `json:"details,omitempty"`
	Fields     map[string]any `json:"fields,omitempty"`
	StatusCode int            `json:"-"`
	Cause      error          `json:"-"`
	Timestamp  time.Time      `json:"timestamp"`
	RequestID  string         `json:"request_id,omitempty"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code ErrorCode, message string) *AppError {
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: status,
		Timestamp:  time.Now().UTC(),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

func Internal(message string) *AppError { return New(CodeInternal, message) }
func Validation(message string) *AppError { return New(CodeValidation, message) }
func NotFound(message string) *AppError { return New(CodeNotFound, message) }
func RateLimit(message string) *AppError { return New(CodeRateLimit, message) }
func TooLarge(message string) *AppError { return New(CodeTooLarge, message) }

func BadRequestWrap(err error, message string) *AppError {
	return Wrap(err, CodeBadRequest, message)
}

// FromReport translates loader and rating failures into client errors.
// Anything else is returned unchanged.
func FromReport(err error) error {
	var (
		missing   *report.MissingColumnError
		empty     *report.EmptyTableError
		malformed *report.MalformedNumberError
		divZero   *rating.DivisionByZeroError
		overflow  *rating.OverflowError
		tooLarge  *http.MaxBytesError

		appErr *AppError
		cause  error
	)
	switch {
	case stderrors.As(err, &missing):
		cause = missing
		appErr = Wrap(err, CodeUnprocessable, "Report is missing required columns")
		appErr.Fields = map[string]any{"table": missing.Table, "columns": missing.Columns}
	case stderrors.As(err, &empty):
		cause = empty
		appErr = Wrap(err, CodeUnprocessable, "Report has no data rows")
		appErr.Fields = map[string]any{"table": empty.Table}
	case stderrors.As(err, &malformed):
		cause = malformed
		appErr = Wrap(err, CodeUnprocessable, "Report contains a malformed number")
		appErr.Fields = map[string]any{"column": malformed.Column, "value": malformed.Value}
		if malformed.Row > 0 {
			appErr.Fields["row"] = malformed.Row
		}
	case stderrors.As(err, &divZero):
		cause = divZero
		appErr = Wrap(err, CodeUnprocessable, "Rating cannot be computed")
		appErr.Fields = map[string]any{"denominator": divZero.Denominator}
	case stderrors.As(err, &overflow):
		cause = overflow
		appErr = Wrap(err, CodeUnprocessable, "Rating cannot be computed")
		appErr.Fields = map[string]any{"quantity": overflow.Quantity}
	case stderrors.As(err, &tooLarge):
		return Wrap(err, CodeTooLarge, fmt.Sprintf("Upload exceeds %d bytes", tooLarge.Limit))
	default:
		return err
	}

	appErr.Details = cause.Error()
	return appErr
}
