package httpx

import (
	"net/http"

	apperrors "github.com/tradehub/tradehub-api/internal/errors"
)

// WriteAppError maps the application error taxonomy onto HTTP status codes
// and writes the error envelope.
func WriteAppError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	errCode := "internal_error"

	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeValidation:
		code = http.StatusBadRequest
		errCode = "validation_failed"
	case apperrors.ErrCodeForeignKey:
		code = http.StatusBadRequest
		errCode = "invalid_reference"
	case apperrors.ErrCodeNotFound:
		code = http.StatusNotFound
		errCode = "not_found"
	case apperrors.ErrCodeConflict:
		code = http.StatusConflict
		errCode = "conflict"
	case apperrors.ErrCodeTimeout:
		code = http.StatusGatewayTimeout
		errCode = "timeout"
	}

	WriteError(w, ErrorParams{Code: code, ErrCode: errCode, Err: err})
}
