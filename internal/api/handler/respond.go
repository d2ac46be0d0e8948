// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"shopku-api/internal/api/types"
	"shopku-api/internal/util"
)

// DefaultTimeout is the per-request timeout applied by the router.
const DefaultTimeout = 30 * time.Second

// respondWithJSON writes payload as a JSON response with the given status.
func respondWithJSON(logger *slog.Logger, w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps a service error to an HTTP status and writes the
// error envelope. Infrastructure faults are logged and reported generically.
func respondWithError(logger *slog.Logger, w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput), util.IsError(err, util.ErrInvalidPayload):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrUnauthorized), util.IsError(err, util.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		message = err.Error()
	case util.IsError(err, util.ErrForbidden):
		statusCode = http.StatusForbidden
		message = "Forbidden"
	case util.IsError(err, util.ErrInsufficientFunds):
		statusCode = http.StatusPaymentRequired
		message = "Insufficient balance"
	case util.IsError(err, util.ErrNotFound),
		util.IsError(err, util.ErrUserNotFound),
		util.IsError(err, util.ErrProductNotFound),
		util.IsError(err, util.ErrOrderNotFound),
		util.IsError(err, util.ErrCartItemNotFound):
		statusCode = http.StatusNotFound
		message = err.Error()
	case util.IsError(err, util.ErrDuplicateEntry):
		statusCode = http.StatusConflict
		message = err.Error()
	case util.IsError(err, util.ErrOrderNotPayable):
		statusCode = http.StatusConflict
		message = err.Error()
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(logger, w, statusCode, types.Response{Success: false, Message: message})
}
