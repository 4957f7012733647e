package handling

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleError logs an unexpected failure at the caller's site and
// answers with a generic 500. Expected failures (not found, conflicts,
// bad input) are handled in the individual handlers instead.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) error {
	logger.Error(msg, gecho.Field("error", err), gecho.WithCallerSkip(3))

	return gecho.InternalServerError(w).Send()
}
