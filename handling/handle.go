package handling

import (
	"errors"
	"kube_probe_api/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleError logs err and answers with a 500. Errors wrapping
// lib.ErrResponseStarted are only logged.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	if errors.Is(err, lib.ErrResponseStarted) {
		return
	}

	gecho.InternalServerError(w, gecho.WithMessage(msg), gecho.Send())
}
