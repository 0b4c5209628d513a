package middleware

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (mw *Middleware) Logger() func(http.Handler) http.Handler {
	return gecho.Handlers.CreateLoggingMiddleware(mw.logger)
}
