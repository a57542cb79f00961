package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Narayana2527/health-safari-apis/internal/api/handlers"
)

// Apply подключает middleware к роутеру
// mux вызывает Router.Use только для найденных маршрутов, поэтому обработчики 404 и 405
// оборачиваются той же цепочкой отдельно
func Apply(r *mux.Router, mws ...mux.MiddlewareFunc) {
	r.Use(mws...)

	notFound := r.NotFoundHandler
	if notFound == nil {
		notFound = http.HandlerFunc(routeNotFound)
	}
	methodNotAllowed := r.MethodNotAllowedHandler
	if methodNotAllowed == nil {
		methodNotAllowed = http.HandlerFunc(methodNotAllowedHandler)
	}

	r.NotFoundHandler = chain(notFound, mws)
	r.MethodNotAllowedHandler = chain(methodNotAllowed, mws)
}

func chain(h http.Handler, mws []mux.MiddlewareFunc) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondNotFound(w, "Not found")
}

func methodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
