package system

import (
	"net/http"

	"github.com/Narayana2527/health-safari-apis/internal/api/handlers"
)

type messageResponse struct {
	Message string `json:"message"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// Welcome GET /
func Welcome(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, messageResponse{Message: "Welcome to hsapi"})
}

// Healthz GET /healthz
func Healthz(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}
