package stub

import (
	"net/http"

	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
	"github.com/MKhiriev/go-notes-api-tests/internal/utils"
)

// envelope is the body of every response. Error responses carry no data.
type envelope struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	if _, err := utils.WriteJSON(w, envelope{Success: true, Status: status, Message: message, Data: data}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	f := failureFromError(err)

	log := logger.FromRequest(r)
	if f.status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", f.status).Msg("request rejected")
	}

	if _, err = utils.WriteJSON(w, envelope{Status: f.status, Message: f.message}, f.status); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

// writeStatus writes an error envelope that does not originate from an error
// value.
func writeStatus(w http.ResponseWriter, r *http.Request, status int, message string) {
	if _, err := utils.WriteJSON(w, envelope{Status: status, Message: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
