package dash

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// response is the dashboard-facing result envelope. Every route answers with
// this shape.
type response struct {
	OK      bool   `json:"ok"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.WithError(err).Error("Failed to encode dashboard response")
	}
}

// respondData answers 200 {ok:true, data}.
func respondData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, response{OK: true, Data: data})
}

// respondMessage answers 200 {ok:true, message}.
func respondMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, response{OK: true, Message: message})
}

// respondAbsent answers "nothing here" conditions: HTTP 200 with ok:false and
// null data. Existing dashboard clients rely on not-found being a 200, so this
// must never become a 404.
func respondAbsent(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	// data is explicitly null rather than omitted
	if _, err := w.Write([]byte(`{"ok":false,"data":null}`)); err != nil {
		log.WithError(err).Error("Failed to write dashboard response")
	}
}

// respondAbsentMessage answers a not-found condition with an explanation,
// still as HTTP 200 for client compatibility.
func respondAbsentMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, response{OK: false, Message: message})
}

// respondBadRequest answers 400 for malformed input.
func respondBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, response{OK: false, Message: message})
}

// respondStorageFailure answers 500 without leaking backend error text.
func respondStorageFailure(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, response{OK: false, Message: "Internal storage failure."})
}
