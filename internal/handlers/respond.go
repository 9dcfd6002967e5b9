package handlers

import (
	"encoding/json"
	"net/http"
)

// Responder writes the uniform {success, message?, data?, count?, error?}
// envelope. Raw error detail is surfaced only outside production.
type Responder struct {
	exposeErrors bool
}

func NewResponder(env string) *Responder {
	return &Responder{exposeErrors: env != "production"}
}

func (rp *Responder) Success(w http.ResponseWriter, status int, message string, data interface{}) {
	payload := map[string]interface{}{"success": true}
	if message != "" {
		payload["message"] = message
	}
	if data != nil {
		payload["data"] = data
	}
	writeJSON(w, status, payload)
}

// List always answers 200 with a count, even when nothing matched.
func (rp *Responder) List(w http.ResponseWriter, count int, data interface{}) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

func (rp *Responder) Fail(w http.ResponseWriter, status int, message string, err error) {
	payload := map[string]interface{}{
		"success": false,
		"message": message,
	}
	if err != nil && rp.exposeErrors {
		payload["error"] = err.Error()
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
