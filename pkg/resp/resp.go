package resp

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSONResponse - пишет ответ в формате JSON с указанным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		log.Println("write json response:", err)
	}
}
