package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"
)

// DBHandler bundles the shared database handle for all endpoint handlers.
// Clock is overridable so board seeding can be pinned to a month in tests;
// when nil, the wall clock is used.
type DBHandler struct {
	*gorm.DB
	Clock func() time.Time
}

func (db *DBHandler) now() time.Time {
	if db.Clock != nil {
		return db.Clock()
	}
	return time.Now()
}

func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Println("Failed to encode JSON response:", err)
	}
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"error": message})
}
