package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"gorm.io/datatypes"

	"github.com/studyplanner/planner-api/models"
)

// GET /api/cards
//
// Returns every card in the store, unscoped.
func (db *DBHandler) GetCards(w http.ResponseWriter, r *http.Request) {
	cards := []models.Card{}
	if err := db.Find(&cards).Error; err != nil {
		log.Println("GetCards: query failed:", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, cards)
}

// POST /api/cards
//
// Accepts the full card shape. Tags is stored as whatever JSON value the
// client sent; the referenced board is not checked for existence.
func (db *DBHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var card models.Card
	if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := db.Create(&card).Error; err != nil {
		log.Println("CreateCard: database creation failed:", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, card)
}

// PATCH /api/cards/{id}
func (db *DBHandler) UpdateCardByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		Name        *string         `json:"name"`
		Description *string         `json:"description"`
		Date        *string         `json:"date"`
		Time        *string         `json:"time"`
		Tags        *datatypes.JSON `json:"tags"`
		BoardID     *string         `json:"boardId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var card models.Card
	if err := db.First(&card, "id = ?", id).Error; err != nil {
		log.Printf("UpdateCardByID: lookup failed for id=%s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if req.Name != nil {
		card.Name = *req.Name
	}
	if req.Description != nil {
		card.Description = *req.Description
	}
	if req.Date != nil {
		card.Date = *req.Date
	}
	if req.Time != nil {
		card.Time = *req.Time
	}
	if req.Tags != nil {
		card.Tags = *req.Tags
	}
	if req.BoardID != nil {
		card.BoardID = *req.BoardID
	}

	if err := db.Save(&card).Error; err != nil {
		log.Println("UpdateCardByID: save failed:", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, card)
}

// DELETE /api/cards/{id}
func (db *DBHandler) DeleteCardByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var card models.Card
	if err := db.First(&card, "id = ?", id).Error; err != nil {
		log.Printf("DeleteCardByID: lookup failed for id=%s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := db.Delete(&card).Error; err != nil {
		log.Println("DeleteCardByID: delete failed:", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, card)
}
