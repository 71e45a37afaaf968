package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/studyplanner/planner-api/models"
)

// GET /api/boards
//
// Returns every board in the store, not just the caller's.
func (db *DBHandler) GetBoards(w http.ResponseWriter, r *http.Request) {
	boards := []models.Board{}
	if err := db.Find(&boards).Error; err != nil {
		log.Println("GetBoards: query failed:", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, boards)
}

// POST /api/boards
func (db *DBHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name"`
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	board := models.Board{Name: req.Name, UserID: req.UserID}
	if err := db.Create(&board).Error; err != nil {
		log.Println("CreateBoard: database creation failed:", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, board)
}

// PATCH /api/boards/{id}
func (db *DBHandler) UpdateBoardByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		Name   *string `json:"name"`
		UserID *string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var board models.Board
	if err := db.First(&board, "id = ?", id).Error; err != nil {
		log.Printf("UpdateBoardByID: lookup failed for id=%s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if req.Name != nil {
		board.Name = *req.Name
	}
	if req.UserID != nil {
		board.UserID = *req.UserID
	}

	if err := db.Save(&board).Error; err != nil {
		log.Println("UpdateBoardByID: save failed:", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, board)
}

// DELETE /api/boards/{id}
//
// Cards on the board are left in place.
func (db *DBHandler) DeleteBoardByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var board models.Board
	if err := db.First(&board, "id = ?", id).Error; err != nil {
		log.Printf("DeleteBoardByID: lookup failed for id=%s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := db.Delete(&board).Error; err != nil {
		log.Println("DeleteBoardByID: delete failed:", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, board)
}
