package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/studyplanner/planner-api/auth"
	"github.com/studyplanner/planner-api/config"
	"github.com/studyplanner/planner-api/models"
	"github.com/studyplanner/planner-api/subjects"
)

// publicUser is the response shape for user endpoints; the stored password
// hash is never included here.
type publicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Year  string `json:"year"`
	Email string `json:"email"`
}

// POST /api/login
func (db *DBHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Unknown email and wrong password produce the same response so the two
	// cases cannot be told apart.
	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		respondError(w, http.StatusBadRequest, "Invalid email or password")
		return
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		respondError(w, http.StatusBadRequest, "Invalid email or password")
		return
	}

	token, err := auth.CreateToken(user.ID, user.Email, []byte(config.Env.JWTSecret))
	if err != nil {
		log.Println("Login: token generation failed:", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, struct {
		publicUser
		Token string `json:"token"`
	}{
		publicUser: publicUser{ID: user.ID, Name: user.Name, Year: user.Year, Email: user.Email},
		Token:      token,
	})
}

// GET /api/users/{id}
func (db *DBHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"name":  user.Name,
		"year":  user.Year,
		"email": user.Email,
	})
}

// POST /api/users
//
// Creating a user also seeds its boards from the curriculum table for the
// user's academic year and the current term. The two writes are not atomic:
// when the bulk insert fails the user row remains with zero boards.
func (db *DBHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Year     string `json:"year"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Println("CreateUser: password hashing failed:", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Year:     req.Year,
		Password: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Println("CreateUser: database creation failed:", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := db.seedBoards(&user); err != nil {
		log.Println("CreateUser: board seeding failed:", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, publicUser{ID: user.ID, Name: user.Name, Year: user.Year, Email: user.Email})
}

// seedBoards bulk-inserts one board per curriculum subject for the user's
// year and the current term slot. A year outside the curriculum seeds
// nothing.
func (db *DBHandler) seedBoards(user *models.User) error {
	year := user.Year
	if year == "" {
		year = "1"
	}
	yearNum, err := strconv.Atoi(year)
	if err != nil {
		log.Printf("seedBoards: unparseable year %q for user %s, skipping", user.Year, user.ID)
		return nil
	}

	slot := subjects.TermSlot(db.now())
	subjectList := subjects.ForYearTerm(yearNum-1, slot)
	if len(subjectList) == 0 {
		return nil
	}

	boards := make([]models.Board, 0, len(subjectList))
	for _, subject := range subjectList {
		boards = append(boards, models.Board{Name: subject, UserID: user.ID})
	}

	return db.Create(&boards).Error
}

// PATCH /api/users/{id} — the only bearer-guarded endpoint.
func (db *DBHandler) UpdateUserByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Year     *string `json:"year"`
		Password *string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		log.Printf("UpdateUserByID: lookup failed for id=%s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Year != nil {
		user.Year = *req.Year
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			log.Println("UpdateUserByID: password hashing failed:", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		user.Password = hashed
	}

	if err := db.Save(&user).Error; err != nil {
		log.Println("UpdateUserByID: save failed:", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, publicUser{ID: user.ID, Name: user.Name, Year: user.Year, Email: user.Email})
}

// DELETE /api/users/{id}
//
// The response echoes the deleted row verbatim, stored password hash
// included. The user's boards and cards are left in place.
func (db *DBHandler) DeleteUserByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		log.Printf("DeleteUserByID: lookup failed for id=%s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := db.Delete(&user).Error; err != nil {
		log.Println("DeleteUserByID: delete failed:", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, user)
}
