package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/studyplanner/planner-api/config"
	"github.com/studyplanner/planner-api/handlers"
	"github.com/studyplanner/planner-api/middleware"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	config.LoadEnv()
	config.Connect()

	DBHandler := &handlers.DBHandler{DB: config.Database}
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Auth
	mux.HandleFunc("POST /api/login", middleware.WithLogging(DBHandler.Login))

	// Users. Only the update endpoint checks the bearer token; signup and
	// deletion are open, matching the API contract the frontend relies on.
	mux.HandleFunc("GET /api/users/{id}", middleware.WithLogging(DBHandler.GetUserByID))
	mux.HandleFunc("POST /api/users", middleware.WithLogging(DBHandler.CreateUser))
	mux.HandleFunc("PATCH /api/users/{id}", middleware.WithLogging(middleware.Authenticate(DBHandler.UpdateUserByID)))
	mux.HandleFunc("DELETE /api/users/{id}", middleware.WithLogging(DBHandler.DeleteUserByID))

	// Boards
	mux.HandleFunc("GET /api/boards", middleware.WithLogging(DBHandler.GetBoards))
	mux.HandleFunc("POST /api/boards", middleware.WithLogging(DBHandler.CreateBoard))
	mux.HandleFunc("PATCH /api/boards/{id}", middleware.WithLogging(DBHandler.UpdateBoardByID))
	mux.HandleFunc("DELETE /api/boards/{id}", middleware.WithLogging(DBHandler.DeleteBoardByID))

	// Cards
	mux.HandleFunc("GET /api/cards", middleware.WithLogging(DBHandler.GetCards))
	mux.HandleFunc("POST /api/cards", middleware.WithLogging(DBHandler.CreateCard))
	mux.HandleFunc("PATCH /api/cards/{id}", middleware.WithLogging(DBHandler.UpdateCardByID))
	mux.HandleFunc("DELETE /api/cards/{id}", middleware.WithLogging(DBHandler.DeleteCardByID))

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{config.Env.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	serverAddr := "0.0.0.0:" + config.Env.Port
	log.Printf("Server is running on port %s", config.Env.Port)
	http.ListenAndServe(serverAddr, corsHandler)
}
