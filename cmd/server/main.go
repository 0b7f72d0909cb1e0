package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/dkovac/askhub/internal/config"
	"github.com/dkovac/askhub/internal/database"
	postgresrepo "github.com/dkovac/askhub/internal/repository/postgres"
	"github.com/dkovac/askhub/internal/service"
	"github.com/dkovac/askhub/internal/transport/http/handlers"
	"github.com/dkovac/askhub/internal/transport/http/middleware"
	"github.com/dkovac/askhub/internal/transport/ws"
)

func main() {
	cfg := config.Load()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	questionRepo := postgresrepo.NewQuestionRepo(pool)
	answerRepo := postgresrepo.NewAnswerRepo(pool)
	requestRepo := postgresrepo.NewAnswerRequestRepo(pool)
	profileRepo := postgresrepo.NewResearcherProfileRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	questionService := service.NewQuestionService(questionRepo, answerRepo, requestRepo)
	profileService := service.NewProfileService(userRepo, questionRepo, answerRepo, profileRepo)
	uploadService := service.NewUploadService(cfg.UploadDir, cfg.UploadBaseURL)

	// WebSocket hub for real-time question events
	hub := ws.NewHub()
	go hub.Run()
	questionService.SetNotifier(ws.NewHubNotifier(hub))

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	profileHandler := handlers.NewProfileHandler(profileService)
	userHandler := handlers.NewUserHandler(profileService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/questions", questionHandler.List)
	mux.HandleFunc("GET /api/questions/{id}", questionHandler.Get)
	mux.HandleFunc("GET /api/users", userHandler.List)
	mux.HandleFunc("GET /api/users/{userId}", userHandler.Get)

	// Protected - Questions
	mux.Handle("POST /api/questions", auth(http.HandlerFunc(questionHandler.Create)))
	mux.Handle("POST /api/questions/{id}/volunteer", auth(http.HandlerFunc(questionHandler.Volunteer)))
	mux.Handle("POST /api/questions/{id}/select", auth(http.HandlerFunc(questionHandler.Select)))
	mux.Handle("POST /api/questions/{id}/answers", auth(http.HandlerFunc(questionHandler.SubmitAnswer)))
	mux.Handle("POST /api/questions/{id}/accept", auth(http.HandlerFunc(questionHandler.Accept)))

	// Protected - Profile
	mux.Handle("GET /api/profile", auth(http.HandlerFunc(profileHandler.Get)))
	mux.Handle("GET /api/profile/researcher", auth(http.HandlerFunc(profileHandler.GetResearcher)))
	mux.Handle("PATCH /api/profile/researcher", auth(http.HandlerFunc(profileHandler.PatchResearcher)))

	// Protected - Upload
	mux.Handle("POST /api/upload", auth(http.HandlerFunc(uploadHandler.Upload)))

	// Uploaded files
	mux.Handle("GET "+cfg.UploadBaseURL+"/", http.StripPrefix(cfg.UploadBaseURL+"/", http.FileServer(http.Dir(cfg.UploadDir))))

	// Real-time feed
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, cfg.JWTSecret))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(mux)))
}
