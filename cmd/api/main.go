package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"personalblog/cmd/app"
	"personalblog/internal/config"
	handlers "personalblog/internal/handler"
	"personalblog/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET не установлен в .env файле")
	}

	db, repo, services, store := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, store, db, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handler.GetAllPosts)
	router.HandleFunc("/health", handler.HealthHandler)
	router.HandleFunc("/tables", handler.TablesHandler)

	router.HandleFunc("/register", handler.Register)
	router.HandleFunc("/login", handler.Login)
	router.HandleFunc("/logout", handler.Logout)

	router.HandleFunc("/post/{id}", handler.ShowPost)
	router.HandleFunc("/contact", handler.Contact)
	router.HandleFunc("/about", handler.About)

	// the authoring surface belongs to the site owner only
	adminOnly := middleware.AdminOnlyMiddleware(cfg)
	router.Handle("/new-post", adminOnly(http.HandlerFunc(handler.NewPost)))
	router.Handle("/edit-post/{id}", adminOnly(http.HandlerFunc(handler.EditPost)))
	router.Handle("/delete/{id}", adminOnly(http.HandlerFunc(handler.DeletePost)))
	router.Handle("/download", adminOnly(http.HandlerFunc(handler.Download)))

	handlerChain := middleware.Chain(
		router,
		middleware.SessionMiddleware(services.Auth, repo.User),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
