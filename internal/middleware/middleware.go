package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"personalblog/internal/config"
	handlers "personalblog/internal/handler"
	"personalblog/internal/repository"
	"personalblog/internal/service"
)

type Middleware func(http.Handler) http.Handler

// SessionMiddleware restores the request identity from the session
// cookie. A missing or broken cookie, or a user row that no longer
// exists, degrades to an anonymous request, never to an error.
func SessionMiddleware(authService service.AuthService, userRepo repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(handlers.SessionCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := authService.ParseSession(cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := userRepo.GetUserByID(r.Context(), userID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			// Adding user data to the context
			ctx := r.Context()
			ctx = context.WithValue(ctx, "userID", user.ID)
			ctx = context.WithValue(ctx, "userName", user.Name)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnlyMiddleware admits only the site owner. Applied before the
// handler, so unauthorized calls never touch the store.
func AdminOnlyMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := r.Context().Value("userID").(int64)
			if !ok || userID != cfg.AdminUserID {
				handlers.WriteError(w, "Доступ запрещен", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("[%s] %s %s (%s)", requestID, r.Method, r.RequestURI, time.Since(start))
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
