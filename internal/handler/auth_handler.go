package handlers

import (
	"errors"
	"net/http"

	"personalblog/internal/repository"
)

type RegisterRequest struct {
	Email    string `validate:"required,email"`
	Name     string `validate:"required"`
	Password string `validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		WriteSuccess(w, map[string]interface{}{"flash": popFlash(w, r)}, http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	req := RegisterRequest{
		Email:    r.PostFormValue("email"),
		Name:     r.PostFormValue("name"),
		Password: r.PostFormValue("password"),
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные формы", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateUserRequest{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	}

	user, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		// an existing email is not an error, the visitor is sent to login
		if errors.Is(err, repository.ErrDuplicateEmail) {
			setFlash(w, "Вы уже зарегистрированы с этим email, войдите в систему")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// the new user proceeds as logged-in
	token, err := h.AuthService.IssueSession(user)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		WriteSuccess(w, map[string]interface{}{"flash": popFlash(w, r)}, http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	req := LoginRequest{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные формы", http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			setFlash(w, "Такой email не зарегистрирован")
		case errors.Is(err, repository.ErrBadPassword):
			setFlash(w, "Неверный пароль")
		default:
			WriteError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	token, err := h.AuthService.IssueSession(user)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout clears the session unconditionally, logged-in or not.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
