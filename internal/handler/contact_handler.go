package handlers

import (
	"errors"
	"net/http"

	"personalblog/internal/notifier"
)

type ContactRequest struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"required"`
	Message string `validate:"required"`
}

// Contact relays the form through the email API. The answer stays on
// the same page, there is no redirect here.
func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
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

	req := ContactRequest{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Message: r.PostFormValue("message"),
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Все поля формы обязательны", http.StatusBadRequest)
		return
	}

	msg := notifier.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := h.ContactService.SendMessage(r.Context(), msg); err != nil {
		if errors.Is(err, notifier.ErrSendFailed) {
			WriteError(w, "Не удалось отправить сообщение, попробуйте позже", http.StatusBadGateway)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Сообщение успешно отправлено"}, http.StatusOK)
}
