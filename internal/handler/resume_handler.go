package handlers

import (
	"fmt"
	"io"
	"net/http"
)

// About shows the access-code form; a POST with the right code streams
// the resume.
func (h *Handlers) About(w http.ResponseWriter, r *http.Request) {
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

	code := r.PostFormValue("code")
	if h.Cfg.ResumeCode == "" || code != h.Cfg.ResumeCode {
		setFlash(w, "Неверный код")
		http.Redirect(w, r, "/about", http.StatusFound)
		return
	}

	h.streamResume(w, r)
}

// Download streams the resume for the administrator, no code needed.
func (h *Handlers) Download(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.streamResume(w, r)
}

func (h *Handlers) streamResume(w http.ResponseWriter, r *http.Request) {
	file, fileName, err := h.Storage.OpenResume(r.Context())
	if err != nil {
		WriteError(w, "Файл резюме недоступен", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))

	if _, err := io.Copy(w, file); err != nil {
		// headers are already out, nothing to report to the client
		return
	}
}
