package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"personalblog/internal/models"
	"personalblog/internal/repository"
)

type PostsResponse struct {
	Posts []models.Post `json:"posts"`
	Flash string        `json:"flash,omitempty"`
}

type PostWithCommentsResponse struct {
	Post     *models.Post     `json:"post"`
	Comments []models.Comment `json:"comments"`
	Flash    string           `json:"flash,omitempty"`
}

type PostFormRequest struct {
	Title    string `validate:"required"`
	Subtitle string `validate:"required"`
	Body     string `validate:"required"`
	ImgURL   string `validate:"required"`
}

func postIDFromURL(r *http.Request) (int64, error) {
	postID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("неверный идентификатор поста")
	}
	return postID, nil
}

func (h *Handlers) GetAllPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	posts, err := h.PostRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	WriteSuccess(w, PostsResponse{Posts: posts, Flash: popFlash(w, r)}, http.StatusOK)
}

// ShowPost renders a post with its comments; a POST to the same path
// submits a comment from the logged-in visitor.
func (h *Handlers) ShowPost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromURL(r)
	if err != nil {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	if r.Method == http.MethodPost {
		h.addComment(w, r, postID)
		return
	}

	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	comments, err := h.CommentRepo.GetByPostID(r.Context(), postID)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	WriteSuccess(w, PostWithCommentsResponse{
		Post:     post,
		Comments: comments,
		Flash:    popFlash(w, r),
	}, http.StatusOK)
}

func (h *Handlers) addComment(w http.ResponseWriter, r *http.Request, postID int64) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		// nothing is written for anonymous submitters
		setFlash(w, "Нужно войти или зарегистрироваться, чтобы комментировать")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	text := r.PostFormValue("text")
	if text == "" {
		WriteError(w, "Отсутствует текст комментария", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateCommentRequest{
		Text:     text,
		PostID:   postID,
		AuthorID: userID,
	}

	_, err := h.CommentService.AddComment(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	// back to the same post, a refresh must not resubmit
	http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusFound)
}

func (h *Handlers) NewPost(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		WriteSuccess(w, map[string]interface{}{"flash": popFlash(w, r)}, http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, ok := h.parsePostForm(w, r)
	if !ok {
		return
	}

	authorID := r.Context().Value("userID").(int64)

	serviceReq := repository.CreatePostRequest{
		AuthorID: authorID,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Body:     req.Body,
		ImgURL:   req.ImgURL,
	}

	_, err := h.PostService.CreatePost(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateTitle) {
			WriteError(w, "Пост с таким заголовком уже существует", http.StatusConflict)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handlers) EditPost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromURL(r)
	if err != nil {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	if r.Method == http.MethodGet {
		// prefill for the edit form
		post, err := h.PostRepo.GetByID(r.Context(), postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				WriteError(w, "Пост не найден", http.StatusNotFound)
			} else {
				WriteError(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}
		WriteSuccess(w, map[string]interface{}{"post": post}, http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, ok := h.parsePostForm(w, r)
	if !ok {
		return
	}

	serviceReq := repository.UpdatePostRequest{
		PostID:   postID,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Body:     req.Body,
		ImgURL:   req.ImgURL,
	}

	if err := h.PostService.UpdatePost(r.Context(), serviceReq); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else if errors.Is(err, repository.ErrDuplicateTitle) {
			WriteError(w, "Пост с таким заголовком уже существует", http.StatusConflict)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusFound)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	postID, err := postIDFromURL(r)
	if err != nil {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Пост не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handlers) parsePostForm(w http.ResponseWriter, r *http.Request) (PostFormRequest, bool) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return PostFormRequest{}, false
	}

	req := PostFormRequest{
		Title:    r.PostFormValue("title"),
		Subtitle: r.PostFormValue("subtitle"),
		Body:     r.PostFormValue("body"),
		ImgURL:   r.PostFormValue("img_url"),
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Все поля поста обязательны", http.StatusBadRequest)
		return PostFormRequest{}, false
	}

	return req, true
}
