package models

type User struct {
	ID           int64  `json:"userId" db:"user_id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Name         string `json:"name" db:"name"`
}

type Post struct {
	ID       int64  `json:"postId" db:"post_id"`
	AuthorID int64  `json:"authorId" db:"author_id"`
	Title    string `json:"title" db:"title"`
	Subtitle string `json:"subtitle" db:"subtitle"`
	Date     string `json:"date" db:"date"`
	Body     string `json:"body" db:"body"`
	ImgURL   string `json:"imgUrl" db:"img_url"`
}

type Comment struct {
	ID       int64  `json:"commentId" db:"comment_id"`
	Text     string `json:"text" db:"text"`
	PostID   int64  `json:"postId" db:"post_id"`
	AuthorID int64  `json:"authorId" db:"author_id"`
}
