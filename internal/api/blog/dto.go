package blogs

import "time"

type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=250"`
	Subtitle string `json:"subtitle" validate:"required,max=250"`
	Body     string `json:"body" validate:"required"`
	ImgURL   string `json:"img_url" validate:"required,url,max=250"`
}

// UpdatePostRequest mirrors the create form: an edit overwrites every
// mutable field, so all of them are required again.
type UpdatePostRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=250"`
	Subtitle string `json:"subtitle" validate:"required,max=250"`
	Body     string `json:"body" validate:"required"`
	ImgURL   string `json:"img_url" validate:"required,url,max=250"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type PostResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle"`
	Date       string    `json:"date"`
	Body       string    `json:"body"`
	ImgURL     string    `json:"img_url"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
	Total int            `json:"total"`
}

type CommentResponse struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	PostID      string    `json:"post_id"`
	UserID      string    `json:"user_id"`
	AuthorName  string    `json:"author_name"`
	GravatarURL string    `json:"gravatar_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type PostDetailResponse struct {
	Post           PostResponse      `json:"post"`
	Comments       []CommentResponse `json:"comments"`
	CommentAllowed bool              `json:"comment_allowed"`
}
