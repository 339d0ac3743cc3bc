package entity

import "time"

type Comment struct {
	ID        string    `db:"id"`
	Text      string    `db:"text"`
	PostID    string    `db:"post_id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

// CommentWithAuthor joins in the commenter's name and email; the email feeds
// the gravatar URL and never leaves the service layer.
type CommentWithAuthor struct {
	Comment
	AuthorName  string `db:"author_name"`
	AuthorEmail string `db:"author_email"`
}
