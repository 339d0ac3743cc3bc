package entity

import "time"

type BlogPost struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Subtitle  string    `db:"subtitle"`
	Date      string    `db:"date"`
	Body      string    `db:"body"`
	ImgURL    string    `db:"img_url"`
	AuthorID  string    `db:"author_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// BlogPostWithAuthor carries the author name joined in for listings.
type BlogPostWithAuthor struct {
	BlogPost
	AuthorName string `db:"author_name"`
}
