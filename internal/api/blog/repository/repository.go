package blogRepository

import (
	"ProjectBlog/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Posts:    &postsRepository{q: sqlExecutor, log: r.log},
		Comments: &commentsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Posts interface {
		CreatePost(ctx context.Context, post entity.BlogPost) error
		GetPostByID(ctx context.Context, id string) (entity.BlogPostWithAuthor, error)
		GetAllPosts(ctx context.Context) ([]entity.BlogPostWithAuthor, error)
		UpdatePost(ctx context.Context, post entity.BlogPost) error
		DeletePost(ctx context.Context, id string) error
	}

	Comments interface {
		CreateComment(ctx context.Context, comment entity.Comment) error
		GetCommentsByPostID(ctx context.Context, postID string) ([]entity.CommentWithAuthor, error)
		DeleteCommentsByPostID(ctx context.Context, postID string) error
	}

	Commit   func() error
	Rollback func() error
}

type postsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type commentsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
