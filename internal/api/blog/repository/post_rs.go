package blogRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	blogs "ProjectBlog/internal/api/blog"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const pqUniqueViolation = "23505"

type PostDB struct {
	ID         sql.NullString `db:"id"`
	Title      sql.NullString `db:"title"`
	Subtitle   sql.NullString `db:"subtitle"`
	Date       sql.NullString `db:"date"`
	Body       sql.NullString `db:"body"`
	ImgURL     sql.NullString `db:"img_url"`
	AuthorID   sql.NullString `db:"author_id"`
	AuthorName sql.NullString `db:"author_name"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

func (r *postsRepository) CreatePost(ctx context.Context, post entity.BlogPost) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         post.ID,
		"title":      post.Title,
		"subtitle":   post.Subtitle,
		"date":       post.Date,
		"body":       post.Body,
		"img_url":    post.ImgURL,
		"author_id":  post.AuthorID,
		"created_at": post.CreatedAt,
		"updated_at": post.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreatePost, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreatePost")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"title":      post.Title,
			}).Warn("CreatePost title unique constraint violation")
			return blogs.ErrTitleAlreadyExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating post")
		return err
	}

	return nil
}

func (r *postsRepository) GetPostByID(ctx context.Context, id string) (entity.BlogPostWithAuthor, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var post PostDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetPostByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostByID named query preparation err")
		return entity.BlogPostWithAuthor{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&post); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetPostByID no rows found")
			return entity.BlogPostWithAuthor{}, blogs.ErrPostNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostByID execution err")
		return entity.BlogPostWithAuthor{}, err
	}

	return r.makePost(post), nil
}

func (r *postsRepository) GetAllPosts(ctx context.Context) ([]entity.BlogPostWithAuthor, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var postsList []PostDB

	query, args, err := sqlx.Named(queryGetAllPosts, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllPosts named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &postsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllPosts execution err")
		return nil, err
	}

	var posts []entity.BlogPostWithAuthor
	for _, postDB := range postsList {
		posts = append(posts, r.makePost(postDB))
	}

	return posts, nil
}

func (r *postsRepository) UpdatePost(ctx context.Context, post entity.BlogPost) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         post.ID,
		"title":      post.Title,
		"subtitle":   post.Subtitle,
		"body":       post.Body,
		"img_url":    post.ImgURL,
		"author_id":  post.AuthorID,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdatePost, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePost named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"title":      post.Title,
			}).Warn("UpdatePost title unique constraint violation")
			return blogs.ErrTitleAlreadyExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePost execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePost rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         post.ID,
		}).Warn("UpdatePost no rows affected")
		return blogs.ErrPostNotFound
	}

	return nil
}

func (r *postsRepository) DeletePost(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeletePost, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePost named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePost execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePost rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeletePost no rows affected")
		return blogs.ErrPostNotFound
	}

	return nil
}

func (r *postsRepository) makePost(post PostDB) entity.BlogPostWithAuthor {
	return entity.BlogPostWithAuthor{
		BlogPost: entity.BlogPost{
			ID:        post.ID.String,
			Title:     post.Title.String,
			Subtitle:  post.Subtitle.String,
			Date:      post.Date.String,
			Body:      post.Body.String,
			ImgURL:    post.ImgURL.String,
			AuthorID:  post.AuthorID.String,
			CreatedAt: post.CreatedAt,
			UpdatedAt: post.UpdatedAt,
		},
		AuthorName: post.AuthorName.String,
	}
}
