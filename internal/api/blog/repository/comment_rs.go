package blogRepository

import (
	"context"
	"database/sql"
	"time"

	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CommentDB struct {
	ID          sql.NullString `db:"id"`
	Text        sql.NullString `db:"text"`
	PostID      sql.NullString `db:"post_id"`
	UserID      sql.NullString `db:"user_id"`
	AuthorName  sql.NullString `db:"author_name"`
	AuthorEmail sql.NullString `db:"author_email"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r *commentsRepository) CreateComment(ctx context.Context, comment entity.Comment) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         comment.ID,
		"text":       comment.Text,
		"post_id":    comment.PostID,
		"user_id":    comment.UserID,
		"created_at": comment.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateComment")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating comment")
		return err
	}

	return nil
}

func (r *commentsRepository) GetCommentsByPostID(ctx context.Context, postID string) ([]entity.CommentWithAuthor, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var commentsList []CommentDB

	argsKV := map[string]interface{}{
		"post_id": postID,
	}

	query, args, err := sqlx.Named(queryGetCommentsByPostID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByPostID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &commentsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByPostID execution err")
		return nil, err
	}

	var comments []entity.CommentWithAuthor
	for _, commentDB := range commentsList {
		comments = append(comments, entity.CommentWithAuthor{
			Comment: entity.Comment{
				ID:        commentDB.ID.String,
				Text:      commentDB.Text.String,
				PostID:    commentDB.PostID.String,
				UserID:    commentDB.UserID.String,
				CreatedAt: commentDB.CreatedAt,
			},
			AuthorName:  commentDB.AuthorName.String,
			AuthorEmail: commentDB.AuthorEmail.String,
		})
	}

	return comments, nil
}

func (r *commentsRepository) DeleteCommentsByPostID(ctx context.Context, postID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"post_id": postID,
	}

	query, args, err := sqlx.Named(queryDeleteCommentsByPostID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCommentsByPostID named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	// zero rows is fine; a post without comments still deletes cleanly
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCommentsByPostID execution err")
		return err
	}

	return nil
}
