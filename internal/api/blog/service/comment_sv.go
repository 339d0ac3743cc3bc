package blogService

import (
	"errors"
	"time"

	blogs "ProjectBlog/internal/api/blog"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *blogsService) CreateComment(ctx context.Context, postID string, req blogs.CreateCommentRequest, user entity.UserLoginData) (blogs.CommentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.CommentResponse{}, err
	}
	defer repo.Rollback()

	// a comment must reference a live post at creation time
	if _, err := repo.Posts.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, blogs.ErrPostNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"post_id":    postID,
			}).Warn("Comment submitted for a missing post")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"post_id":    postID,
				"error":      err.Error(),
			}).Error("Failed to get post")
		}
		return blogs.CommentResponse{}, err
	}

	commentID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return blogs.CommentResponse{}, err
	}

	comment := entity.Comment{
		ID:        commentID,
		Text:      req.Text,
		PostID:    postID,
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}

	if err := repo.Comments.CreateComment(ctx, comment); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create comment")
		return blogs.CommentResponse{}, blogs.ErrCreateComment
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.CommentResponse{}, blogs.ErrCreateComment
	}

	return blogs.CommentResponse{
		ID:          comment.ID,
		Text:        comment.Text,
		PostID:      comment.PostID,
		UserID:      comment.UserID,
		AuthorName:  user.Name,
		GravatarURL: s.utils.GravatarURL(user.Email, 80),
		CreatedAt:   comment.CreatedAt,
	}, nil
}
