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

func (s *blogsService) GetAllPosts(ctx context.Context) (*blogs.PostListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	postsList, err := repo.Posts.GetAllPosts(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get posts")
		return nil, err
	}

	response := &blogs.PostListResponse{
		Posts: make([]blogs.PostResponse, 0, len(postsList)),
		Total: len(postsList),
	}

	for _, post := range postsList {
		response.Posts = append(response.Posts, makePostResponse(post))
	}

	return response, nil
}

func (s *blogsService) GetPostByID(ctx context.Context, id string, viewer *entity.UserLoginData) (*blogs.PostDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	post, err := repo.Posts.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrPostNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Post not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get post")
		}
		return nil, err
	}

	commentsList, err := repo.Comments.GetCommentsByPostID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get comments")
		return nil, err
	}

	response := &blogs.PostDetailResponse{
		Post:           makePostResponse(post),
		Comments:       make([]blogs.CommentResponse, 0, len(commentsList)),
		CommentAllowed: viewer != nil,
	}

	for _, comment := range commentsList {
		response.Comments = append(response.Comments, blogs.CommentResponse{
			ID:          comment.ID,
			Text:        comment.Text,
			PostID:      comment.PostID,
			UserID:      comment.UserID,
			AuthorName:  comment.AuthorName,
			GravatarURL: s.utils.GravatarURL(comment.AuthorEmail, 80),
			CreatedAt:   comment.CreatedAt,
		})
	}

	return response, nil
}

func (s *blogsService) CreatePost(ctx context.Context, req blogs.CreatePostRequest, author entity.UserLoginData) (blogs.PostResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.PostResponse{}, err
	}
	defer repo.Rollback()

	postID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return blogs.PostResponse{}, err
	}

	now := time.Now()

	post := entity.BlogPost{
		ID:        postID,
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		Date:      s.utils.FormatPublishDate(now),
		Body:      req.Body,
		ImgURL:    req.ImgURL,
		AuthorID:  author.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Posts.CreatePost(ctx, post); err != nil {
		if errors.Is(err, blogs.ErrTitleAlreadyExists) {
			return blogs.PostResponse{}, blogs.ErrTitleAlreadyExists
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create post")
		return blogs.PostResponse{}, blogs.ErrCreatePost
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.PostResponse{}, blogs.ErrCreatePost
	}

	return makePostResponse(entity.BlogPostWithAuthor{
		BlogPost:   post,
		AuthorName: author.Name,
	}), nil
}

func (s *blogsService) GetPostForEdit(ctx context.Context, id string) (blogs.PostResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.PostResponse{}, err
	}

	post, err := repo.Posts.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrPostNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Post not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get post")
		}
		return blogs.PostResponse{}, err
	}

	return makePostResponse(post), nil
}

func (s *blogsService) UpdatePost(ctx context.Context, id string, req blogs.UpdatePostRequest, author entity.UserLoginData) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := repo.Posts.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrPostNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Post not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get post")
		}
		return err
	}

	// the edit overwrites every mutable field and reassigns authorship to
	// the editing identity; the displayed date stays the original one
	post := entity.BlogPost{
		ID:       existing.ID,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Date:     existing.Date,
		Body:     req.Body,
		ImgURL:   req.ImgURL,
		AuthorID: author.ID,
	}

	if err := repo.Posts.UpdatePost(ctx, post); err != nil {
		if errors.Is(err, blogs.ErrTitleAlreadyExists) || errors.Is(err, blogs.ErrPostNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update post")
		return blogs.ErrUpdatePost
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.ErrUpdatePost
	}

	return nil
}

func (s *blogsService) DeletePost(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	if _, err := repo.Posts.GetPostByID(ctx, id); err != nil {
		if errors.Is(err, blogs.ErrPostNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Post not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get post")
		}
		return err
	}

	// the schema cascades comments on post deletion; deleting them first
	// keeps the ordering explicit regardless of the store's rules
	if err := repo.Comments.DeleteCommentsByPostID(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete comments")
		return blogs.ErrDeletePost
	}

	if err := repo.Posts.DeletePost(ctx, id); err != nil {
		if errors.Is(err, blogs.ErrPostNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete post")
		return blogs.ErrDeletePost
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.ErrDeletePost
	}

	return nil
}

func makePostResponse(post entity.BlogPostWithAuthor) blogs.PostResponse {
	return blogs.PostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Subtitle:   post.Subtitle,
		Date:       post.Date,
		Body:       post.Body,
		ImgURL:     post.ImgURL,
		AuthorID:   post.AuthorID,
		AuthorName: post.AuthorName,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}
}
