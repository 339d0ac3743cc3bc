package blogService

import (
	"context"

	blogs "ProjectBlog/internal/api/blog"
	blogRepository "ProjectBlog/internal/api/blog/repository"
	"ProjectBlog/internal/entity"
	"ProjectBlog/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	GetAllPosts(ctx context.Context) (*blogs.PostListResponse, error)
	GetPostByID(ctx context.Context, id string, viewer *entity.UserLoginData) (*blogs.PostDetailResponse, error)
	CreatePost(ctx context.Context, req blogs.CreatePostRequest, author entity.UserLoginData) (blogs.PostResponse, error)
	GetPostForEdit(ctx context.Context, id string) (blogs.PostResponse, error)
	UpdatePost(ctx context.Context, id string, req blogs.UpdatePostRequest, author entity.UserLoginData) error
	DeletePost(ctx context.Context, id string) error
	CreateComment(ctx context.Context, postID string, req blogs.CreateCommentRequest, user entity.UserLoginData) (blogs.CommentResponse, error)
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogRepository.Repository
	utils     utils.IUtils
}

func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogRepository.Repository,
	utils utils.IUtils,
) IBlogsService {
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
		utils:     utils,
	}
}
