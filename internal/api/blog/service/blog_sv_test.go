package blogService

import (
	"errors"
	"testing"

	blogs "ProjectBlog/internal/api/blog"
	blogRepository "ProjectBlog/internal/api/blog/repository"
	"ProjectBlog/internal/entity"
	"ProjectBlog/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type fakeBlogStore struct {
	posts    map[string]entity.BlogPostWithAuthor
	comments map[string]entity.CommentWithAuthor
	order    []string // records mutation ordering for delete tests
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{
		posts:    map[string]entity.BlogPostWithAuthor{},
		comments: map[string]entity.CommentWithAuthor{},
	}
}

func (f *fakeBlogStore) CreatePost(_ context.Context, post entity.BlogPost) error {
	for _, existing := range f.posts {
		if existing.Title == post.Title {
			return blogs.ErrTitleAlreadyExists
		}
	}
	f.posts[post.ID] = entity.BlogPostWithAuthor{BlogPost: post}
	return nil
}

func (f *fakeBlogStore) GetPostByID(_ context.Context, id string) (entity.BlogPostWithAuthor, error) {
	post, ok := f.posts[id]
	if !ok {
		return entity.BlogPostWithAuthor{}, blogs.ErrPostNotFound
	}
	return post, nil
}

func (f *fakeBlogStore) GetAllPosts(_ context.Context) ([]entity.BlogPostWithAuthor, error) {
	posts := make([]entity.BlogPostWithAuthor, 0, len(f.posts))
	for _, post := range f.posts {
		posts = append(posts, post)
	}
	return posts, nil
}

func (f *fakeBlogStore) UpdatePost(_ context.Context, post entity.BlogPost) error {
	existing, ok := f.posts[post.ID]
	if !ok {
		return blogs.ErrPostNotFound
	}
	for id, other := range f.posts {
		if id != post.ID && other.Title == post.Title {
			return blogs.ErrTitleAlreadyExists
		}
	}
	existing.BlogPost = post
	f.posts[post.ID] = existing
	return nil
}

func (f *fakeBlogStore) DeletePost(_ context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return blogs.ErrPostNotFound
	}
	delete(f.posts, id)
	f.order = append(f.order, "delete_post")
	return nil
}

func (f *fakeBlogStore) CreateComment(_ context.Context, comment entity.Comment) error {
	f.comments[comment.ID] = entity.CommentWithAuthor{Comment: comment}
	return nil
}

// commentByID is a test-side lookup; the production interface has no
// single-comment read.
func (f *fakeBlogStore) commentByID(id string) (entity.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return entity.Comment{}, errors.New("comment not stored")
	}
	return comment.Comment, nil
}

func (f *fakeBlogStore) GetCommentsByPostID(_ context.Context, postID string) ([]entity.CommentWithAuthor, error) {
	comments := make([]entity.CommentWithAuthor, 0)
	for _, comment := range f.comments {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (f *fakeBlogStore) DeleteCommentsByPostID(_ context.Context, postID string) error {
	for id, comment := range f.comments {
		if comment.PostID == postID {
			delete(f.comments, id)
		}
	}
	f.order = append(f.order, "delete_comments")
	return nil
}

type fakeBlogRepo struct {
	store *fakeBlogStore
}

func (f *fakeBlogRepo) NewClient(bool) (blogRepository.Client, error) {
	return blogRepository.Client{
		Posts:    f.store,
		Comments: f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestService(store *fakeBlogStore) IBlogsService {
	return NewBlogsService(logrus.New(), &fakeBlogRepo{store: store}, utils.New())
}

func adminUser() entity.UserLoginData {
	return entity.UserLoginData{
		ID:      "01ADMIN000000000000000000A",
		Name:    "Ana",
		Email:   "ana@example.com",
		IsAdmin: true,
	}
}

func TestCreatePostSetsPublishDateAndAuthor(t *testing.T) {
	store := newFakeBlogStore()
	svc := newTestService(store)

	post, err := svc.CreatePost(context.Background(), blogs.CreatePostRequest{
		Title:    "First Post",
		Subtitle: "A beginning",
		Body:     "Hello, world.",
		ImgURL:   "https://example.com/header.jpg",
	}, adminUser())
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if post.ID == "" {
		t.Error("expected a generated post id")
	}
	if post.Date == "" {
		t.Error("expected a formatted publish date")
	}
	if post.AuthorID != "01ADMIN000000000000000000A" {
		t.Errorf("author id = %q, want the creating admin", post.AuthorID)
	}

	stored, err := store.GetPostByID(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("post not persisted: %v", err)
	}
	if stored.Title != "First Post" {
		t.Errorf("stored title = %q, want %q", stored.Title, "First Post")
	}
}

func TestCreatePostDuplicateTitle(t *testing.T) {
	store := newFakeBlogStore()
	svc := newTestService(store)

	req := blogs.CreatePostRequest{
		Title:    "Same Title",
		Subtitle: "one",
		Body:     "body",
		ImgURL:   "https://example.com/a.jpg",
	}
	if _, err := svc.CreatePost(context.Background(), req, adminUser()); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	_, err := svc.CreatePost(context.Background(), req, adminUser())
	if !errors.Is(err, blogs.ErrTitleAlreadyExists) {
		t.Fatalf("CreatePost(duplicate title) = %v, want ErrTitleAlreadyExists", err)
	}
	if len(store.posts) != 1 {
		t.Errorf("post count = %d, want 1", len(store.posts))
	}
}

func TestGetPostByIDNotFound(t *testing.T) {
	svc := newTestService(newFakeBlogStore())

	viewer := adminUser()
	if _, err := svc.GetPostByID(context.Background(), "missing", &viewer); !errors.Is(err, blogs.ErrPostNotFound) {
		t.Errorf("GetPostByID(missing, viewer) = %v, want ErrPostNotFound", err)
	}
	if _, err := svc.GetPostByID(context.Background(), "missing", nil); !errors.Is(err, blogs.ErrPostNotFound) {
		t.Errorf("GetPostByID(missing, anonymous) = %v, want ErrPostNotFound", err)
	}
}

func TestGetPostByIDCommentAllowed(t *testing.T) {
	store := newFakeBlogStore()
	svc := newTestService(store)

	post, err := svc.CreatePost(context.Background(), blogs.CreatePostRequest{
		Title:    "Readable",
		Subtitle: "sub",
		Body:     "body",
		ImgURL:   "https://example.com/a.jpg",
	}, adminUser())
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	anonymous, err := svc.GetPostByID(context.Background(), post.ID, nil)
	if err != nil {
		t.Fatalf("GetPostByID(anonymous): %v", err)
	}
	if anonymous.CommentAllowed {
		t.Error("expected comment_allowed=false for anonymous viewer")
	}

	viewer := entity.UserLoginData{ID: "01READER00000000000000000B", Name: "Ben", Email: "ben@example.com"}
	authed, err := svc.GetPostByID(context.Background(), post.ID, &viewer)
	if err != nil {
		t.Fatalf("GetPostByID(viewer): %v", err)
	}
	if !authed.CommentAllowed {
		t.Error("expected comment_allowed=true for a logged-in viewer")
	}
}

func TestUpdatePostKeepsOriginalDate(t *testing.T) {
	store := newFakeBlogStore()
	svc := newTestService(store)

	post, err := svc.CreatePost(context.Background(), blogs.CreatePostRequest{
		Title:    "Original",
		Subtitle: "sub",
		Body:     "body",
		ImgURL:   "https://example.com/a.jpg",
	}, adminUser())
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if err := svc.UpdatePost(context.Background(), post.ID, blogs.UpdatePostRequest{
		Title:    "Renamed",
		Subtitle: "new sub",
		Body:     "new body",
		ImgURL:   "https://example.com/b.jpg",
	}, adminUser()); err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}

	updated, err := store.GetPostByID(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("GetPostByID: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Errorf("title = %q, want %q", updated.Title, "Renamed")
	}
	if updated.Date != post.Date {
		t.Errorf("date = %q, want the original %q", updated.Date, post.Date)
	}
}

func TestUpdatePostNotFound(t *testing.T) {
	svc := newTestService(newFakeBlogStore())

	err := svc.UpdatePost(context.Background(), "missing", blogs.UpdatePostRequest{
		Title:    "Whatever",
		Subtitle: "sub",
		Body:     "body",
		ImgURL:   "https://example.com/a.jpg",
	}, adminUser())
	if !errors.Is(err, blogs.ErrPostNotFound) {
		t.Fatalf("UpdatePost(missing) = %v, want ErrPostNotFound", err)
	}
}

func TestDeletePostRemovesCommentsFirst(t *testing.T) {
	store := newFakeBlogStore()
	svc := newTestService(store)

	post, err := svc.CreatePost(context.Background(), blogs.CreatePostRequest{
		Title:    "Doomed",
		Subtitle: "sub",
		Body:     "body",
		ImgURL:   "https://example.com/a.jpg",
	}, adminUser())
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	commenter := entity.UserLoginData{ID: "01READER00000000000000000B", Name: "Ben", Email: "ben@example.com"}
	if _, err := svc.CreateComment(context.Background(), post.ID, blogs.CreateCommentRequest{
		Text: "nice post",
	}, commenter); err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	store.order = nil
	if err := svc.DeletePost(context.Background(), post.ID); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}

	if len(store.posts) != 0 {
		t.Errorf("post count = %d, want 0", len(store.posts))
	}
	if len(store.comments) != 0 {
		t.Errorf("comment count = %d, want 0", len(store.comments))
	}
	want := []string{"delete_comments", "delete_post"}
	if len(store.order) != 2 || store.order[0] != want[0] || store.order[1] != want[1] {
		t.Errorf("mutation order = %v, want %v", store.order, want)
	}
}

func TestDeletePostNotFound(t *testing.T) {
	svc := newTestService(newFakeBlogStore())

	if err := svc.DeletePost(context.Background(), "missing"); !errors.Is(err, blogs.ErrPostNotFound) {
		t.Fatalf("DeletePost(missing) = %v, want ErrPostNotFound", err)
	}
}

func TestCreateCommentPersistsReferences(t *testing.T) {
	store := newFakeBlogStore()
	svc := newTestService(store)

	post, err := svc.CreatePost(context.Background(), blogs.CreatePostRequest{
		Title:    "Discussed",
		Subtitle: "sub",
		Body:     "body",
		ImgURL:   "https://example.com/a.jpg",
	}, adminUser())
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	commenter := entity.UserLoginData{ID: "01READER00000000000000000B", Name: "Ben", Email: "ben@example.com"}
	comment, err := svc.CreateComment(context.Background(), post.ID, blogs.CreateCommentRequest{
		Text: "well said",
	}, commenter)
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	if comment.PostID != post.ID {
		t.Errorf("comment post id = %q, want %q", comment.PostID, post.ID)
	}
	if comment.UserID != commenter.ID {
		t.Errorf("comment user id = %q, want %q", comment.UserID, commenter.ID)
	}
	if comment.GravatarURL == "" {
		t.Error("expected a gravatar url on the comment response")
	}

	stored, err := store.commentByID(comment.ID)
	if err != nil {
		t.Fatalf("comment not persisted: %v", err)
	}
	if stored.Text != "well said" {
		t.Errorf("stored text = %q, want %q", stored.Text, "well said")
	}
}

func TestCreateCommentMissingPost(t *testing.T) {
	svc := newTestService(newFakeBlogStore())

	commenter := entity.UserLoginData{ID: "01READER00000000000000000B", Name: "Ben", Email: "ben@example.com"}
	_, err := svc.CreateComment(context.Background(), "missing", blogs.CreateCommentRequest{
		Text: "into the void",
	}, commenter)
	if !errors.Is(err, blogs.ErrPostNotFound) {
		t.Fatalf("CreateComment(missing post) = %v, want ErrPostNotFound", err)
	}
}

func TestGetAllPosts(t *testing.T) {
	store := newFakeBlogStore()
	svc := newTestService(store)

	titles := []string{"One", "Two", "Three"}
	for _, title := range titles {
		if _, err := svc.CreatePost(context.Background(), blogs.CreatePostRequest{
			Title:    title,
			Subtitle: "sub",
			Body:     "body",
			ImgURL:   "https://example.com/a.jpg",
		}, adminUser()); err != nil {
			t.Fatalf("CreatePost(%s): %v", title, err)
		}
	}

	list, err := svc.GetAllPosts(context.Background())
	if err != nil {
		t.Fatalf("GetAllPosts: %v", err)
	}
	if list.Total != 3 {
		t.Errorf("total = %d, want 3", list.Total)
	}
	if len(list.Posts) != 3 {
		t.Errorf("posts = %d, want 3", len(list.Posts))
	}
}
