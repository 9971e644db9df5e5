package service

import (
	"context"
	"time"

	"bloghub/internal/model"
)

// =============================================================================
// MOCK REPOSITORIES
// =============================================================================
//
// Services depend on the repository INTERFACES, so unit tests swap in mocks
// with per-test behavior supplied through function fields. A nil field means
// "sane default" (usually the not-found/zero case).

type mockUserRepo struct {
	createFn           func(ctx context.Context, user *model.User) error
	getByIDFn          func(ctx context.Context, id int64) (*model.User, error)
	getByUsernameFn    func(ctx context.Context, username string) (*model.User, error)
	existsByUsernameFn func(ctx context.Context, username string) (bool, error)
	getSummariesFn     func(ctx context.Context, ids []int64) (map[int64]model.UserSummary, error)

	createCalls []*model.User
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	m.createCalls = append(m.createCalls, user)
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	user.ID = int64(len(m.createCalls))
	user.CreatedAt = time.Now()
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameFn != nil {
		return m.existsByUsernameFn(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepo) GetSummaries(ctx context.Context, ids []int64) (map[int64]model.UserSummary, error) {
	if m.getSummariesFn != nil {
		return m.getSummariesFn(ctx, ids)
	}
	result := make(map[int64]model.UserSummary, len(ids))
	for _, id := range ids {
		result[id] = model.UserSummary{ID: id, Username: "user"}
	}
	return result, nil
}

type mockGroupRepo struct {
	createFn       func(ctx context.Context, group *model.Group) error
	getBySlugFn    func(ctx context.Context, slug string) (*model.Group, error)
	listFn         func(ctx context.Context) ([]model.Group, error)
	deleteFn       func(ctx context.Context, groupID int64) error
	getSummariesFn func(ctx context.Context, ids []int64) (map[int64]model.GroupSummary, error)

	deleteCalls []int64
}

func (m *mockGroupRepo) Create(ctx context.Context, group *model.Group) error {
	if m.createFn != nil {
		return m.createFn(ctx, group)
	}
	group.ID = 1
	group.CreatedAt = time.Now()
	return nil
}

func (m *mockGroupRepo) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, model.ErrGroupNotFound
}

func (m *mockGroupRepo) List(ctx context.Context) ([]model.Group, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []model.Group{}, nil
}

func (m *mockGroupRepo) Delete(ctx context.Context, groupID int64) error {
	m.deleteCalls = append(m.deleteCalls, groupID)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, groupID)
	}
	return nil
}

func (m *mockGroupRepo) GetSummaries(ctx context.Context, ids []int64) (map[int64]model.GroupSummary, error) {
	if m.getSummariesFn != nil {
		return m.getSummariesFn(ctx, ids)
	}
	result := make(map[int64]model.GroupSummary, len(ids))
	for _, id := range ids {
		result[id] = model.GroupSummary{ID: id, Title: "group", Slug: "group"}
	}
	return result, nil
}

type mockPostRepo struct {
	createFn         func(ctx context.Context, post *model.Post) error
	getByIDFn        func(ctx context.Context, postID int64) (*model.Post, error)
	updateFn         func(ctx context.Context, post *model.Post) error
	countAllFn       func(ctx context.Context) (int, error)
	listAllFn        func(ctx context.Context, offset, limit int) ([]model.Post, error)
	countByGroupFn   func(ctx context.Context, groupID int64) (int, error)
	listByGroupFn    func(ctx context.Context, groupID int64, offset, limit int) ([]model.Post, error)
	countByAuthorFn  func(ctx context.Context, userID int64) (int, error)
	listByAuthorFn   func(ctx context.Context, userID int64, offset, limit int) ([]model.Post, error)
	countByAuthorsFn func(ctx context.Context, userIDs []int64) (int, error)
	listByAuthorsFn  func(ctx context.Context, userIDs []int64, offset, limit int) ([]model.Post, error)

	createCalls []*model.Post
	updateCalls []*model.Post
}

func (m *mockPostRepo) Create(ctx context.Context, post *model.Post) error {
	m.createCalls = append(m.createCalls, post)
	if m.createFn != nil {
		return m.createFn(ctx, post)
	}
	post.ID = int64(len(m.createCalls))
	post.CreatedAt = time.Now()
	return nil
}

func (m *mockPostRepo) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, postID)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepo) Update(ctx context.Context, post *model.Post) error {
	m.updateCalls = append(m.updateCalls, post)
	if m.updateFn != nil {
		return m.updateFn(ctx, post)
	}
	return nil
}

func (m *mockPostRepo) CountAll(ctx context.Context) (int, error) {
	if m.countAllFn != nil {
		return m.countAllFn(ctx)
	}
	return 0, nil
}

func (m *mockPostRepo) ListAll(ctx context.Context, offset, limit int) ([]model.Post, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx, offset, limit)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepo) CountByGroup(ctx context.Context, groupID int64) (int, error) {
	if m.countByGroupFn != nil {
		return m.countByGroupFn(ctx, groupID)
	}
	return 0, nil
}

func (m *mockPostRepo) ListByGroup(ctx context.Context, groupID int64, offset, limit int) ([]model.Post, error) {
	if m.listByGroupFn != nil {
		return m.listByGroupFn(ctx, groupID, offset, limit)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepo) CountByAuthor(ctx context.Context, userID int64) (int, error) {
	if m.countByAuthorFn != nil {
		return m.countByAuthorFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockPostRepo) ListByAuthor(ctx context.Context, userID int64, offset, limit int) ([]model.Post, error) {
	if m.listByAuthorFn != nil {
		return m.listByAuthorFn(ctx, userID, offset, limit)
	}
	return []model.Post{}, nil
}

func (m *mockPostRepo) CountByAuthors(ctx context.Context, userIDs []int64) (int, error) {
	if m.countByAuthorsFn != nil {
		return m.countByAuthorsFn(ctx, userIDs)
	}
	return 0, nil
}

func (m *mockPostRepo) ListByAuthors(ctx context.Context, userIDs []int64, offset, limit int) ([]model.Post, error) {
	if m.listByAuthorsFn != nil {
		return m.listByAuthorsFn(ctx, userIDs, offset, limit)
	}
	return []model.Post{}, nil
}

type mockCommentRepo struct {
	createFn      func(ctx context.Context, comment *model.Comment) error
	countByPostFn func(ctx context.Context, postID int64) (int, error)
	listByPostFn  func(ctx context.Context, postID int64, offset, limit int) ([]model.Comment, error)

	createCalls []*model.Comment
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	m.createCalls = append(m.createCalls, comment)
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	comment.ID = int64(len(m.createCalls))
	comment.CreatedAt = time.Now()
	return nil
}

func (m *mockCommentRepo) CountByPost(ctx context.Context, postID int64) (int, error) {
	if m.countByPostFn != nil {
		return m.countByPostFn(ctx, postID)
	}
	return 0, nil
}

func (m *mockCommentRepo) ListByPost(ctx context.Context, postID int64, offset, limit int) ([]model.Comment, error) {
	if m.listByPostFn != nil {
		return m.listByPostFn(ctx, postID, offset, limit)
	}
	return []model.Comment{}, nil
}

type mockFollowRepo struct {
	createFn         func(ctx context.Context, followerID, followeeID int64) (bool, error)
	deleteFn         func(ctx context.Context, followerID, followeeID int64) (bool, error)
	existsFn         func(ctx context.Context, followerID, followeeID int64) (bool, error)
	getFolloweeIDsFn func(ctx context.Context, userID int64) ([]int64, error)

	createCalls [][2]int64
	deleteCalls [][2]int64
}

func (m *mockFollowRepo) Create(ctx context.Context, followerID, followeeID int64) (bool, error) {
	m.createCalls = append(m.createCalls, [2]int64{followerID, followeeID})
	if m.createFn != nil {
		return m.createFn(ctx, followerID, followeeID)
	}
	return true, nil
}

func (m *mockFollowRepo) Delete(ctx context.Context, followerID, followeeID int64) (bool, error) {
	m.deleteCalls = append(m.deleteCalls, [2]int64{followerID, followeeID})
	if m.deleteFn != nil {
		return m.deleteFn(ctx, followerID, followeeID)
	}
	return false, nil
}

func (m *mockFollowRepo) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, followerID, followeeID)
	}
	return false, nil
}

func (m *mockFollowRepo) GetFolloweeIDs(ctx context.Context, userID int64) ([]int64, error) {
	if m.getFolloweeIDsFn != nil {
		return m.getFolloweeIDsFn(ctx, userID)
	}
	return []int64{}, nil
}

// makePosts builds n posts ordered newest first, matching repository output.
func makePosts(n int, authorID int64) []model.Post {
	posts := make([]model.Post, n)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		posts[i] = model.Post{
			ID:        int64(n - i),
			UserID:    authorID,
			Text:      "post text",
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return posts
}
