package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/teamfolio/portfolio-api/internal/core/domain"
	"github.com/teamfolio/portfolio-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID           map[int64]*domain.User
	nextID         int64
	lastActiveOnly bool
	updateErr      error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[int64]*domain.User)}
}

// seed inserts a user directly, bypassing Create.
func (r *stubUserRepo) seed(u *domain.User) *domain.User {
	clone := *u
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.byID[clone.ID] = &clone
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	return r.seed(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) List(_ context.Context, activeOnly bool) ([]*domain.User, error) {
	r.lastActiveOnly = activeOnly
	var out []*domain.User
	for _, u := range r.byID {
		if activeOnly && !u.Active {
			continue
		}
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) SetRole(_ context.Context, id int64, role domain.Role) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *stubUserRepo) SetActive(_ context.Context, id int64, active bool) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Active = active
	return nil
}

func (r *stubUserRepo) SetPassword(_ context.Context, id int64, hash string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *stubUserRepo) SetLastLogin(_ context.Context, id int64, at time.Time) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastLogin = at
	return nil
}

func (r *stubUserRepo) Counts(_ context.Context) (*ports.UserCounts, error) {
	counts := &ports.UserCounts{ByRole: make(map[string]int64)}
	for _, u := range r.byID {
		counts.Total++
		counts.ByRole[string(u.Role)]++
		if u.Active {
			counts.Active++
		} else {
			counts.Inactive++
		}
	}
	return counts, nil
}

type stubTokenStore struct {
	blacklist map[string]bool
	resets    map[string]int64
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{
		blacklist: make(map[string]bool),
		resets:    make(map[string]int64),
	}
}

func (s *stubTokenStore) BlacklistRefresh(_ context.Context, jti string, _ time.Duration) error {
	s.blacklist[jti] = true
	return nil
}

func (s *stubTokenStore) IsRefreshBlacklisted(_ context.Context, jti string) (bool, error) {
	return s.blacklist[jti], nil
}

func (s *stubTokenStore) StoreResetToken(_ context.Context, token string, userID int64, _ time.Duration) error {
	s.resets[token] = userID
	return nil
}

func (s *stubTokenStore) ConsumeResetToken(_ context.Context, token string) (int64, error) {
	userID, ok := s.resets[token]
	if !ok {
		return 0, domain.ErrInvalidResetToken
	}
	delete(s.resets, token)
	return userID, nil
}

type stubMailQueue struct {
	sent []ports.MailMessage
}

func (q *stubMailQueue) Enqueue(msg ports.MailMessage) {
	q.sent = append(q.sent, msg)
}

type stubPostRepo struct {
	byID   map[int64]*domain.Post
	nextID int64
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{byID: make(map[int64]*domain.Post)}
}

func (r *stubPostRepo) seed(p *domain.Post) *domain.Post {
	clone := *p
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.byID[clone.ID] = &clone
	return &clone
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	return r.seed(p), nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id int64) (*domain.Post, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) Update(_ context.Context, p *domain.Post) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrPostNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubPostRepo) List(_ context.Context) ([]*domain.Post, error) {
	var out []*domain.Post
	for _, p := range r.byID {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPostRepo) Search(_ context.Context, query string) ([]*domain.Post, error) {
	var out []*domain.Post
	for _, p := range r.byID {
		if containsFold(p.Title, query) || containsFold(p.Content, query) || containsFold(p.Tags, query) {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubPostRepo) Counts(_ context.Context) (*ports.PostCounts, error) {
	counts := &ports.PostCounts{ByAuthor: make(map[int64]int64)}
	for _, p := range r.byID {
		counts.Total++
		counts.ByAuthor[p.AuthorID]++
		if p.Published {
			counts.Published++
		} else {
			counts.Unpublished++
		}
	}
	return counts, nil
}

type stubProjectRepo struct {
	byID   map[int64]*domain.Project
	nextID int64
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{byID: make(map[int64]*domain.Project)}
}

func (r *stubProjectRepo) seed(p *domain.Project) *domain.Project {
	clone := *p
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.byID[clone.ID] = &clone
	return &clone
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	return r.seed(p), nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id int64) (*domain.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubProjectRepo) List(_ context.Context) ([]*domain.Project, error) {
	var out []*domain.Project
	for _, p := range r.byID {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProjectRepo) Search(_ context.Context, query string) ([]*domain.Project, error) {
	var out []*domain.Project
	for _, p := range r.byID {
		if containsFold(p.Title, query) || containsFold(p.Description, query) || containsFold(p.TechStack, query) {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) Counts(_ context.Context) (*ports.ProjectCounts, error) {
	counts := &ports.ProjectCounts{ByOwner: make(map[int64]int64)}
	for _, p := range r.byID {
		counts.Total++
		counts.ByOwner[p.UserID]++
	}
	return counts, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// containsFold mirrors the case-insensitive substring match of the real
// Mongo regex search.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
