package memory

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"followers/internal/domain"
	"followers/internal/repository"
)

type record struct {
	mu        sync.Mutex
	id        uuid.UUID
	createdAt time.Time
	username  string
	biography string
	following []domain.Handle
	followers []domain.Handle
}

// UserRepository is an arena of user records addressed by their index.
type UserRepository struct {
	mu      sync.RWMutex
	records []*record
}

func NewUserRepository() repository.UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(username, biography string) domain.User {
	rec := &record{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		username:  username,
		biography: biography,
	}

	r.mu.Lock()
	r.records = append(r.records, rec)
	h := domain.Handle(len(r.records) - 1)
	r.mu.Unlock()

	return snapshot(h, rec)
}

func (r *UserRepository) Get(h domain.Handle) (domain.User, error) {
	rec, err := r.lookup(h)
	if err != nil {
		return domain.User{}, err
	}
	return snapshot(h, rec), nil
}

func (r *UserRepository) List() []domain.User {
	r.mu.RLock()
	recs := slices.Clone(r.records)
	r.mu.RUnlock()

	users := make([]domain.User, len(recs))
	for i, rec := range recs {
		users[i] = snapshot(domain.Handle(i), rec)
	}
	return users
}

func (r *UserRepository) SetUsername(h domain.Handle, username string) error {
	return r.update(h, func(rec *record) { rec.username = username })
}

func (r *UserRepository) SetBiography(h domain.Handle, biography string) error {
	return r.update(h, func(rec *record) { rec.biography = biography })
}

func (r *UserRepository) AddFollowing(h, target domain.Handle) (bool, error) {
	if _, err := r.lookup(target); err != nil {
		return false, err
	}
	return r.mutateList(h, func(rec *record) *[]domain.Handle { return &rec.following }, target, appendUnique)
}

func (r *UserRepository) RemoveFollowing(h, target domain.Handle) (bool, error) {
	return r.mutateList(h, func(rec *record) *[]domain.Handle { return &rec.following }, target, remove)
}

func (r *UserRepository) AddFollower(h, follower domain.Handle) (bool, error) {
	if _, err := r.lookup(follower); err != nil {
		return false, err
	}
	return r.mutateList(h, func(rec *record) *[]domain.Handle { return &rec.followers }, follower, appendUnique)
}

func (r *UserRepository) RemoveFollower(h, follower domain.Handle) (bool, error) {
	return r.mutateList(h, func(rec *record) *[]domain.Handle { return &rec.followers }, follower, remove)
}

func (r *UserRepository) HasFollowing(h, target domain.Handle) (bool, error) {
	rec, err := r.lookup(h)
	if err != nil {
		return false, err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return slices.Contains(rec.following, target), nil
}

func (r *UserRepository) HasFollower(h, follower domain.Handle) (bool, error) {
	rec, err := r.lookup(h)
	if err != nil {
		return false, err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return slices.Contains(rec.followers, follower), nil
}

func (r *UserRepository) lookup(h domain.Handle) (*record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if h < 0 || int(h) >= len(r.records) {
		return nil, fmt.Errorf("handle %d: %w", h, repository.ErrUserNotFound)
	}
	return r.records[h], nil
}

func (r *UserRepository) update(h domain.Handle, fn func(rec *record)) error {
	rec, err := r.lookup(h)
	if err != nil {
		return err
	}
	rec.mu.Lock()
	fn(rec)
	rec.mu.Unlock()
	return nil
}

// mutateList runs op on one of h's lists while holding only h's lock.
func (r *UserRepository) mutateList(
	h domain.Handle,
	list func(rec *record) *[]domain.Handle,
	other domain.Handle,
	op func(s *[]domain.Handle, v domain.Handle) bool,
) (bool, error) {
	rec, err := r.lookup(h)
	if err != nil {
		return false, err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return op(list(rec), other), nil
}

func appendUnique(s *[]domain.Handle, v domain.Handle) bool {
	if slices.Contains(*s, v) {
		return false
	}
	*s = append(*s, v)
	return true
}

func remove(s *[]domain.Handle, v domain.Handle) bool {
	i := slices.Index(*s, v)
	if i < 0 {
		return false
	}
	*s = slices.Delete(*s, i, i+1)
	return true
}

func snapshot(h domain.Handle, rec *record) domain.User {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return domain.User{
		Handle:    h,
		ID:        rec.id,
		Username:  rec.username,
		Biography: rec.biography,
		CreatedAt: rec.createdAt,
		Following: slices.Clone(rec.following),
		Followers: slices.Clone(rec.followers),
	}
}
