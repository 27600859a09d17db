package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"followers/internal/domain"
	"followers/internal/repository"
)

// UserService exposes the user entity: profile fields and follow relationships.
type UserService interface {
	Create(username, biography string) domain.User
	Get(h domain.Handle) (domain.User, error)
	List() []domain.User

	ID(h domain.Handle) (uuid.UUID, error)
	CreatedAt(h domain.Handle) (time.Time, error)
	Username(h domain.Handle) (string, error)
	Biography(h domain.Handle) (string, error)
	FollowerCount(h domain.Handle) (int, error)
	FollowingCount(h domain.Handle) (int, error)

	SetUsername(h domain.Handle, username string) error
	SetBiography(h domain.Handle, biography string) error

	Follow(h, other domain.Handle) (domain.Result, error)
	FollowAll(h domain.Handle, others ...domain.Handle) ([]domain.Result, error)
	Unfollow(h, other domain.Handle) (domain.Result, error)
	UnfollowAll(h domain.Handle, others ...domain.Handle) ([]domain.Result, error)
	AddFollower(h, follower domain.Handle) (domain.Result, error)

	IsFollowing(h, other domain.Handle) (bool, error)
	IsFollowedBy(h, other domain.Handle) (bool, error)

	Dump(h domain.Handle) (string, error)
}

// Options tunes relationship bookkeeping.
type Options struct {
	// Reciprocal also records the caller in the target's followers list.
	Reciprocal bool
	Logger     *logrus.Logger
}

type userService struct {
	users      repository.UserRepository
	reciprocal bool
	logger     *logrus.Logger
}

func NewUserService(users repository.UserRepository, opts Options) UserService {
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	return &userService{
		users:      users,
		reciprocal: opts.Reciprocal,
		logger:     opts.Logger,
	}
}

func (s *userService) Create(username, biography string) domain.User {
	user := s.users.Create(username, biography)
	s.logger.WithFields(logrus.Fields{
		"handle": user.Handle,
		"id":     user.ID,
	}).Debugf("created user %q", user.Username)
	return user
}

func (s *userService) Get(h domain.Handle) (domain.User, error) {
	user, err := s.users.Get(h)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userService) List() []domain.User {
	return s.users.List()
}

func (s *userService) ID(h domain.Handle) (uuid.UUID, error) {
	user, err := s.Get(h)
	return user.ID, err
}

func (s *userService) CreatedAt(h domain.Handle) (time.Time, error) {
	user, err := s.Get(h)
	return user.CreatedAt, err
}

func (s *userService) Username(h domain.Handle) (string, error) {
	user, err := s.Get(h)
	return user.Username, err
}

func (s *userService) Biography(h domain.Handle) (string, error) {
	user, err := s.Get(h)
	return user.Biography, err
}

func (s *userService) FollowerCount(h domain.Handle) (int, error) {
	user, err := s.Get(h)
	return user.FollowerCount(), err
}

func (s *userService) FollowingCount(h domain.Handle) (int, error) {
	user, err := s.Get(h)
	return user.FollowingCount(), err
}

func (s *userService) SetUsername(h domain.Handle, username string) error {
	if err := s.users.SetUsername(h, username); err != nil {
		return fmt.Errorf("set username: %w", err)
	}
	return nil
}

func (s *userService) SetBiography(h domain.Handle, biography string) error {
	if err := s.users.SetBiography(h, biography); err != nil {
		return fmt.Errorf("set biography: %w", err)
	}
	return nil
}

func (s *userService) Follow(h, other domain.Handle) (domain.Result, error) {
	added, err := s.users.AddFollowing(h, other)
	if err != nil {
		return "", fmt.Errorf("follow: %w", err)
	}
	if !added {
		s.notice(h, other, "already following")
		return domain.ResultAlreadyFollowing, nil
	}

	if s.reciprocal {
		if _, err := s.users.AddFollower(other, h); err != nil {
			return "", fmt.Errorf("record follower: %w", err)
		}
	}
	return domain.ResultFollowed, nil
}

func (s *userService) FollowAll(h domain.Handle, others ...domain.Handle) ([]domain.Result, error) {
	results := make([]domain.Result, 0, len(others))
	for _, other := range others {
		res, err := s.Follow(h, other)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (s *userService) Unfollow(h, other domain.Handle) (domain.Result, error) {
	removed, err := s.users.RemoveFollowing(h, other)
	if err != nil {
		return "", fmt.Errorf("unfollow: %w", err)
	}
	if !removed {
		s.notice(h, other, "not following")
		return domain.ResultNotFollowing, nil
	}

	if s.reciprocal {
		if _, err := s.users.RemoveFollower(other, h); err != nil {
			return "", fmt.Errorf("remove follower: %w", err)
		}
	}
	return domain.ResultUnfollowed, nil
}

func (s *userService) UnfollowAll(h domain.Handle, others ...domain.Handle) ([]domain.Result, error) {
	results := make([]domain.Result, 0, len(others))
	for _, other := range others {
		res, err := s.Unfollow(h, other)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (s *userService) AddFollower(h, follower domain.Handle) (domain.Result, error) {
	added, err := s.users.AddFollower(h, follower)
	if err != nil {
		return "", fmt.Errorf("add follower: %w", err)
	}
	if !added {
		s.notice(follower, h, "already following")
		return domain.ResultAlreadyFollowing, nil
	}
	return domain.ResultFollowed, nil
}

func (s *userService) IsFollowing(h, other domain.Handle) (bool, error) {
	ok, err := s.users.HasFollowing(h, other)
	if err != nil {
		return false, fmt.Errorf("is following: %w", err)
	}
	return ok, nil
}

func (s *userService) IsFollowedBy(h, other domain.Handle) (bool, error) {
	ok, err := s.users.HasFollower(h, other)
	if err != nil {
		return false, fmt.Errorf("is followed by: %w", err)
	}
	return ok, nil
}

func (s *userService) Dump(h domain.Handle) (string, error) {
	user, err := s.Get(h)
	if err != nil {
		return "", err
	}
	return user.Debug(), nil
}

// notice logs a soft no-op. Must be called with no user lock held.
func (s *userService) notice(h, other domain.Handle, msg string) {
	entry := s.logger.WithFields(logrus.Fields{
		"user":   h,
		"target": other,
	})
	if name, err := s.Username(other); err == nil {
		entry = entry.WithField("target_username", name)
	}
	entry.Warn(msg)
}
