package repository

import (
	"errors"

	"followers/internal/domain"
)

// ErrUserNotFound is returned for handles the repository never issued.
var ErrUserNotFound = errors.New("user not found")

// UserRepository owns user records and their relationship lists.
// Every method that mutates a single record does so atomically.
type UserRepository interface {
	Create(username, biography string) domain.User
	Get(h domain.Handle) (domain.User, error)
	List() []domain.User
	SetUsername(h domain.Handle, username string) error
	SetBiography(h domain.Handle, biography string) error

	// AddFollowing appends target to h's following list unless present.
	AddFollowing(h, target domain.Handle) (bool, error)
	// RemoveFollowing removes target from h's following list, keeping order.
	RemoveFollowing(h, target domain.Handle) (bool, error)
	AddFollower(h, follower domain.Handle) (bool, error)
	RemoveFollower(h, follower domain.Handle) (bool, error)

	HasFollowing(h, target domain.Handle) (bool, error)
	HasFollower(h, follower domain.Handle) (bool, error)
}
