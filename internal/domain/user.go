package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Handle identifies a user record held by a repository.
type Handle int

// User is a point-in-time copy of a user record and its relationships.
type User struct {
	Handle    Handle
	ID        uuid.UUID
	Username  string
	Biography string
	CreatedAt time.Time
	Following []Handle
	Followers []Handle
}

func (u User) FollowingCount() int { return len(u.Following) }
func (u User) FollowerCount() int  { return len(u.Followers) }

// Debug renders the multi-line diagnostic dump of the user.
func (u User) Debug() string {
	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  Username: %s\n", u.Username)
	fmt.Fprintf(&b, "  Biography: %s\n", u.Biography)
	fmt.Fprintf(&b, "  Followers: %d\n", u.FollowerCount())
	fmt.Fprintf(&b, "  Following: %d\n", u.FollowingCount())
	b.WriteString("}\n")
	return b.String()
}
