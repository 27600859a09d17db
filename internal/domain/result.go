package domain

// Result reports what a follow or unfollow call did to the relationship list.
type Result string

const (
	ResultFollowed         Result = "followed"
	ResultAlreadyFollowing Result = "already_following"
	ResultUnfollowed       Result = "unfollowed"
	ResultNotFollowing     Result = "not_following"
)

// Changed reports whether the call mutated state.
func (r Result) Changed() bool {
	return r == ResultFollowed || r == ResultUnfollowed
}
