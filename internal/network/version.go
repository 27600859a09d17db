package network

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a major.minor.patch release number.
type Version struct {
	Major uint
	Minor uint
	Patch uint
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseVersion parses a "1.2.3" style string. Prefixes and pre-release
// suffixes are rejected.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version format: expected 3 parts, got %d", len(parts))
	}

	names := [3]string{"major", "minor", "patch"}
	var nums [3]uint
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return Version{}, fmt.Errorf("invalid %s version: %w", names[i], err)
		}
		nums[i] = uint(n)
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// SocialNetwork carries static metadata about the running graph.
type SocialNetwork struct {
	version Version
}

func New(version Version) *SocialNetwork {
	return &SocialNetwork{version: version}
}

func (n *SocialNetwork) Version() string { return n.version.String() }
