package main

import (
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"followers/internal/repository/memory"
	"followers/internal/service"
)

func TestRun(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	users := service.NewUserService(memory.NewUserRepository(), service.Options{Logger: logger})

	require.NoError(t, run(users))
	require.Empty(t, hook.AllEntries())

	counts := map[string]int{}
	for _, u := range users.List() {
		counts[u.Username] = u.FollowingCount()
		require.Zero(t, u.FollowerCount())
	}
	require.Equal(t, map[string]int{"Ross": 4, "Jeff": 2, "Jack": 1, "Nate": 1, "Erik": 0}, counts)
}
