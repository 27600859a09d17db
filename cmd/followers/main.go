package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"followers/internal/config"
	"followers/internal/network"
	"followers/internal/repository/memory"
	"followers/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		logrus.Fatalf("setup logger: %v", err)
	}

	version, err := network.ParseVersion(cfg.Network.Version)
	if err != nil {
		logger.Fatalf("parse network version: %v", err)
	}
	net := network.New(version)
	logger.Infof("social network %s (reciprocal=%t)", net.Version(), cfg.Graph.Reciprocal)

	users := service.NewUserService(memory.NewUserRepository(), service.Options{
		Reciprocal: cfg.Graph.Reciprocal,
		Logger:     logger,
	})

	if err := run(users); err != nil {
		logger.Fatalf("demo: %v", err)
	}
}

func run(users service.UserService) error {
	ross := users.Create("Ross", "Bio 1")
	jeff := users.Create("Jeff", "Bio 2")
	jack := users.Create("Jack", "Bio 3")
	nate := users.Create("Nate", "Bio 4")
	erik := users.Create("Erik", "Bio 5")

	if _, err := users.FollowAll(ross.Handle, jeff.Handle, jack.Handle, nate.Handle, erik.Handle); err != nil {
		return err
	}
	if _, err := users.FollowAll(jeff.Handle, ross.Handle, jack.Handle); err != nil {
		return err
	}
	if _, err := users.Follow(jack.Handle, erik.Handle); err != nil {
		return err
	}
	if _, err := users.Follow(nate.Handle, jeff.Handle); err != nil {
		return err
	}

	dump, err := users.Dump(ross.Handle)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(os.Stdout, dump)
	return err
}
