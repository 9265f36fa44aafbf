package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/spend-tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logrus.WithError(err).Error("spend-tracker exited")
		os.Exit(1)
	}
}
