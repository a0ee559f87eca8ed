package main

import (
	"github.com/issueops/issue-assign/cmd/cli/commands"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
