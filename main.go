package main

import (
	"os"

	"github.com/ffalor/standup/pkg/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}
