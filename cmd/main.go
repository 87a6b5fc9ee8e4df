package main

import (
	"os"

	"github.com/yungbote/roadmap-backend/internal/cli"
)

func main() {
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
