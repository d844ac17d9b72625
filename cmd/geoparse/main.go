package main

import (
	"fmt"
	"os"

	"github.com/marcos-nsantos/geocoord-backend/internal/cli"
)

var version = "dev"

func main() {
	cli.Version = version

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
