package main

import (
	"os"

	"crparse/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
