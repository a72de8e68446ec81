package main

import (
	"os"

	"gitsniff/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
