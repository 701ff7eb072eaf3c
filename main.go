package main

import (
	"os"

	"colorsearch/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
