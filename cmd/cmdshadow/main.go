package main

import (
	"os"

	"github.com/cmdshadow/cmdshadow/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
