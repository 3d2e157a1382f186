package main

import (
	"os"

	"github.com/katalvlaran/heldkarp/cmd"
)

// version can be set during build with -ldflags.
var version = "dev"

func main() {
	os.Exit(cmd.Execute(version))
}
