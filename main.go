package main

import (
	"github.com/runn3rman/runn3rman.github.io/cmd"
)

func main() {
	cmd.Execute()
}
