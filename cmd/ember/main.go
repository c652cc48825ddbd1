// Command ember is the CLI entry point for the Ember interpreter.
package main

import (
	"os"

	"github.com/emberlang/ember/cmd/ember/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
