// Catspeak - translate text and bytes to cat sounds
package main

import (
	"os"

	"github.com/catspeak-dev/catspeak/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
