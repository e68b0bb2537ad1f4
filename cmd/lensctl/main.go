// Command lensctl reads and updates user documents through lenses.
package main

import (
	"os"

	"github.com/authcorp/lenskit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
