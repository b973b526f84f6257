// Command keccaksum prints legacy Keccak-256/512 checksums and HMAC tags.
package main

import (
	"os"

	"github.com/Giulio2002/keccak/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
