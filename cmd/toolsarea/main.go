// Command toolsarea replays tools area scenarios and validates the
// configuration and color scheme files a host ships with.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/toolsarea/cmd/toolsarea/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
