// Command garagectl runs the query pipeline from a terminal without the HTTP server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(defaultOptions()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
