package main

import (
	"fmt"
	"os"

	"skillswap-hub/internal/cli"
	"skillswap-hub/internal/logger"
)

func main() {
	defer logger.Sync()
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
