package main

import (
	"os"

	"github.com/GlebRadaev/jobmart/cmd/jobmartctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
