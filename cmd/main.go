package main

import (
	"os"

	"truth-analysis-service/cmd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
