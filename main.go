package main

import (
	"os"

	"github.com/abhisek/dailylearn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
