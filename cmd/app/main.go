package main

import (
	"os"

	"crisisAlert/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
