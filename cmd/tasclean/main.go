package main

import (
	"fmt"
	"os"

	"github.com/sokinpui/tasclean"
)

func main() {
	if err := tasclean.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
