package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/actdeck/cmd/actdeck"
	"github.com/arthur-debert/actdeck/pkg/output/styles"
)

func main() {
	rootCmd := actdeck.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
