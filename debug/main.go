// Command debug loads a .cppgen.yaml configuration file and prints every
// field it resolved to, for sanity-checking a config before trusting it
// against a real run.
package main

import (
	"fmt"
	"os"

	"cppgen/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: debug <config-file>")
		os.Exit(1)
	}

	cfg, err := config.Load(os.Args[1])
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Configuration Debug ===\n")
	fmt.Printf("Config file:   %s\n", os.Args[1])
	fmt.Printf("OutputHeader:  %s\n", cfg.OutputHeader)
	fmt.Printf("OutputSource:  %s\n", cfg.OutputSource)
	fmt.Printf("OutputIndex:   %s\n", cfg.OutputIndex)
	fmt.Printf("IncludeDirs:   %v\n", cfg.IncludeDirs)
	fmt.Printf("Ignore:        %v\n", cfg.Ignore)
}
