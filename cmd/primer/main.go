// Package main provides the Go Primer CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Go Primer %s\n", version)
		return
	}

	fmt.Println("Go Primer - Educational Walkthroughs in Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Walkthroughs:")
	fmt.Println("  go run ./cmd/hello        Records, functions, error handling")
	fmt.Println("  go run ./cmd/tensor-tour  Tensors, decompositions, autodiff, NN training")
}
