// Package main is the object-oriented hello-world walkthrough: validated
// records, arithmetic, string and list processing, and error handling.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/born-ml/primer/basics"
	"github.com/born-ml/primer/person"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "unexpected error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("Hello World!")
	fmt.Println("Starting the Go walkthrough.")
	fmt.Println()

	if err := functionDemos(); err != nil {
		return err
	}
	if err := recordDemo(); err != nil {
		return err
	}
	errorHandlingDemo()

	fmt.Println()
	fmt.Println("Program finished successfully.")
	return nil
}

func functionDemos() error {
	fmt.Println("=== Function Demonstrations ===")

	sum := basics.Add(10, 20)
	fmt.Printf("Add called with a=10, b=20\n")
	fmt.Printf("Result of Add: %d\n\n", sum)

	report := basics.Describe("learning Go")
	fmt.Printf("Describe called with text %q\n", report.Text)
	fmt.Printf("Text length: %d characters\n", report.Length)
	fmt.Printf("Upper-cased: %s\n\n", report.Upper)

	numbers := []int{1, 2, 3, 4, 5, 10, 15, 20}
	stats, err := basics.Aggregate(numbers)
	if err != nil {
		return err
	}
	fmt.Printf("Aggregate called with list of size %d\n", len(numbers))
	fmt.Printf("List contents: %v\n", numbers)
	fmt.Printf("Sum: %d\n", stats.Sum)
	fmt.Printf("Mean: %.2f\n", stats.Mean)
	fmt.Printf("Max: %d\n", stats.Max)
	fmt.Printf("Min: %d\n", stats.Min)
	fmt.Println()
	return nil
}

func recordDemo() error {
	fmt.Println("=== Record Type Demonstration ===")

	person1, err := person.New("Taro Tanaka", 25)
	if err != nil {
		return err
	}
	person2, err := person.New("Hanako Sato", 30)
	if err != nil {
		return err
	}

	fmt.Println(person1.Greet())
	fmt.Println(person2.Greet())
	fmt.Println()

	fmt.Println("Incrementing ages...")
	fmt.Printf("%s is now %d years old.\n", person1.Name(), person1.IncrementAge())
	fmt.Printf("%s is now %d years old.\n", person2.Name(), person2.IncrementAge())
	fmt.Println()

	fmt.Println("After the change:")
	fmt.Println(person1.Greet())
	fmt.Println(person2.Greet())
	fmt.Println()

	fmt.Println("Debug representations:")
	fmt.Printf("person1: %v\n", person1)
	fmt.Printf("person2: %v\n", person2)
	fmt.Println()

	fmt.Println("Collected introductions:")
	for _, p := range []*person.Person{person1, person2} {
		fmt.Println(p.Greet())
	}
	fmt.Println()
	return nil
}

// errorHandlingDemo provokes the validation failures on purpose; the caught
// errors are part of the narration, not failures of the walkthrough.
func errorHandlingDemo() {
	fmt.Println("=== Error Handling Demonstration ===")

	if _, err := person.New("", -5); err != nil {
		fmt.Printf("Caught expected error: %v\n", err)
		if errors.Is(err, person.ErrEmptyName) {
			fmt.Println("(the empty name was reported first)")
		}
	}

	if _, err := basics.ParseAndAdd("text", "10"); err != nil {
		fmt.Printf("Caught expected error: %v\n", err)
	}
}
