// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package person provides the validated record type used by the
// object-oriented walkthrough in cmd/hello.
//
// A Person holds a non-empty trimmed name and a non-negative age. Both
// invariants are checked at construction and re-checked by every mutating
// operation, so a *Person obtained from New is always valid.
//
// Example:
//
//	p, err := person.New("Taro Tanaka", 25)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.Greet())
package person

import (
	"fmt"
	"strings"
)

// Person holds a validated name and age.
//
// The zero value is not useful; construct with New so the invariants
// (non-empty trimmed name, non-negative age) hold.
type Person struct {
	name string
	age  int
}

// New creates a Person after validating its fields.
//
// The name is trimmed of surrounding whitespace before validation. New fails
// with an error wrapping ErrEmptyName when the trimmed name is empty, and
// with an error wrapping ErrNegativeAge when age is negative. The returned
// error identifies the operation and the offending arguments.
//
// Example:
//
//	p, err := person.New("  Hanako Sato  ", 30)
//	// p.Name() == "Hanako Sato"
func New(name string, age int) (*Person, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("new person (name=%q, age=%d): %w", name, age, ErrEmptyName)
	}
	if age < 0 {
		return nil, fmt.Errorf("new person (name=%q, age=%d): %w", name, age, ErrNegativeAge)
	}
	return &Person{name: trimmed, age: age}, nil
}

// Name returns the trimmed name.
func (p *Person) Name() string {
	return p.name
}

// Age returns the current age.
func (p *Person) Age() int {
	return p.age
}

// SetAge replaces the age, re-validating the non-negativity invariant.
// On failure the stored age is left unchanged.
func (p *Person) SetAge(age int) error {
	if age < 0 {
		return fmt.Errorf("set age (name=%q, age=%d): %w", p.name, age, ErrNegativeAge)
	}
	p.age = age
	return nil
}

// IncrementAge adds exactly one year and returns the new age.
//
// Because the age was non-negative before the call, the invariant cannot
// break and no error is possible.
func (p *Person) IncrementAge() int {
	p.age++
	return p.age
}

// Greet returns the self-introduction text. It always contains both the
// trimmed name and the current age.
func (p *Person) Greet() string {
	return fmt.Sprintf("Hello! My name is %s and I am %d years old.", p.name, p.age)
}

// String implements fmt.Stringer with a debug-oriented representation.
func (p *Person) String() string {
	return fmt.Sprintf("Person(name=%q, age=%d)", p.name, p.age)
}
