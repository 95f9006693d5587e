// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package basics provides the small demonstration functions called by the
// hello-world walkthrough in cmd/hello: type-checked arithmetic, string
// inspection, and list aggregation.
package basics

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Add returns the sum of two integers.
//
// The original walkthrough guarded this with runtime type checks; in Go the
// signature is the check.
func Add(a, b int) int {
	return a + b
}

// ParseAndAdd parses two decimal integers from text and returns their sum.
// It fails when either argument is not an integer, identifying the bad
// argument in the error.
//
// Example:
//
//	sum, err := basics.ParseAndAdd("10", "20") // 30, nil
//	_, err = basics.ParseAndAdd("text", "10")  // error
func ParseAndAdd(a, b string) (int, error) {
	x, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, fmt.Errorf("parse and add (a=%q, b=%q): first argument is not an integer: %w", a, b, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, fmt.Errorf("parse and add (a=%q, b=%q): second argument is not an integer: %w", a, b, err)
	}
	return x + y, nil
}

// TextReport summarizes a piece of text for the string-processing demo.
type TextReport struct {
	Text   string // the input text, unchanged
	Length int    // length in runes, not bytes
	Upper  string // upper-cased form
}

// Describe inspects text and reports its rune length and upper-cased form.
func Describe(text string) TextReport {
	return TextReport{
		Text:   text,
		Length: utf8.RuneCountInString(text),
		Upper:  strings.ToUpper(text),
	}
}

// Stats holds the aggregates reported by Aggregate.
type Stats struct {
	Sum  int
	Mean float64
	Max  int
	Min  int
}

// Aggregate computes sum, mean, max and min of a non-empty integer list.
// It fails with ErrEmptyList when nums is empty.
//
// Example:
//
//	stats, err := basics.Aggregate([]int{1, 2, 3, 4, 5})
//	// stats.Sum == 15, stats.Mean == 3, stats.Max == 5, stats.Min == 1
func Aggregate(nums []int) (Stats, error) {
	if len(nums) == 0 {
		return Stats{}, fmt.Errorf("aggregate: %w", ErrEmptyList)
	}

	xs := make([]float64, len(nums))
	for i, n := range nums {
		xs[i] = float64(n)
	}

	return Stats{
		Sum:  int(floats.Sum(xs)),
		Mean: stat.Mean(xs, nil),
		Max:  int(floats.Max(xs)),
		Min:  int(floats.Min(xs)),
	}, nil
}
