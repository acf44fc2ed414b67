package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errNoInput = errors.New("input closed before a valid value was entered")

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

// steps asks until it reads a non-negative integer.
func (p *prompter) steps() (int, error) {
	for {
		line, err := p.ask("Enter the number of simulation steps: ")
		if err != nil {
			return 0, err
		}
		steps, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Not a valid number")
			continue
		}
		if steps < 0 {
			fmt.Fprintln(p.out, "The number of steps cannot be negative, enter a valid number")
			continue
		}
		return steps, nil
	}
}

// seed asks until it reads an integer.
func (p *prompter) seed() (int64, error) {
	for {
		line, err := p.ask("Enter a seed for the random number generator: ")
		if err != nil {
			return 0, err
		}
		seed, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Enter a valid number for the seed")
			continue
		}
		return seed, nil
	}
}

func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", errNoInput
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}
