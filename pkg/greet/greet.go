// Package greet implements the greeter-and-adder sequence shared by the
// greet, greetc and greetln binaries: a banner, a name prompt, a
// personalized greeting and a sum report, in that order.
package greet

import "fmt"

// Prompt is written before the name is read. It carries no trailing
// newline; input is typed on the same line.
const Prompt = "What is your name? "

// DefaultLanguage is the language named in the banner line.
const DefaultLanguage = "Go"

// Add returns the sum of a and b.
func Add(a, b int) int {
	return a + b
}

// Banner returns the opening greeting line for the given language.
func Banner(language string) string {
	return fmt.Sprintf("Hello, World from %s!", language)
}

// Greeting returns the personalized greeting line for name. An empty
// name is allowed and produces "Hello, !".
func Greeting(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// SumReport returns the line reporting the sum of a and b.
func SumReport(a, b int) string {
	return fmt.Sprintf("The sum of %d and %d is %d", a, b, Add(a, b))
}
