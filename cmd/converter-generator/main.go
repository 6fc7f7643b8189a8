// Package main provides the CLI entrypoint for converter-generator.
//
// converter-generator reads the tagged record types of Go packages and
// writes, next to them, functions converting each record to and from its
// generic map form:
//   - plan prints the per-field plan with overrides applied
//   - gen writes the converter file of every package
//   - check fails when a converter file is missing or out of date
package main

func main() {
	Execute()
}
