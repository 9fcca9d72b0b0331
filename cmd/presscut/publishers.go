package main

import "fmt"

// Run executes the publishers command.
func (c *PublishersCmd) Run(deps *Dependencies) error {
	for _, p := range deps.Registry.List() {
		fmt.Fprintf(deps.Stdout, "%-15s %s\n", p, p.Name())
	}
	return nil
}
