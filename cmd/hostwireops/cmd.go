package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// findFlag looks up a flag in the command hierarchy, walking up parents.
func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().Lookup(name); f != nil {
			return f
		}
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}
