package app

import (
	"github.com/spf13/cobra"
)

// Run builds the App for a command, hands it to fn and closes it afterwards.
func Run(opts *Options, fn func(cmd *cobra.Command, args []string, a *App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := New(opts)
		if err != nil {
			return err
		}
		defer a.Close()

		return fn(cmd, args, a)
	}
}
