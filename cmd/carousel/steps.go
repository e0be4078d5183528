package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStepsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "List the configured questions and their options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			registry, err := loadRegistry(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i := 0; i < registry.Len(); i++ {
				step, _ := registry.At(i)
				fmt.Fprintf(out, "%d. %s\n", i+1, step.Title)
				for j, opt := range step.Options {
					fmt.Fprintf(out, "   %d) %s\n", j+1, opt)
				}
			}
			return nil
		},
	}
}
