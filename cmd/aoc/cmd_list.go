package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2021/puzzle"
)

var commandList = &cobra.Command{
	Use:   "list",
	Short: "List available days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range puzzle.Days() {
			s, err := puzzle.Lookup(d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "day%02d  %s\n", s.Day, s.Title)
		}
		return nil
	},
}

func init() {
	mainCommand.AddCommand(commandList)
}
