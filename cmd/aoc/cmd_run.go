package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2021/puzzle"
)

var runAll bool

var commandRun = &cobra.Command{
	Use:   "run [day...]",
	Short: "Solve the given days",
	RunE:  runDays,
}

func init() {
	commandRun.Flags().BoolVarP(&runAll, "all", "a", false, "run every registered day")
	mainCommand.AddCommand(commandRun)
}

func runDays(cmd *cobra.Command, args []string) error {
	days, err := selectDays(args, runAll)
	if err != nil {
		return err
	}
	runner := puzzle.NewRunner(
		puzzle.WithLogger(log),
		puzzle.WithInputDir(inputDir),
	)
	var failed []error
	for _, d := range days {
		res, err := runner.Run(d)
		if err != nil {
			log.WithError(err).WithField("day", d).Error("run failed")
			failed = append(failed, err)
			continue
		}
		printResult(cmd.OutOrStdout(), res)
	}
	return errors.Join(failed...)
}

func selectDays(args []string, all bool) ([]int, error) {
	switch {
	case all && len(args) > 0:
		return nil, errors.New("--all takes no day arguments")
	case all:
		return puzzle.Days(), nil
	case len(args) == 0:
		return nil, errors.New("no days given; pass day numbers or --all")
	}
	days := make([]int, 0, len(args))
	for _, a := range args {
		d, err := strconv.Atoi(strings.TrimPrefix(a, "day"))
		if err != nil {
			return nil, fmt.Errorf("bad day %q", a)
		}
		days = append(days, d)
	}
	return days, nil
}

// printResult writes one line per part. Multi-line answers start on their
// own line.
func printResult(w io.Writer, res puzzle.Result) {
	for _, p := range res.Parts {
		answer := fmt.Sprint(p.Answer)
		if strings.Contains(answer, "\n") {
			answer = "\n" + answer
		}
		fmt.Fprintf(w, "day%02d part%d: %s (%s)\n", res.Day, p.Part, answer, p.Elapsed)
	}
}
