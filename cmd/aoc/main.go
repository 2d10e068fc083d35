package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	_ "github.com/katalvlaran/aoc2021/days"
)

var (
	inputDir string
	logLevel string
	log      = logrus.New()
)

var mainCommand = &cobra.Command{
	Use:               "aoc",
	Short:             "Advent of Code 2021 solutions",
	PersistentPreRunE: preRun,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	mainCommand.PersistentFlags().StringVarP(&inputDir, "inputs", "i", "inputs", "directory holding dayNN.txt input files")
	mainCommand.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error)")
}

func preRun(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		log.Fatal(err)
	}
}
