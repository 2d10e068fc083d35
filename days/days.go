// Package days links every daily solution into the puzzle registry.
package days

import (
	_ "github.com/katalvlaran/aoc2021/days/day01"
	_ "github.com/katalvlaran/aoc2021/days/day02"
	_ "github.com/katalvlaran/aoc2021/days/day03"
	_ "github.com/katalvlaran/aoc2021/days/day04"
	_ "github.com/katalvlaran/aoc2021/days/day05"
	_ "github.com/katalvlaran/aoc2021/days/day06"
	_ "github.com/katalvlaran/aoc2021/days/day07"
	_ "github.com/katalvlaran/aoc2021/days/day08"
	_ "github.com/katalvlaran/aoc2021/days/day09"
	_ "github.com/katalvlaran/aoc2021/days/day10"
	_ "github.com/katalvlaran/aoc2021/days/day11"
	_ "github.com/katalvlaran/aoc2021/days/day12"
	_ "github.com/katalvlaran/aoc2021/days/day13"
	_ "github.com/katalvlaran/aoc2021/days/day14"
	_ "github.com/katalvlaran/aoc2021/days/day15"
	_ "github.com/katalvlaran/aoc2021/days/day16"
	_ "github.com/katalvlaran/aoc2021/days/day17"
)
