// Package aoc2021 collects Advent of Code 2021 solutions (days 1-17) built on
// a small generic grid library and an in-memory graph toolkit.
//
// 🚀 What is inside?
//
//	• grid: dense, row-major Grid[T] with 4/8-neighborhoods and lazy iteration
//	• input: line, block, integer and grid parsing with typed errors
//	• core, dijkstra, dfs: string-keyed graphs, shortest paths, walk enumeration
//	• gridgraph: grids as graphs (connected components, weighted conversion)
//	• puzzle: registry and timed runner with structured logging
//	• days/dayNN: one package per puzzle, each exporting Part1 and Part2
//
// Layout:
//
//	cmd/aoc/    command-line entry point (aoc run 1 2 3, aoc run --all, aoc list)
//	grid/       the Grid[T] core
//	input/      parsing helpers
//	core/       Graph, Edge and thread-safe primitives
//	dijkstra/   single-source shortest paths with early exit
//	dfs/        path enumeration with pluggable revisit policies
//	gridgraph/  bridge from grid to graph algorithms
//	puzzle/     Solution registry and Runner
//	days/       solutions; importing days registers all of them
//
// Quick start:
//
//	go run ./cmd/aoc run --inputs ./inputs 9 15
package aoc2021
