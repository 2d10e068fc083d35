// Package puzzle registers daily solutions and runs them against input files.
//
// Every day package calls Register from its init function. A Runner looks a
// day up, reads its input (dayNN.txt), times both parts and logs the outcome
// through logrus.
//
// Errors:
//
//   - ErrUnknownDay: no solution is registered for the requested day.
//   - ErrNoInput: the input file for the day cannot be read.
//   - ErrBadSolution: Register was given an invalid Solution.
package puzzle
