// Package present renders a tracer.Result for people or programs.
//
//   - Text: the console format, each shortest trace's grid followed by a
//     blank line.
//   - JSON and YAML: a Document with the best length, the number of traces
//     and, per trace, its length, head and grid rows.
//
// Presenters only read the result; they never re-run or filter the search.
package present
