// Package logical implements the logical-parity evaluator (§4.7): given a
// decoder's correction set against a known set of idling errors, it decides
// whether the combined error+correction pattern flips the code's logical
// observable. A small FIFO cache avoids re-running the residual-defect
// Union-Find pass for idling-error patterns seen before.
package logical
