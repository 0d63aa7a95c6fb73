// Package consolidate merges loaded frequency lists into the final ranked
// dictionary artifact.
//
// It runs three stages over the lists produced by freqlist: building the
// global minimum-rank index, assigning each token to the single list where it
// ranks best, and filtering/packing each list (brute-force-dominance pruning,
// rank sort, capacity truncation). The index is a plain value constructed at
// the start of a run and passed between stages; nothing survives the run.
package consolidate
