// Command rankdict builds the ranked dictionary artifact a password-strength
// estimator uses as its lookup table.
//
// The workflow has two halves. `rankdict count` tokenizes raw corpora and
// accumulates per-source token counts in a SQLite database, exporting each
// source as a frequency file sorted by descending count. `rankdict build`
// consolidates those frequency files: every token keeps only its best rank
// across all lists, heuristically weak tokens are pruned, each list is capped
// at its configured size, and the result is serialized for the estimator.
package main
