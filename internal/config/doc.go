// Package config loads and validates rankdict configuration.
//
// Configuration is TOML: [paths], [output], [filter], and [logging] sections
// plus an ordered [[dictionary]] array. Dictionary order matters — it is the
// tie-break priority when two lists rank a token identically, and the order
// lists appear in the emitted artifact. Load applies defaults, expands ~ in
// paths, and validates before returning.
package config
