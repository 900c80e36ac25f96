// Package fixtures builds the literal test scenarios of spec.md §8
// programmatically: the two-node trivial case, the three-bus
// equal-impedance triangle, and a small IEEE-300-like subset. Each
// builder function is a Constructor in the example pack's sense: a single
// entry point returning a ready-to-use model.Network, with no exported
// state left half-built.
package fixtures
