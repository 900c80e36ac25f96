// Package gridconfig loads and validates the YAML-driven configuration
// table of spec.md §6: case name, the ordered list of control-area
// countries to analyze, numerical tolerances, coupler and generator-IF
// policy flags, the parser-side voltage filter, and the per-unit power
// base. It also exposes CountryMapper, a pluggable node-name-to-country
// heuristic keyed by case_name, mirroring the original implementation's
// per-case settings dispatch.
package gridconfig
