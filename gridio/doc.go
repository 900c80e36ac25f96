// Package gridio implements the two input dialects of spec.md §6: a CSV
// dialect (one row per branch/generator, with a min_voltage_level_kV
// parser-side filter) and a YAML dialect (structured lists, no voltage
// filter). Both dialects produce the same intermediate entity records,
// which Build then assembles into a model.Network — applying the
// configured CountryMapper, the IATL-to-PATL zero rule, and three-winding
// transformer splitting uniformly regardless of which dialect produced
// the records.
package gridio
