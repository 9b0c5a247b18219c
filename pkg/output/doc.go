// Package output renders action listings for the terminal and for
// machines.
//
// Terminal output is styled with lipgloss using the semantic styles in
// pkg/output/styles. Plain text drops all styling. JSON, YAML, TOML and
// XML write the same document: a list of actions with id, name and
// confirmation flag, in listing order.
package output
