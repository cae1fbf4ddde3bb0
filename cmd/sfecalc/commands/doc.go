// Package commands wires the sfecalc CLI.
package commands
