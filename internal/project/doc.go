// Package project holds the immutable description of the extension being
// generated and the heuristics used to suggest its short name.
package project
