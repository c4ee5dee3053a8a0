// Package version holds the current version of goblinear.
package version

// Current is the version of goblinear and all of its included tools.
const Current = "0.1.0"
