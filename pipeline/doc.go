// Package pipeline assembles the core components (C1-C9) into the two
// entry points a caller actually needs: Build, which turns a parsed
// CIF record into an unclustered crystal (C4 cleanup plus C5 edge
// construction), and Run, which additionally drives clustering
// selection through to a canonicalized net (C6-C9).
package pipeline
