package svsyntax

import "fmt"

// ProductionTag identifies a named grammar production for diagnostics,
// memoization keys, and the left-recursion active-set. svast registers
// one tag per production via NewProductionTag; this file only hosts the
// registry mechanics so the engine has no compile-time dependency on
// the grammar package.
type ProductionTag uint16

var (
	productionNames = map[ProductionTag]string{0: "<unregistered>"}
	nextTag         = ProductionTag(1)
)

// NewProductionTag allocates and names the next production tag. Called
// once per production from svast package-level var initializers — one
// call site per production, which is exactly the shape a grammar-table
// generator would need to emit if the surface were ever regenerated
// from a machine-readable grammar description.
func NewProductionTag(name string) ProductionTag {
	tag := nextTag
	nextTag++
	if existing, ok := productionNames[tag]; ok && existing != "<unregistered>" {
		panic(fmt.Sprintf("production tag %d already registered as %q", tag, existing))
	}
	productionNames[tag] = name
	return tag
}

// ProductionName returns the registered name of tag, or a placeholder if
// it was never registered (an internal-invariant bug, not a user error).
func ProductionName(tag ProductionTag) string {
	if name, ok := productionNames[tag]; ok {
		return name
	}
	return fmt.Sprintf("<production#%d>", tag)
}
