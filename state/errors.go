package state

import (
	"fmt"

	"github.com/extcore/extcore/internal/corelist"
)

func newStaticFacetViolation(at string) error {
	return corelist.New(corelist.StaticFacetViolation, at,
		"a Single/Multi provider targets a facet declared isStatic")
}

func newMissingFacetData(at string) error {
	return corelist.New(corelist.MissingFacetData, at,
		"value presented as a Facet has no associated FacetData")
}

func newCyclicDependency(at string) error {
	return corelist.New(corelist.CyclicDependency, at,
		"slot re-entered while Computing")
}

func newInvalidDependency(v any) error {
	return corelist.New(corelist.InvalidDependency, fmt.Sprintf("%T", v),
		"dependency is not a Facet, a StateField, Doc, or Selection")
}
