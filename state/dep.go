package state

// depKind classifies one entry of a Provider's dependency list.
type depKind uint8

const (
	depFacet depKind = iota
	depField
	depDoc
	depSelection
)

// dep is the resolved form of a dependency-list entry: a Facet, a
// StateField, or one of the two sentinel tags observing the
// Transaction directly.
type dep struct {
	kind     depKind
	facetID  id
	fieldID  id
}

// docSentinel and selectionSentinel back the exported Doc and Selection
// values. Providers declare a dependency on document or selection
// changes by including these in their deps list.
type docSentinel struct{}
type selectionSentinel struct{}

// Doc is the dependency-list sentinel for "observes document text
// changes on the Transaction".
var Doc any = docSentinel{}

// Selection is the dependency-list sentinel for "observes selection
// changes on the Transaction".
var Selection any = selectionSentinel{}

// facetDep is implemented by every instantiation of Facet[I, O]; it is
// the non-generic face the resolver uses to recover identity from a
// dependency-list entry without needing to know I or O.
type facetDep interface {
	facetDepID() (id, bool)
}

// fieldDep is implemented by every instantiation of *StateField[V].
type fieldDep interface {
	fieldDepID() id
}

// resolveDep validates one entry of a deps list. This is where
// InvalidDependency is raised: deps are stored unvalidated on the
// provider (ComputedFacet/ComputedFacetN just capture the slice the
// caller passed), and only checked when the resolver actually
// materializes the provider's slot.
func resolveDep(v any) (dep, error) {
	switch x := v.(type) {
	case docSentinel:
		return dep{kind: depDoc}, nil
	case selectionSentinel:
		return dep{kind: depSelection}, nil
	case facetDep:
		fid, ok := x.facetDepID()
		if !ok {
			return dep{}, newMissingFacetData("dependency")
		}
		return dep{kind: depFacet, facetID: fid}, nil
	case fieldDep:
		return dep{kind: depField, fieldID: x.fieldDepID()}, nil
	default:
		return dep{}, newInvalidDependency(v)
	}
}
