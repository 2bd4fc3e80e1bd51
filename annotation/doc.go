// Package annotation resolves field type expressions into a canonical form.
//
// A field declaration names the type of the values it holds. The expression
// may be written as a string, which allows forward references to model types
// that are declared later, or derived from a Go reflect.Type.
//
// # Forms
//
// Every annotation is exactly one of:
//
//   - Named: a concrete type name such as "str", "Sample" or "IntType",
//     optionally bound to a Go type.
//   - Union: a set of branches. A branch named None marks the union as
//     optional.
//   - List: a homogeneous sequence with one element annotation.
//
// # String syntax
//
//	Sample
//	Optional[Sample]
//	List[Sample]               (also list[Sample])
//	Optional[List[Sample]]     optional list
//	List[Optional[Sample]]     list of optional elements
//	Union[IntType, LongType]
//	Union[IntType, None]       same as Optional[IntType]
//
// Wrapper keywords are case-insensitive. Identifiers consist of ASCII letters,
// digits and underscores; anything else, surrounding whitespace or unbalanced
// brackets fail with ErrSyntax. Other generic wrappers such as Set[...] or
// Dict[...] fail with ErrUnsupported.
//
// # Matching
//
// The tree codec asks an annotation whether it accepts a decoded child:
// ValidType for the annotation itself, ValidSubtype for list elements, and
// ValidContent for either. Types match by identity when the annotation is bound
// or by name otherwise, so late-bound references resolve without a registry.
package annotation
