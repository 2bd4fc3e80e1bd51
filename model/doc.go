// Package model maps Go structs to XML element trees.
//
// A model is a struct type declared in a Family together with an ordered list
// of field declarations:
//
//	var Samples = model.NewFamily("samples")
//
//	type Sample struct {
//		Name     string
//		SampleID string
//		Tags     []*Tag
//	}
//
//	var _ = model.MustDefine[Sample](Samples, "Sample",
//		field.Attribute("name", "str"),
//		field.Attribute("sampleID", "str", field.Pattern(transform.NCName)),
//		field.Child("tags", "Optional[List[Tag]]"),
//	)
//
// Declarations bind to exported struct fields by name, ignoring case and
// separators, unless they name their Go field with field.Bind. The Go field
// shape must agree with the declaration: list declarations need a slice.
//
// # Dump
//
// The element takes the model tag. Attributes are written in declaration order
// under their alias or name, the text field becomes the element text and child
// fields become child elements, lists element by element. Null optional values
// are omitted. Attribute and text values must serialize to strings.
//
// # Load
//
// The element tag must equal the model tag. Attributes and text are read,
// deserialized and validated. Child elements are looked up by tag in the
// family, loaded recursively and routed, in document order, to the child
// fields whose annotation accepts them:
//
//   - when several fields accept a child and a list field is not the last of
//     them, the model is misconfigured and loading fails with
//     ErrUnreachableField;
//   - otherwise the first field without a value wins, so two <I> children
//     fill startValue then increment;
//   - a single accepting field always wins: a list appends, a scalar keeps
//     the last child.
//
// The staged values then construct the instance as New does: missing values
// take their default, or nil when optional, or fail with ErrMissingField.
//
// # Errors
//
// Every failure is an *Error with a stable Code, wrapping one of the sentinel
// errors of the package. Definition errors are returned by Define and are
// meant to fail at init time through MustDefine.
package model
