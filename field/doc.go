// Package field declares how a model field maps onto XML.
//
// A Field is one of three kinds:
//
//   - Attribute: a string-valued XML attribute, written under its alias when
//     one is set (for names such as "xmlns:xsi").
//   - Child: a nested element holding another model, or a list of them.
//   - Text: the element's character content. A model has at most one.
//
// Each field names its type with an expression understood by the annotation
// package and may carry a default, a default factory, a transform for its
// text form and a pattern its text form must match.
//
// Fields are declared as data and handed to model.Define, which binds each of
// them to the struct field holding its value.
package field
