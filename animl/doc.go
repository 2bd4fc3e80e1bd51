// Package animl is the AnIML (Analytical Information Markup Language) model
// catalog: the models of an AnIML document, defined in a single family, and
// the functions reading and writing whole documents.
//
// # Documents
//
// A Document is the <AnIML> root. Create returns an empty document with the
// schema attributes set; Loads, Read and Open parse one:
//
//	doc := animl.Create()
//	doc.AppendSample(animl.NewSample("Buffer"))
//
//	if err := doc.Save("out.animl", xmldoc.Options{Indent: 2, Declaration: true}); err != nil {
//		return err
//	}
//
// Namespace prefixes are scrubbed from element tags before loading, so
// documents qualified with the core namespace load the same way as
// unqualified ones.
//
// # Values
//
// Typed values are elements named after their type: <I> for 32-bit integers,
// <D> for doubles, <S> for strings and so on. They implement Value, and the
// numeric ones also Numeric, so a field such as Parameter.Value holds whichever
// of them the document carries.
package animl
