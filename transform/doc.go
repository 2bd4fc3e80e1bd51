// Package transform holds the value hooks a field applies on its way to and
// from XML text.
//
// A Transform converts a Go value into the string written to an attribute or
// element text (Serialize) and back (Deserialize). Presets cover the XML
// Schema primitives used by document families:
//
//   - Bool: "true" / "false"
//   - Int32, Int64: decimal integers wrapping modulo the target width
//   - Float32, Float64: shortest decimal form that round-trips
//   - DateTime: ISO-8601 / RFC 3339 timestamps
//   - ASCII: binary payloads carried as ASCII text
//
// Custom transforms are built from plain Go functions with Funcs, which
// checks their signatures once and adapts argument types on each call.
//
// A Validator checks the serialized form of a value. Pattern is the regular
// expression validator; patterns are anchored at both ends like XML Schema
// pattern facets.
//
// Presets can also be looked up by name through a Registry, which is how
// configuration files refer to them.
package transform
