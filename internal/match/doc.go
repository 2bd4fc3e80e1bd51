// Package match provides the matching rules of the tree codec.
//
// Key functions:
//   - SelectSlot: routes a decoded child element to one of the fields
//     accepting it, following the overflow rule for repeated children
//   - SameIdent / NormalizeIdent: binds declared field names to Go struct
//     fields regardless of case and separators
//   - RankNames / Suggest: "did you mean" candidates for unknown tags
//   - Levenshtein: computes edit distance between strings
package match
