// Package xmldoc reads and writes XML documents as element trees.
//
// It wraps github.com/beevik/etree with the few operations the codec needs:
// parsing a whole document to its root element, writing an element with
// optional indentation and XML declaration, and dropping namespace prefixes
// from element tags.
package xmldoc
