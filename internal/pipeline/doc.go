// Package pipeline implements the résumé Markdown-to-HTML pipeline.
//
// Every stage is a string-to-string function that returns its input
// unchanged when it has nothing to rewrite:
//   - Line ending normalization and front matter splitting
//   - Escaping of [~label]: definitions ahead of Markdown conversion
//   - Markdown to HTML conversion via Goldmark
//   - Definition list repair (one <dl> per term)
//   - Cross-reference extraction, linking and the reference list
//   - Header block synthesis from the front matter
//
// The order of the HTML passes matters: cross-references are resolved on
// the repaired lists, and the header is prepended last so its content is
// never scanned for references.
package pipeline
