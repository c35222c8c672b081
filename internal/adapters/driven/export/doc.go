// Package export groups the document and image exporters.
//
// Adapters:
//   - docx: WordprocessingML documents for rules, control points and
//     test cases
//   - wordcloud: PNG rendering of term frequencies
package export
