// Package extraction locates business rules and control points in raw
// document text.
//
// Two extractors are provided:
//
//   - RuleExtractor runs trigger-phrase patterns (conditions, obligations,
//     consequences, permissions), optionally a sentence-level keyword
//     heuristic backed by a LanguageModel, or delegates to an LLMService.
//   - ControlPointExtractor runs verification-action patterns over an
//     auxiliary document.
//
// Every output goes through Clean and is deduplicated. Heuristic results
// are ordered by descending length.
package extraction
