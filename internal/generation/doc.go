// Package generation synthesises control points from rules and test
// cases from control points.
//
// Each generator has a heuristic path built from fixed templates and a
// service-assisted path that delegates to an LLMService. The assisted
// path never fails: an absent or failing service, or an unusable
// response, yields the heuristic result together with a Warning.
package generation
