// Package services holds the pipeline stages behind the driving ports:
// analysis, rule extraction, control point matching and generation, test
// case generation, and the WorkbenchService that chains them per session.
//
// Optional capabilities (LanguageModel, LLMService) arrive as nil when
// missing; stages then fall back to heuristics and report a warning.
package services
