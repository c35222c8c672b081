package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a document MIME type no normaliser handles.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrEmptyDocument indicates text extraction produced no content.
	ErrEmptyDocument = errors.New("no text could be extracted from the document")

	// ErrLLMUnavailable indicates the text-generation service is not configured
	// or unreachable. Service-assisted modes fall back to heuristics.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrLanguageModelUnavailable indicates no linguistic model is loaded.
	// Cleaning, verb detection and sentence-level extraction are disabled.
	ErrLanguageModelUnavailable = errors.New("language model unavailable")

	// ErrEmptyCorpus indicates similarity was requested over an empty rule
	// or control point list.
	ErrEmptyCorpus = errors.New("cannot vectorise an empty rule or control point list")

	// ErrNoRules indicates a stage needs rules that have not been extracted.
	ErrNoRules = errors.New("no rules extracted")

	// ErrNoControlPoints indicates a stage needs control points that do not exist yet.
	ErrNoControlPoints = errors.New("no control points available")

	// ErrNoDocument indicates a stage needs a document that has not been loaded.
	ErrNoDocument = errors.New("no document loaded")

	// ErrConfigNotFound indicates a configuration key is not set.
	ErrConfigNotFound = errors.New("config key not found")
)
