package driven

import "context"

// PostProcessor transforms a token stream during text cleaning.
// PostProcessors are chained in a pipeline (e.g., normalise, lemmatise).
type PostProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process takes the current tokens and returns the transformed tokens.
	// The first processor of a pipeline receives the raw text as a single token.
	Process(ctx context.Context, tokens []string) ([]string, error)
}

// PostProcessorPipeline chains multiple PostProcessors.
type PostProcessorPipeline interface {
	// Process runs the text through all processors in order and returns
	// the final tokens.
	Process(ctx context.Context, text string) ([]string, error)
}
