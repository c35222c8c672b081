// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Normaliser: Extracts text from one document format
//   - NormaliserRegistry: Selects the appropriate normaliser
//   - PostProcessor: One stage of the token cleaning pipeline
//   - Exporter: Serialises rules, control points and test cases
//   - SessionStore: In-memory session state
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Text generation. Without it, service-assisted modes fall
//     back to templates and regex heuristics.
//   - LanguageModel: Token annotation. Without it, cleaning, verb detection
//     and sentence-level rule extraction are disabled.
//   - WordCloudRenderer: PNG rendering of term frequencies.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
