package driven

// ConfigStore holds the flat "section.key" settings (llm.provider,
// matching.threshold, ...). Typed getters return the zero value for a
// missing key or a value of another type.
type ConfigStore interface {
	Get(key string) (any, bool)
	GetString(key string) string
	GetInt(key string) int

	// GetFloat also accepts integer values.
	GetFloat(key string) float64
	GetBool(key string) bool

	// Set changes the in-memory value; Save persists it.
	Set(key string, value any) error
	Save() error
	Load() error

	// Path locates the backing file, or names the store when there is none.
	Path() string
}
