package qmc

// Config controls resource limits and self-checks of a Minimizer.
type Config struct {
	// MaxTerms bounds the number of terms a single generation round and the
	// prime set may hold. Zero means no limit.
	MaxTerms int
	// Verify enables an exhaustive truth-table check of every cover.
	Verify bool
	// VerifyMaxVariables skips the truth-table check for wider functions.
	VerifyMaxVariables int
}

const (
	defaultMaxTerms           = 1 << 20
	defaultVerifyMaxVariables = 20
)

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{
		MaxTerms:           defaultMaxTerms,
		VerifyMaxVariables: defaultVerifyMaxVariables,
	}
}
