package contracts

// Random is the pseudo-random source threaded through a generation run.
// A fixed seed must reproduce the same sequence.
type Random interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int

	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

// TextSource produces the free-text columns of the dataset.
// Returned strings are raw; escaping is the renderer's job.
type TextSource interface {
	// Company returns a company-like name (suppliers and customers).
	Company() string

	// CatchPhrase returns a short product description.
	CatchPhrase() string

	// ColorName returns a color name.
	ColorName() string
}
