package outcome

// Inspector is implemented by Outcome and by anything that exposes one.
type Inspector[T any, E error] interface {
	// IsSuccess returns true for the Ok variant
	IsSuccess() bool
	// IsFailure returns true for the Err variant
	IsFailure() bool
	SuccessValue() (T, bool)
	FailureValue() (E, bool)
}

// Extractor adds the terminal accessors to Inspector.
type Extractor[T any, E error] interface {
	Inspector[T, E]
	// Get returns both payloads, one of them zero
	Get() (T, E)
	// MustValue returns the value or panics with the failure
	MustValue() T
}

var (
	_ Extractor[int, error] = Outcome[int, error]{}
)
