package llm

import "errors"

var (
	// ErrEmptyInput is returned for a situation that is blank after trimming.
	ErrEmptyInput = errors.New("situation is empty")
	// ErrMissingCredential means no API key was configured; nothing was sent.
	ErrMissingCredential = errors.New("OPENROUTER_API_KEY is not configured")
	// ErrAllModelsFailed means every model in the fallback list returned an error.
	ErrAllModelsFailed = errors.New("all models failed")
)
