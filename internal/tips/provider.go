// Package tips fetches short mindfulness tips and holds the tip shown to
// the user. Fetching never fails from the caller's point of view: every
// error becomes one of the fallback strings.
package tips

import "context"

// Fallback tips returned instead of an error.
const (
	FallbackNoCredential = "Take a deep breath and relax."
	FallbackEmpty        = "Breathe in, breathe out."
	FallbackFailure      = "Focus on the present moment."
)

// Fallbacks lists every fallback tip.
var Fallbacks = []string{FallbackNoCredential, FallbackFailure, FallbackEmpty}

// Provider returns a short advisory text for a context label such as
// "Focus Completed", "Relaxing Break" or "Productivity".
type Provider interface {
	Fetch(ctx context.Context, tipContext string) string
}

// StaticProvider always returns the same tip.
type StaticProvider string

// Fetch returns the static tip.
func (provider StaticProvider) Fetch(context.Context, string) string {
	return string(provider)
}
