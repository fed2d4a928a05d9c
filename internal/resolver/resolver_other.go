//go:build !linux && !darwin && !windows

package resolver

// New returns a Resolver for platforms without conventional install
// locations. It relies entirely on the locator fallback.
func New() *Resolver {
	return newResolver(nil, nil, "which")
}
