//go:build darwin

package resolver

// Conventional Azure CLI install locations on macOS. Homebrew on Apple
// silicon installs under /opt/homebrew, Intel Homebrew under /usr/local.
var darwinCandidates = []string{
	"/opt/homebrew/bin/az",
	"/usr/local/bin/az",
	"/usr/local/opt/azure-cli/bin/az",
}

// GUI applications on macOS inherit a minimal PATH that omits Homebrew's
// directories, so they are merged in ahead of the inherited value.
var darwinExtraDirs = []string{
	"/opt/homebrew/bin",
	"/usr/local/bin",
}

// New returns the Resolver for macOS hosts.
func New() *Resolver {
	return newResolver(darwinCandidates, darwinExtraDirs, "which")
}
