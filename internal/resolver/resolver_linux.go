//go:build linux

package resolver

// Conventional Azure CLI install locations on Linux: distro packages,
// manual installs, the Microsoft install script, and snap.
var linuxCandidates = []string{
	"/usr/bin/az",
	"/usr/local/bin/az",
	"/opt/az/bin/az",
	"/snap/bin/az",
}

var linuxExtraDirs = []string{
	"/usr/local/bin",
	"/usr/bin",
	"/snap/bin",
}

// New returns the Resolver for Linux hosts.
func New() *Resolver {
	return newResolver(linuxCandidates, linuxExtraDirs, "which")
}
