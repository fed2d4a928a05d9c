//go:build windows

package resolver

// Conventional Azure CLI install locations on Windows (MSI installer).
var windowsCandidates = []string{
	`C:\Program Files\Microsoft SDKs\Azure\CLI2\wbin\az.cmd`,
	`C:\Program Files (x86)\Microsoft SDKs\Azure\CLI2\wbin\az.cmd`,
}

var windowsExtraDirs = []string{
	`C:\Program Files\Microsoft SDKs\Azure\CLI2\wbin`,
	`C:\Program Files (x86)\Microsoft SDKs\Azure\CLI2\wbin`,
}

// New returns the Resolver for Windows hosts.
func New() *Resolver {
	return newResolver(windowsCandidates, windowsExtraDirs, "where")
}
