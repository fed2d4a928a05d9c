// Package resolver locates the Azure CLI binary on the host filesystem.
// It probes an ordered list of platform-conventional paths first, then
// falls back to the platform's locator program run with a widened PATH.
package resolver

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// toolName is the executable the resolver hunts for.
const toolName = "az"

// ErrNotFound indicates the Azure CLI could not be located by any strategy.
// Callers must keep this distinguishable from execution and authentication
// failures so the UI can offer install instructions instead of a generic
// error.
var ErrNotFound = errors.New("azure cli not found")

// locatorFunc runs a locator program (which/where) for the tool, using the
// given PATH value, and returns its first line of output.
type locatorFunc func(ctx context.Context, searchPath string) (string, error)

// statFunc reports whether a path exists as a regular file.
type statFunc func(path string) (os.FileInfo, error)

// Resolver locates the Azure CLI. A successful resolution is cached for the
// resolver's lifetime; a failed resolution is retried on the next call, since
// the tool may be installed after the application starts.
type Resolver struct {
	mu         sync.Mutex
	cached     string
	candidates []string
	extraDirs  []string // prepended to the inherited PATH
	locate     locatorFunc
	stat       statFunc
}

// newResolver builds a resolver over the given candidate paths and extra
// PATH directories, with the named locator program as the fallback strategy.
func newResolver(candidates, extraDirs []string, locatorName string) *Resolver {
	r := &Resolver{
		candidates: candidates,
		extraDirs:  extraDirs,
		stat:       os.Stat,
	}
	r.locate = func(ctx context.Context, searchPath string) (string, error) {
		return runLocator(ctx, locatorName, searchPath)
	}
	return r
}

// Resolve returns the absolute path of the Azure CLI binary, or ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != "" {
		return r.cached, nil
	}

	for _, p := range r.candidates {
		fi, err := r.stat(p)
		if err == nil && !fi.IsDir() {
			r.cached = p
			return p, nil
		}
	}

	if r.locate != nil {
		out, err := r.locate(ctx, r.searchPathLocked())
		if err == nil {
			if found := firstLine(out); found != "" {
				r.cached = found
				return found, nil
			}
		}
	}

	return "", ErrNotFound
}

// SearchPath returns the PATH value used for locator runs and for spawning
// the resolved tool: the platform's conventional install directories merged
// ahead of whatever the inherited environment provides.
func (r *Resolver) SearchPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.searchPathLocked()
}

func (r *Resolver) searchPathLocked() string {
	inherited := os.Getenv("PATH")

	seen := make(map[string]struct{}, len(r.extraDirs))
	dirs := make([]string, 0, len(r.extraDirs)+1)
	for _, d := range r.extraDirs {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dirs = append(dirs, d)
	}

	for _, d := range strings.Split(inherited, string(os.PathListSeparator)) {
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dirs = append(dirs, d)
	}

	return strings.Join(dirs, string(os.PathListSeparator))
}

// runLocator invokes the locator program with PATH set to searchPath and
// returns its raw output.
func runLocator(ctx context.Context, locatorName, searchPath string) (string, error) {
	cmd := exec.CommandContext(ctx, locatorName, toolName)
	cmd.Env = append(environWithout("PATH"), "PATH="+searchPath)
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// environWithout returns the process environment minus the named variable.
func environWithout(name string) []string {
	prefix := name + "="
	env := os.Environ()
	filtered := env[:0]
	for _, kv := range env {
		if !strings.HasPrefix(kv, prefix) {
			filtered = append(filtered, kv)
		}
	}
	return filtered
}

// firstLine returns the first non-empty line of s, trimmed.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
