// Copyright (c) 2026 The relaybridge Authors

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package locate

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/avfs/avfs"
)

// New factory to create a new Resolver instance.
func New(
	logger *slog.Logger,
	fs avfs.VFS,
	opts Options,
) *Resolver {
	if opts.BinaryName == "" {
		opts.BinaryName = DefaultBinaryName()
	}
	if opts.Executable == nil {
		opts.Executable = os.Executable
	}

	return &Resolver{
		logger: logger,
		fs:     fs,
		opts:   opts,
	}
}

// DefaultBinaryName is the controller file name for the running platform.
func DefaultBinaryName() string {
	if runtime.GOOS == "windows" {
		return "relay.exe"
	}

	return "relay"
}

// Resolve returns the first candidate that exists. A successful result is
// cached and returned without touching the filesystem again; a failure is
// not cached, so a binary placed later is picked up by the next call.
func (r *Resolver) Resolve() (string, error) {
	if p := r.resolved.Load(); p != nil {
		return *p, nil
	}

	candidates := r.Candidates()
	for _, candidate := range candidates {
		if _, err := r.fs.Stat(candidate); err != nil {
			continue
		}

		// Concurrent first callers may both probe; only one write wins.
		r.resolved.CompareAndSwap(nil, &candidate)
		found := *r.resolved.Load()

		r.logger.Debug(
			"resolved controller",
			slog.String("path", found),
		)

		return found, nil
	}

	r.logger.Debug(
		"controller not found",
		slog.Int("candidates", len(candidates)),
	)

	return "", &ResolutionError{
		BinaryName: r.opts.BinaryName,
		Checked:    candidates,
	}
}

// Candidates returns the search order. Sources that cannot be determined
// (no host directory, unknown executable) are left out.
func (r *Resolver) Candidates() []string {
	name := r.opts.BinaryName
	candidates := make([]string, 0, 6)

	add := func(path string) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		candidates = append(candidates, path)
	}

	if r.opts.Path != "" {
		add(r.opts.Path)
	}

	if r.opts.AppDir != "" {
		add(filepath.Join(r.opts.AppDir, name))
	}

	if exe, err := r.opts.Executable(); err == nil && exe != "" {
		add(filepath.Join(filepath.Dir(exe), name))
	}

	root := r.opts.InstallRoot
	if root == "" {
		root = "."
	}

	add(filepath.Join(root, "bin", name))
	add(filepath.Join(root, "..", name))
	add(filepath.Join(root, "..", "..", name))

	return candidates
}
