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

// Package locate finds the relay controller executable.
package locate

import (
	"log/slog"
	"sync/atomic"

	"github.com/avfs/avfs"
)

// Locator resolves the controller executable path.
type Locator interface {
	// Resolve returns the absolute path of the controller executable.
	Resolve() (string, error)
}

// Options selects where the controller executable is searched for.
type Options struct {
	// BinaryName is the controller file name. Defaults to DefaultBinaryName().
	BinaryName string
	// Path is an explicit controller path. When set it is checked first.
	Path string
	// AppDir is the application executable directory reported by the host.
	// Skipped when empty.
	AppDir string
	// InstallRoot is the build or install root. The bin subdirectory and the
	// two parent directories of this root are searched. Defaults to the
	// working directory.
	InstallRoot string
	// Executable reports the running process's executable. Defaults to
	// os.Executable.
	Executable func() (string, error)
}

// Resolver searches an ordered list of candidate locations and caches the
// first hit for the rest of its lifetime.
type Resolver struct {
	logger *slog.Logger
	fs     avfs.VFS
	opts   Options

	resolved atomic.Pointer[string]
}
