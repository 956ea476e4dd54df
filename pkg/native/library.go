//go:build darwin || linux

package native

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

var (
	loadOnce sync.Once
	loaded   *Library
	loadErr  error
)

// Library is the production Caller. It holds the dynamically loaded FMOD
// shared library and a cache of resolved symbol addresses.
type Library struct {
	handle uintptr

	mu   sync.RWMutex
	syms map[string]uintptr
}

// Load opens the FMOD shared library from the standard search locations,
// once per process. Subsequent calls return the same *Library.
func Load() (*Library, error) {
	loadOnce.Do(func() {
		loaded, loadErr = open(libraryPaths())
	})
	return loaded, loadErr
}

// Open loads the FMOD shared library from an explicit path, bypassing the
// search locations. Intended for embedders that ship the engine themselves.
func Open(path string) (*Library, error) {
	return open([]string{path})
}

func open(paths []string) (*Library, error) {
	var lastErr error
	for _, path := range paths {
		handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			lastErr = err
			continue
		}
		return &Library{handle: handle, syms: make(map[string]uintptr)}, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("native: failed to load engine library: %w", lastErr)
	}
	return nil, errors.New("native: engine library not found in any standard location")
}

func libraryPaths() []string {
	libName := "libfmod.so"
	if runtime.GOOS == "darwin" {
		libName = "libfmod.dylib"
	}

	var paths []string
	if envPath := os.Getenv("FMOD_LIB_PATH"); envPath != "" {
		paths = append(paths, envPath, filepath.Join(envPath, libName))
	}
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, libName),
			filepath.Join(exeDir, "..", "lib", libName),
		)
	}
	switch runtime.GOOS {
	case "darwin":
		paths = append(paths,
			libName,
			"/usr/local/lib/libfmod.dylib",
			"/opt/homebrew/lib/libfmod.dylib",
		)
	case "linux":
		paths = append(paths,
			libName,
			"/usr/local/lib/libfmod.so",
			"/usr/lib/libfmod.so",
			"/usr/lib/x86_64-linux-gnu/libfmod.so",
		)
	}
	return paths
}

// Close unloads the shared library. All handles obtained through this
// library are invalid afterwards; the engine gives no way to observe that
// from here, so callers must stop using them.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	return err
}

func (l *Library) addr(symbol string) (uintptr, error) {
	l.mu.RLock()
	a, ok := l.syms[symbol]
	l.mu.RUnlock()
	if ok {
		return a, nil
	}

	a, err := purego.Dlsym(l.handle, symbol)
	if err != nil {
		return 0, fmt.Errorf("native: resolving %s: %w", symbol, err)
	}

	l.mu.Lock()
	l.syms[symbol] = a
	l.mu.Unlock()
	return a, nil
}

// Invoke resolves symbol and calls it with the given arguments. The call
// blocks until the engine returns; there is no cancellation once issued.
func (l *Library) Invoke(symbol string, args ...uintptr) error {
	a, err := l.addr(symbol)
	if err != nil {
		return err
	}
	r1, _, _ := purego.SyscallN(a, args...)
	return Result(r1).Err(symbol)
}
