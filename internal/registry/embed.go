package registry

import (
	"context"
	"embed"
	"io/fs"
	"sync"
)

//go:embed templates
var embeddedFS embed.FS

const manifestPath = "templates/registry.json"

// EmbeddedStore serves templates baked into the binary at build time.
// It initializes once, on first use, into an immutable lookup table —
// spec.md §9's "process-wide embedded resources + lazy registry
// singleton" requirement, implemented with Go's embed primitive instead
// of the original's include_dir!+OnceLock (there is no ecosystem
// equivalent to reach for; embed.FS is the idiomatic Go primitive for
// this exact need, mirrored on prompty.storage.filesystem.go's
// root-rooted read-only store).
type EmbeddedStore struct {
	entries []Entry
	texts   map[key]string
}

var (
	defaultStoreOnce sync.Once
	defaultStore     *EmbeddedStore
	defaultStoreErr  error
)

// DefaultEmbeddedStore returns the process-wide embedded store, building
// it on first call. Init failure is treated as a programmer error per
// spec.md §9: the manifest and its templates are compiled into the
// binary, so a decode failure here can only mean a broken build.
func DefaultEmbeddedStore() *EmbeddedStore {
	defaultStoreOnce.Do(func() {
		defaultStore, defaultStoreErr = newEmbeddedStore(embeddedFS)
		if defaultStoreErr != nil {
			panic("registry: embedded manifest failed to load: " + defaultStoreErr.Error())
		}
	})
	return defaultStore
}

func newEmbeddedStore(fsys fs.FS) (*EmbeddedStore, error) {
	data, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, NewManifestInvalidError(err)
	}
	entries, err := parseManifest(data)
	if err != nil {
		return nil, err
	}

	texts := make(map[key]string, len(entries))
	for _, e := range entries {
		body, err := fs.ReadFile(fsys, "templates/"+e.Template)
		if err != nil {
			return nil, NewManifestInvalidError(err)
		}
		texts[key{platform: e.Platform, command: e.CommandKey}] = string(body)
	}

	return &EmbeddedStore{entries: entries, texts: texts}, nil
}

// Lookup implements Store.
func (s *EmbeddedStore) Lookup(_ context.Context, platform, commandKey string) (string, bool, error) {
	text, ok := s.texts[key{platform: platform, command: commandKey}]
	return text, ok, nil
}

// Entries implements Store.
func (s *EmbeddedStore) Entries(_ context.Context) ([]Entry, error) {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

var _ Store = (*EmbeddedStore)(nil)
