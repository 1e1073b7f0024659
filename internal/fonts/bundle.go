package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"fyne.io/fyne/v2"
)

// ErrNotFound is returned by a Bundle that has no file for a font.
var ErrNotFound = errors.New("font resource not found")

// Bundle locates font files by base name.
type Bundle interface {
	Lookup(base string) (fyne.Resource, error)
}

// fontExtensions are tried in order.
var fontExtensions = []string{".ttf", ".otf"}

// FSBundle reads fonts from the root of a file system.
type FSBundle struct {
	fsys fs.FS
}

// NewFSBundle serves fonts from fsys, e.g. an embed.FS or fstest.MapFS.
func NewFSBundle(fsys fs.FS) *FSBundle {
	return &FSBundle{fsys: fsys}
}

// NewDirBundle serves fonts from a directory on disk.
func NewDirBundle(dir string) *FSBundle {
	return NewFSBundle(os.DirFS(dir))
}

// Lookup returns the first of base.ttf or base.otf that exists.
func (b *FSBundle) Lookup(base string) (fyne.Resource, error) {
	for _, ext := range fontExtensions {
		file := base + ext
		data, err := fs.ReadFile(b.fsys, file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		return fyne.NewStaticResource(file, data), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, base)
}

// EmptyBundle has no fonts. Every lookup reports ErrNotFound.
type EmptyBundle struct{}

func (EmptyBundle) Lookup(base string) (fyne.Resource, error) {
	return nil, fmt.Errorf("%w: %s", ErrNotFound, base)
}

// Manager is the process font table the registry registers into and the
// theme reads from.
type Manager interface {
	Register(name Name, res fyne.Resource) error
	Resource(name Name) (fyne.Resource, bool)
}

// MemoryManager keeps registered fonts in memory. Safe for concurrent use.
type MemoryManager struct {
	mu    sync.RWMutex
	fonts map[Name]fyne.Resource
}

// NewMemoryManager returns an empty manager.
func NewMemoryManager() *MemoryManager {
	return &MemoryManager{fonts: make(map[Name]fyne.Resource)}
}

// Register stores res for name, replacing any earlier resource.
func (m *MemoryManager) Register(name Name, res fyne.Resource) error {
	if res == nil {
		return fmt.Errorf("register %s: nil resource", name)
	}
	m.mu.Lock()
	m.fonts[name] = res
	m.mu.Unlock()
	return nil
}

// Resource returns the registered resource for name.
func (m *MemoryManager) Resource(name Name) (fyne.Resource, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res, ok := m.fonts[name]
	return res, ok
}

// Len is the number of registered fonts.
func (m *MemoryManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.fonts)
}
