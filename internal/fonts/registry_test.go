package fonts

import (
	"sync"
	"testing"
	"testing/fstest"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/tuxedo/internal/diag"
)

// countingManager wraps a MemoryManager and counts Register calls per font.
type countingManager struct {
	*MemoryManager
	mu    sync.Mutex
	calls map[Name]int
}

func newCountingManager() *countingManager {
	return &countingManager{MemoryManager: NewMemoryManager(), calls: make(map[Name]int)}
}

func (c *countingManager) Register(name Name, res fyne.Resource) error {
	c.mu.Lock()
	c.calls[name]++
	c.mu.Unlock()
	return c.MemoryManager.Register(name, res)
}

func fullBundle() *FSBundle {
	fsys := fstest.MapFS{}
	for _, n := range Names() {
		fsys[n.FileBase()+".ttf"] = &fstest.MapFile{Data: []byte("ttf:" + n.FileBase())}
	}
	return NewFSBundle(fsys)
}

func TestFSBundle_Lookup(t *testing.T) {
	fsys := fstest.MapFS{
		"Lexend-Bold.ttf":        {Data: []byte("bold")},
		"Montserrat-Regular.otf": {Data: []byte("regular")},
	}
	b := NewFSBundle(fsys)

	res, err := b.Lookup("Lexend-Bold")
	require.NoError(t, err)
	assert.Equal(t, "Lexend-Bold.ttf", res.Name())
	assert.Equal(t, []byte("bold"), res.Content())

	res, err = b.Lookup("Montserrat-Regular")
	require.NoError(t, err)
	assert.Equal(t, "Montserrat-Regular.otf", res.Name())

	_, err = b.Lookup("Lexend-Thin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistry_RegistersOncePerFont(t *testing.T) {
	mgr := newCountingManager()
	r := NewRegistry(fullBundle(), mgr)
	require.False(t, r.Registered())

	for i := 0; i < 5; i++ {
		r.EnsureRegistered()
	}
	r.Font(H2, Montserrat, true)
	r.Font(BodyStyle, Lexend, false)

	assert.True(t, r.Registered())
	for _, n := range Names() {
		assert.Equal(t, 1, mgr.calls[n], "%s registered %d times", n, mgr.calls[n])
	}
}

func TestRegistry_ConcurrentCallersRegisterOnce(t *testing.T) {
	mgr := newCountingManager()
	r := NewRegistry(fullBundle(), mgr)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Font(Caption, Montserrat, true)
		}()
	}
	wg.Wait()

	for _, n := range Names() {
		assert.Equal(t, 1, mgr.calls[n], n.FileBase())
	}
}

func TestRegistry_MissingFontIsNonFatal(t *testing.T) {
	fsys := fstest.MapFS{}
	for _, n := range Names() {
		if n == LexendThin {
			continue
		}
		fsys[n.FileBase()+".ttf"] = &fstest.MapFile{Data: []byte("x")}
	}
	rec := &diag.Recorder{}
	mgr := newCountingManager()
	r := NewRegistry(NewFSBundle(fsys), mgr, WithSink(rec))

	r.EnsureRegistered()

	assert.Equal(t, len(Names())-1, mgr.Len())
	assert.Zero(t, mgr.calls[LexendThin])
	nf := rec.NonFatals()
	require.Len(t, nf, 1)
	assert.Equal(t, "Font Style Unavailable - Lexend-Thin", nf[0].Domain)
	assert.Equal(t, diag.CodeUnavailableFont, nf[0].Code)
}

func TestRegistry_FallsBackToDefaultFont(t *testing.T) {
	rec := &diag.Recorder{}
	r := NewRegistry(EmptyBundle{}, nil, WithSink(rec))

	h := r.Font(BodyStyle, Lexend, false)
	assert.True(t, h.Fallback)
	assert.NotNil(t, h.Resource)
	assert.Equal(t, float32(14), h.Size)
	assert.NotEmpty(t, rec.NonFatals())
}

func TestRegistry_FontUsesBundledResource(t *testing.T) {
	r := NewRegistry(fullBundle(), nil)

	h := r.Font(H4, Montserrat, false)
	assert.False(t, h.Fallback)
	assert.Equal(t, MontserratExtraBold, h.Name)
	assert.Equal(t, "Montserrat-ExtraBold.ttf", h.Resource.Name())
	assert.Equal(t, float32(20), h.Size)
	assert.Equal(t, Headline, h.TextStyle)
}

func TestRegistry_ScaledUsesMetrics(t *testing.T) {
	r := NewRegistry(fullBundle(), nil, WithMetrics(DynamicType{Size: ExtraExtraExtraLarge}))

	fixed := r.Font(BodyStyle, Montserrat, false)
	scaled := r.Font(BodyStyle, Montserrat, true)

	assert.Equal(t, float32(14), fixed.Size)
	assert.InDelta(t, 14.0*23.0/17.0, scaled.Size, 0.001)
	assert.True(t, scaled.Scaled)
}

func TestRegistry_FontForCustomComponents(t *testing.T) {
	r := NewRegistry(fullBundle(), nil, WithMetrics(FixedMetrics{}))
	h := r.FontFor(Components{Name: LexendMedium, PointSize: 22, TextStyle: Headline}, true)
	assert.Equal(t, float32(22), h.Size)
	assert.Equal(t, "Lexend-Medium.ttf", h.Resource.Name())
}

func TestRegistry_MissingFaceReportedOnce(t *testing.T) {
	rec := &diag.Recorder{}
	r := NewRegistry(EmptyBundle{}, nil, WithSink(rec))

	for range 100 {
		h := r.Font(BodyStyle, Montserrat, false)
		require.True(t, h.Fallback)
		r.FontFor(ComponentsFor(H2, Lexend), true)
	}

	nf := rec.NonFatals()
	assert.Len(t, nf, len(Names()))
	seen := make(map[string]bool)
	for _, n := range nf {
		assert.False(t, seen[n.Domain], "reported twice: %s", n.Domain)
		seen[n.Domain] = true
	}
}

func TestRegistry_Loaded(t *testing.T) {
	assert.Zero(t, NewRegistry(EmptyBundle{}, nil).Loaded())

	r := NewRegistry(fullBundle(), nil)
	r.EnsureRegistered()
	assert.Equal(t, len(Names()), r.Loaded())
}
