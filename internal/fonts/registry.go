package fonts

import (
	"errors"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/piwi3910/tuxedo/internal/diag"
)

// Handle is a resolved font ready for rendering.
type Handle struct {
	Name      Name
	Resource  fyne.Resource
	Size      float32
	TextStyle TextStyle
	Scaled    bool
	// Fallback is set when the bundled face was unavailable and Resource is
	// the platform default font.
	Fallback bool
}

// Registry loads bundled fonts into a Manager once and resolves styles to
// Handles.
type Registry struct {
	bundle  Bundle
	manager Manager
	metrics Metrics
	sink    diag.Sink

	once       sync.Once
	registered atomic.Bool
	reported   sync.Map // Name -> struct{}, faces already reported missing
}

// Option configures a Registry.
type Option func(*Registry)

// WithMetrics sets the scaling used for scaled fonts. Defaults to the
// default content size.
func WithMetrics(m Metrics) Option {
	return func(r *Registry) { r.metrics = m }
}

// WithSink sets where diagnostics go. Defaults to diag.Discard.
func WithSink(s diag.Sink) Option {
	return func(r *Registry) { r.sink = s }
}

// NewRegistry returns an unregistered registry.
func NewRegistry(bundle Bundle, manager Manager, opts ...Option) *Registry {
	if bundle == nil {
		bundle = EmptyBundle{}
	}
	if manager == nil {
		manager = NewMemoryManager()
	}
	r := &Registry{
		bundle:  bundle,
		manager: manager,
		metrics: DynamicType{Size: DefaultContentSize},
		sink:    diag.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registered reports whether the registration pass has run.
func (r *Registry) Registered() bool { return r.registered.Load() }

// Metrics returns the scaling in use.
func (r *Registry) Metrics() Metrics { return r.metrics }

// EnsureRegistered registers every font that needs it, once per Registry.
// A missing file is reported to the sink and the pass moves on; it is never
// retried.
func (r *Registry) EnsureRegistered() {
	r.once.Do(func() {
		for _, name := range Names() {
			if !name.RequiresRegistration() {
				continue
			}
			res, err := r.bundle.Lookup(name.FileBase())
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					r.reportMissing(name)
				} else {
					r.sink.Error("font lookup failed", "font", name.FileBase(), "err", err)
				}
				continue
			}
			if err := r.manager.Register(name, res); err != nil {
				r.sink.Error("font registration failed", "font", name.FileBase(), "err", err)
			}
		}
		r.registered.Store(true)
	})
}

// Font resolves style in family. When scaled is true the size follows the
// registry's Metrics.
func (r *Registry) Font(style Style, family Family, scaled bool) Handle {
	return r.FontFor(ComponentsFor(style, family), scaled)
}

// FontFor resolves caller-built components, for one-off styles.
func (r *Registry) FontFor(c Components, scaled bool) Handle {
	r.EnsureRegistered()

	h := Handle{
		Name:      c.Name,
		Size:      c.PointSize,
		TextStyle: c.TextStyle,
		Scaled:    scaled,
	}
	if scaled {
		h.Size = r.metrics.Scale(c.TextStyle, c.PointSize)
	}

	res, ok := r.manager.Resource(c.Name)
	if !ok {
		r.reportMissing(c.Name)
		res = theme.DefaultTheme().Font(fyne.TextStyle{Bold: c.Name.Bold()})
		h.Fallback = true
	}
	h.Resource = res
	return h
}

// Loaded counts the faces the manager holds.
func (r *Registry) Loaded() int {
	n := 0
	for _, name := range Names() {
		if _, ok := r.manager.Resource(name); ok {
			n++
		}
	}
	return n
}

// reportMissing sends the unavailable-font NonFatal for name the first time
// only. Fyne asks the theme for a font on every text measurement.
func (r *Registry) reportMissing(name Name) {
	if _, seen := r.reported.LoadOrStore(name, struct{}{}); seen {
		return
	}
	r.sink.NonFatal(diag.UnavailableFont(name.FileBase()))
}
