// Package module wires the assistant into the API using modkit
package module

import (
	"net/http"

	"atelier/internal/core/notepattern"
	"atelier/internal/core/noteintent"
	modkit "atelier/internal/modkit"
	"atelier/internal/modkit/httpkit"
	str "atelier/internal/platform/strings"
	"atelier/internal/services/assistant/domain"
	assistanthttp "atelier/internal/services/assistant/http"
	assistantrepo "atelier/internal/services/assistant/repo"
	assistantsvc "atelier/internal/services/assistant/service"
)

// Ports exposed by the assistant module
type Ports struct {
	Extractor domain.ExtractorPort
	Resolver  domain.ResolverPort
	Mutator   domain.MutatorPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *assistantsvc.Service
}

// New constructs an assistant module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("assistant"), modkit.WithPrefix("/assistant")}, opts...)...)

	pack, err := notepattern.Load()
	if err != nil {
		// the pack is embedded; failing to compile it is a programming error
		panic(err)
	}

	mo := FromConfig(deps.Cfg)
	svc := assistantsvc.New(deps.PG, assistantrepo.NewPG(), noteintent.New(pack), assistantsvc.Config{
		MaxBatchIDs: mo.MaxBatchIDs,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{
		Extractor: svc,
		Resolver:  svc,
		Mutator:   svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		assistanthttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
