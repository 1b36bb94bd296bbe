// Package api provides the HTTP API for the application
package api

import (
	stdhttp "net/http"

	"atelier/internal/core/version"
	"atelier/internal/platform/config"
	"atelier/internal/platform/logger"
	phttp "atelier/internal/platform/net/http"
	"atelier/internal/platform/store"

	"atelier/internal/modkit"
	"atelier/internal/modkit/httpkit"
	"atelier/internal/modkit/module"

	assistantmod "atelier/internal/services/assistant/module"
	"atelier/internal/services/ident"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	mods := []module.Module{
		assistantmod.New(deps),
	}

	// bearer-token auth; with no tokens configured requests pass through
	// unauthenticated and owner-scoped endpoints reject them individually
	verifier := ident.FromConfig(opt.Config)
	stack := httpkit.CommonStack()
	if !verifier.Empty() {
		stack = append(stack, httpkit.Auth(verifier))
	}

	// versioned API with the common middleware stack
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		httpkit.Get(api, "/version", func(*stdhttp.Request) (any, error) {
			return version.Info(), nil
		})

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
