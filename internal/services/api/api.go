// Package api composes the HTTP API for the application
package api

import (
	"salaryscope/internal/platform/config"
	"salaryscope/internal/platform/logger"
	phttp "salaryscope/internal/platform/net/http"
	"salaryscope/internal/platform/store"

	"salaryscope/internal/modkit"
	"salaryscope/internal/modkit/httpkit"
	"salaryscope/internal/modkit/module"

	adminmod "salaryscope/internal/services/api/admin/module"
	geodom "salaryscope/internal/services/api/geo/domain"
	geomod "salaryscope/internal/services/api/geo/module"
	metamod "salaryscope/internal/services/api/meta/module"
	pagesmod "salaryscope/internal/services/api/pages/module"
	salariesdom "salaryscope/internal/services/api/salaries/domain"
	salariesmod "salaryscope/internal/services/api/salaries/module"
	sitemaphttp "salaryscope/internal/services/api/sitemap/http"
	sitemapsvc "salaryscope/internal/services/api/sitemap/service"
	viewsdom "salaryscope/internal/services/pageviews/domain"
	viewsmod "salaryscope/internal/services/pageviews/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// providers first, so their ports can feed the pages module
	geo := geomod.New(deps)
	salaries := salariesmod.New(deps)
	views := viewsmod.New(deps)

	geoPort := module.MustPortsOf[geodom.DirectoryPort](geo)
	salariesPort := module.MustPortsOf[salariesdom.ServicePort](salaries)
	emitter := module.MustPortsOf[viewsdom.EmitterPort](views)

	pages := pagesmod.New(deps, modkit.WithPorts(pagesmod.Ports{
		Geo:      geoPort,
		Salaries: salariesPort,
		Views:    emitter,
	}))

	mods := []module.Module{
		metamod.New(deps),
		geo,
		salaries,
		views,
		pages,
		adminmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountSwagger(r, opt.EnableSwagger)

		for _, m := range mods {
			// register each module's ports under its own name for cross-module lookups
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	// the sitemap is crawler-facing and lives at the site root
	site := opt.Config.Prefix("SITE_")
	sitemap := sitemapsvc.New(
		geoPort,
		module.MustPortsOf[sitemapsvc.SlugSource](salaries),
		site.MayString("BASE_URL", "http://localhost:8080"),
		site.MayInt("SITEMAP_MAX_OCCUPATIONS", 1000),
	)
	sitemaphttp.Register(r, sitemap)
}
