package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/modkit/internal/config"
	"github.com/zeusync/modkit/internal/core/binding"
	"github.com/zeusync/modkit/internal/core/events/bus"
	"github.com/zeusync/modkit/internal/core/hooks"
	"github.com/zeusync/modkit/internal/core/ids"
	"github.com/zeusync/modkit/internal/core/item"
	"github.com/zeusync/modkit/internal/core/modloader"
	"github.com/zeusync/modkit/internal/core/observability/log"
	"github.com/zeusync/modkit/internal/core/registry"
)

// Runtime is everything a host needs to load mods and dispatch hooks.
type Runtime struct {
	Config     *config.Config
	Logger     *log.Logger
	Events     bus.EventBus
	Registry   *registry.Registry
	Dispatcher *hooks.Dispatcher
	Loader     *modloader.Loader
}

var CoreSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	bus.New,
	ProvideAllocator,
	registry.New,
	binding.New,
	hooks.New,
)

var RuntimeSet = wire.NewSet(
	CoreSet,
	ProvideCatalog,
	modloader.New,
	wire.Struct(new(Runtime), "*"),
)

func ProvideLogger(cfg *config.Config) *log.Logger {
	return log.New(cfg.Level())
}

func ProvideAllocator(cfg *config.Config) *ids.Allocator {
	return ids.NewAllocator(item.ID(cfg.NativeItems))
}

func ProvideCatalog(mods []modloader.Mod) (*modloader.Catalog, error) {
	return modloader.NewCatalog(mods...)
}
