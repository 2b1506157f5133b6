//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/modkit/internal/config"
	"github.com/zeusync/modkit/internal/core/hooks"
	"github.com/zeusync/modkit/internal/core/modloader"
)

func InitializeRuntime(cfg *config.Config, host hooks.Host, mods []modloader.Mod) (*Runtime, error) {
	wire.Build(RuntimeSet)
	return nil, nil
}
