package memcachefx

import (
	"go.uber.org/fx"
	mem "swoon/pkg/memcache"
)

var Module = fx.Provide(provideSessionCache)

func provideSessionCache() mem.SessionCacheInterface {
	return mem.NewSessionCache()
}
