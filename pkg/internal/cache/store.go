package cache

import (
	"github.com/dgraph-io/ristretto"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
	"github.com/spf13/viper"
)

// R is the raw ristretto instance, S the gocache store wrapped around it.
// Both are process-wide singletons; the cache is a pure accelerator, so a
// fresh empty store must never change query results, only latency.
var (
	R *ristretto.Cache
	S *ristretto_store.RistrettoStore
)

func NewStore() error {
	var err error
	R, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: viper.GetInt64("performance.cache_counters"),
		MaxCost:     viper.GetInt64("performance.cache_max_cost"),
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	S = ristretto_store.NewRistretto(R)
	return nil
}
