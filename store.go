package formwizard

import (
	"fmt"

	"github.com/goliatone/go-formwizard/pkg/config"
	"github.com/goliatone/go-formwizard/pkg/store"
	"github.com/goliatone/go-formwizard/pkg/store/bbolt"
	"github.com/goliatone/go-formwizard/pkg/store/memory"
	"github.com/goliatone/go-formwizard/pkg/store/sqlite"
)

// OpenStore opens the backend selected by cfg.Store.
func OpenStore(cfg config.Config) (store.Backend, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return memory.New(nil), nil
	case config.StoreBBolt:
		kv, err := bbolt.Open(cfg.ResolvedStorePath())
		if err != nil {
			return nil, fmt.Errorf("formwizard: open bbolt store: %w", err)
		}
		return kv, nil
	case config.StoreSQLite:
		kv, err := sqlite.Open(cfg.ResolvedStorePath())
		if err != nil {
			return nil, fmt.Errorf("formwizard: open sqlite store: %w", err)
		}
		return kv, nil
	default:
		return nil, fmt.Errorf("formwizard: unknown store %q", cfg.Store)
	}
}
