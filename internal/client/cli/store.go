package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/matrimony-client/internal/client/auth"
	"github.com/iudanet/matrimony-client/internal/client/storage"
	"github.com/iudanet/matrimony-client/internal/client/storage/boltdb"
	"github.com/iudanet/matrimony-client/internal/client/storage/memory"
	"github.com/iudanet/matrimony-client/internal/client/storage/sqlite"
	"github.com/iudanet/matrimony-client/internal/config"
	"github.com/iudanet/matrimony-client/internal/crypto"
)

// saltSuffix файл соли Argon2 лежит рядом с базой
const saltSuffix = ".salt"

// OpenStore opens the SessionStore selected by cfg.Driver. With a
// passphrase the persistent drivers are wrapped so tokens are encrypted
// at rest. The memory driver is never encrypted.
func OpenStore(ctx context.Context, cfg config.StorageConfig) (storage.SessionStore, error) {
	var (
		store storage.SessionStore
		err   error
	)

	switch cfg.Driver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverSQLite:
		store, err = sqlite.New(ctx, cfg.Path)
	case config.DriverBolt, "":
		store, err = boltdb.New(ctx, cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage at %s: %w", cfg.Driver, cfg.Path, err)
	}

	if cfg.Passphrase == "" {
		return store, nil
	}

	secure, err := secureStore(store, cfg)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return secure, nil
}

func secureStore(store storage.SessionStore, cfg config.StorageConfig) (storage.SessionStore, error) {
	salt, err := crypto.LoadOrCreateSalt(cfg.Path + saltSuffix)
	if err != nil {
		return nil, fmt.Errorf("failed to load store salt: %w", err)
	}

	key, err := crypto.DeriveStoreKey(cfg.Passphrase, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive store key: %w", err)
	}

	secure, err := auth.NewSecureStore(store, key)
	if err != nil {
		return nil, fmt.Errorf("failed to create secure store: %w", err)
	}
	return secure, nil
}
