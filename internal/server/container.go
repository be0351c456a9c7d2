package server

import (
	"context"
	"fmt"
	"time"

	"github.com/nfrund/hive/internal/audit"
	"github.com/nfrund/hive/internal/config"
	"github.com/nfrund/hive/internal/credentials"
	"github.com/nfrund/hive/internal/database"
	"github.com/nfrund/hive/internal/database/postgres"
	"github.com/nfrund/hive/internal/domain"
	"github.com/nfrund/hive/internal/fixtures"
	"github.com/nfrund/hive/internal/gate"
	"github.com/nfrund/hive/internal/profile"
	"github.com/nfrund/hive/internal/pubsub"
	"github.com/samber/do/v2"
)

// connectTimeout bounds opening the row store connection at startup.
const connectTimeout = 10 * time.Second

// NewContainer registers the application services for cfg. Services are
// created lazily, so nothing connects until the first Invoke.
func NewContainer(cfg config.Provider) *do.RootScope {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.Provide(i, provideAuthProvider)
	do.Provide(i, provideRowStore)
	do.Provide(i, provideProfiles)
	do.Provide(i, provideCredentials)
	do.Provide(i, provideBridge)
	do.Provide(i, provideRecorder)
	do.Provide(i, provideGate)
	do.Provide(i, provideFixtures)
	return i
}

func provideAuthProvider(i do.Injector) (domain.AuthProvider, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return database.NewSurrealAuth(database.NewDialer(cfg), cfg.GetDBNs(), cfg.GetDBDb(), cfg.GetDBAccess()), nil
}

func provideRowStore(i do.Injector) (domain.RowStore, error) {
	cfg := do.MustInvoke[config.Provider](i)
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	switch cfg.GetRowStore() {
	case config.RowStorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.GetDatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("open postgres row store: %w", err)
		}
		return postgres.NewRowStore(pool), nil
	default:
		db, err := database.NewDB(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("open surreal row store: %w", err)
		}
		return database.NewSurrealRowStore(db), nil
	}
}

func provideProfiles(i do.Injector) (*profile.Resolver, error) {
	rows, err := do.Invoke[domain.RowStore](i)
	if err != nil {
		return nil, err
	}
	return profile.NewResolver(rows), nil
}

func provideCredentials(i do.Injector) (*credentials.Service, error) {
	auth, err := do.Invoke[domain.AuthProvider](i)
	if err != nil {
		return nil, err
	}
	profiles, err := do.Invoke[*profile.Resolver](i)
	if err != nil {
		return nil, err
	}
	return credentials.NewService(auth, profiles), nil
}

func provideBridge(do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(false), nil
}

func provideRecorder(i do.Injector) (audit.Recorder, error) {
	bridge, err := do.Invoke[*pubsub.WatermillBridge](i)
	if err != nil {
		return nil, err
	}
	return audit.NewRecorder(bridge), nil
}

func provideGate(i do.Injector) (*gate.Gate, error) {
	cfg := do.MustInvoke[config.Provider](i)
	auth, err := do.Invoke[domain.AuthProvider](i)
	if err != nil {
		return nil, err
	}
	profiles, err := do.Invoke[*profile.Resolver](i)
	if err != nil {
		return nil, err
	}
	recorder, err := do.Invoke[audit.Recorder](i)
	if err != nil {
		return nil, err
	}
	return gate.New(auth, profiles, gate.Options{
		LoginPath:              gate.DefaultLoginPath,
		NotifyOnProfileFailure: cfg.GetNotifyOnProfileFailure(),
		LookupTimeout:          cfg.GetLookupTimeout(),
		Recorder:               recorder,
	}), nil
}

func provideFixtures(i do.Injector) (*fixtures.Store, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return fixtures.NewStore(fixtures.Source(cfg.GetFixturesDir()))
}
