package router

import (
	"github.com/oksasatya/go-profile-auth/internal/application"
	"github.com/oksasatya/go-profile-auth/internal/container"
	repo "github.com/oksasatya/go-profile-auth/internal/domain/repository"
	"github.com/oksasatya/go-profile-auth/internal/infrastructure/cache"
	pginfra "github.com/oksasatya/go-profile-auth/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-profile-auth/internal/interface/http"
	"github.com/oksasatya/go-profile-auth/internal/router/modules"
)

type ModuleDeps struct {
	Service        *application.Service
	AuthHandler    *handlers.AuthHandler
	ProfileHandler *handlers.ProfileHandler
}

func buildService() *application.Service {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	var accounts repo.AccountRepository = pginfra.NewAccountRepository(pool)
	if rdb := container.GetRedis(); rdb != nil {
		accounts = cache.NewAccountRepository(accounts, rdb, cfg.AccountCacheTTL, logger)
	}

	// nil pointers must not leak into the interfaces
	var verifier application.IdentityVerifier
	if v := container.GetGoogle(); v != nil {
		verifier = v
	}
	var notifier application.Notifier
	if pub := container.GetRabbitPub(); pub != nil && cfg.MailSendEnabled {
		notifier = application.NewEmailNotifier(pub, cfg, logger)
	}

	return application.NewService(
		accounts,
		pginfra.NewProfileRepository(pool),
		container.GetHasher(),
		container.GetJWT(),
		verifier,
		notifier,
		logger,
	)
}

func buildDeps() ModuleDeps {
	svc := buildService()
	return ModuleDeps{
		Service:        svc,
		AuthHandler:    handlers.NewAuthHandler(svc, container.GetLogger()),
		ProfileHandler: handlers.NewProfileHandler(svc, container.GetLogger()),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildDeps()
	r.Add(modules.NewHealthModule())
	r.Add(modules.NewAuthModule(deps.AuthHandler))
	r.Add(modules.NewProfileModule(deps.ProfileHandler, deps.Service))
}
