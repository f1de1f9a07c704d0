package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-profile-auth/config"
	"github.com/oksasatya/go-profile-auth/internal/infrastructure/google"
	"github.com/oksasatya/go-profile-auth/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.
// Redis, the publisher and the Google verifier are optional and stay nil
// when not configured.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	jwtManager *helpers.JWTManager
	hasher     *helpers.PasswordHasher

	rabbitPub      *helpers.RabbitPublisher
	googleVerifier *google.Verifier
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetPGPool(p *pgxpool.Pool)    { pgPool = p }
func GetPGPool() *pgxpool.Pool     { return pgPool }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }

func SetHasher(h *helpers.PasswordHasher) { hasher = h }
func GetHasher() *helpers.PasswordHasher {
	if hasher != nil {
		return hasher
	}
	return helpers.NewPasswordHasher(0, logger)
}

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
func SetGoogle(v *google.Verifier)            { googleVerifier = v }
func GetGoogle() *google.Verifier             { return googleVerifier }
