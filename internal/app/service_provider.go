package app

import (
	authAPI "casino_sim/internal/api/auth"
	gameAPI "casino_sim/internal/api/game"
	walletAPI "casino_sim/internal/api/wallet"
	"casino_sim/internal/config"
	"casino_sim/internal/config/env"
	"casino_sim/internal/middleware"
	"casino_sim/internal/repository"
	"casino_sim/internal/repository/pg_repo"
	"casino_sim/internal/repository/redis_repo"
	"casino_sim/internal/repository/session_repo"
	"casino_sim/internal/repository/stats_repo"
	"casino_sim/internal/repository/user_repo"
	"casino_sim/internal/service"
	"casino_sim/internal/service/auth"
	"casino_sim/internal/service/game"
	"casino_sim/internal/service/payment"
	"context"
	"math/rand"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type ServiceProvider struct {
	// Store bits
	storeConfig config.StoreConfig
	redisConfig config.RedisConfig
	pgConfig    config.PGConfig
	redisClient *redis.Client
	dbClient    *pgxpool.Pool

	// Auth bits
	jwtConfig   config.JWTConfig
	sessionRepo repository.SessionRepository
	authServ    service.AuthService
	authHand    *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Wallet bits
	paymentServ service.PaymentService
	walletHand  *walletAPI.Handler

	// Game bits
	statsRepo repository.StatsRepository
	gameServ  service.GameService
	gameHand  *gameAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) StoreConfig() config.StoreConfig {
	if sp.storeConfig == nil {
		cfg, err := env.NewStoreConfig()
		if err != nil {
			panic("failed to get store config: " + err.Error())
		}
		sp.storeConfig = cfg
	}
	return sp.storeConfig
}

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisConfig == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisConfig = cfg
	}
	return sp.redisConfig
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil {
		rdb := redis.NewClient(&redis.Options{
			Addr: sp.RedisConfig().Addr(),
		})
		err := rdb.Ping(ctx).Err()
		if err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

// UserRepo Хранилище аккаунтов. Бэкенд выбирается через STORE_BACKEND:
// локальный файловый блоб (по умолчанию), Redis или Postgres
func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		switch sp.StoreConfig().Backend() {
		case "redis":
			sp.userRepo = redis_repo.NewUserRepository(sp.RedisClient(ctx))
		case "postgres":
			sp.userRepo = pg_repo.NewUserRepository(sp.DBClient(ctx))
		default:
			repo, err := user_repo.NewUserRepository(sp.StoreConfig().LedgerPath())
			if err != nil {
				panic("failed to load ledger file: " + err.Error())
			}
			sp.userRepo = repo
		}
	}
	return sp.userRepo
}

func (sp *ServiceProvider) SessionRepo() repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository()
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) StatsRepo() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.UserRepo(ctx), sp.SessionRepo(), sp.JWTConfig())
	}
	return sp.authServ
}

func (sp *ServiceProvider) PaymentService(ctx context.Context) service.PaymentService {
	if sp.paymentServ == nil {
		sp.paymentServ = payment.NewPaymentService(sp.UserRepo(ctx))
	}
	return sp.paymentServ
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		sp.gameServ = game.NewGameService(sp.PaymentService(ctx), sp.SessionRepo(), sp.StatsRepo(), rng)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{
			Serv: sp.PaymentService(ctx),
		})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv: sp.GameService(ctx),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
		}))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", sp.AuthHandler(ctx).Register)
			r.Post("/login", sp.AuthHandler(ctx).Login)
			r.Post("/refresh", sp.AuthHandler(ctx).Refresh)
			r.Post("/logout", sp.AuthHandler(ctx).Logout)
		})

		r.Route("/wallet", func(r chi.Router) {
			r.Use(middleware.Auth(sp.JWTConfig()))
			r.Post("/deposit", sp.WalletHandler(ctx).Deposit)
			r.Post("/withdraw", sp.WalletHandler(ctx).Withdraw)
			r.Get("/balance", sp.WalletHandler(ctx).Balance)
		})

		r.Route("/game", func(r chi.Router) {
			r.Use(middleware.Auth(sp.JWTConfig()))
			r.Post("/select", sp.GameHandler(ctx).Select)
			r.Post("/spin", sp.GameHandler(ctx).Spin)
			r.Get("/stats", sp.GameHandler(ctx).Stats)
		})

		sp.router = r
	}
	return sp.router
}
