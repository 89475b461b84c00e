package game_test

import (
	"casino_sim/internal/middleware"
	"casino_sim/internal/model"
	"casino_sim/internal/repository"
	"casino_sim/internal/repository/session_repo"
	"casino_sim/internal/repository/stats_repo"
	"casino_sim/internal/service"
	"casino_sim/internal/service/game"
	"casino_sim/internal/service/payment"
	"context"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	if _, ok := r.users[user.Login]; ok {
		return model.ErrDuplicateUsername
	}
	cp := *user
	r.users[user.Login] = &cp
	return nil
}

func (r *fakeUserRepo) GetUserByLogin(_ context.Context, login string) (*model.User, error) {
	u, ok := r.users[login]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetBalance(_ context.Context, login string) (decimal.Decimal, error) {
	u, ok := r.users[login]
	if !ok {
		return decimal.Zero, model.ErrUserNotFound
	}
	return u.Balance, nil
}

func (r *fakeUserRepo) UpdateBalance(_ context.Context, login string, balance decimal.Decimal) error {
	u, ok := r.users[login]
	if !ok {
		return model.ErrUserNotFound
	}
	u.Balance = balance
	return nil
}

// Скриптованный источник случайности: символы и бонусы задаются заранее
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(_ int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

type testEnv struct {
	ctx         context.Context
	userRepo    *fakeUserRepo
	sessionRepo repository.SessionRepository
	paymentServ service.PaymentService
	statsRepo   repository.StatsRepository
}

func newTestEnv(t *testing.T, balance int64, variant model.GameVariant) *testEnv {
	t.Helper()

	userRepo := newFakeUserRepo()
	err := userRepo.CreateUser(context.Background(), &model.User{
		Login:    "alice",
		Password: "secret",
		Balance:  decimal.NewFromInt(balance),
	})
	require.NoError(t, err)

	sessionRepo := session_repo.NewSessionRepository()
	err = sessionRepo.CreateSession(context.Background(), &model.Session{
		ID:    "sess-1",
		Login: "alice",
	})
	require.NoError(t, err)

	ctx := middleware.ContextWithLogin(context.Background(), "alice")
	if variant != "" {
		err = sessionRepo.SetActiveGame(ctx, "alice", variant)
		require.NoError(t, err)
	}

	return &testEnv{
		ctx:         ctx,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		paymentServ: payment.NewPaymentService(userRepo),
		statsRepo:   stats_repo.NewStatsRepository(),
	}
}

func (e *testEnv) newService(rng game.Rand) service.GameService {
	return game.NewGameService(e.paymentServ, e.sessionRepo, e.statsRepo, rng)
}

func TestComputeTotalBet(t *testing.T) {
	// 5 линий независимо от варианта игры
	total, err := game.ComputeTotalBet(decimal.NewFromInt(3))
	require.NoError(t, err)
	require.True(t, total.Equal(decimal.NewFromInt(15)))

	total, err = game.ComputeTotalBet(decimal.NewFromFloat(0.2))
	require.NoError(t, err)
	require.True(t, total.Equal(decimal.NewFromInt(1)))
}

func TestComputeTotalBetInvalid(t *testing.T) {
	for _, bet := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := game.ComputeTotalBet(bet)
		require.ErrorIs(t, err, model.ErrInvalidBet)
	}
}

// Позиционные правила образуют цепочку приоритетов: срабатывает ровно одно
func TestEvaluateLines(t *testing.T) {
	bet := decimal.NewFromInt(1)

	tests := []struct {
		name   string
		reels  [3]string
		payout int64
	}{
		{"triple", [3]string{"🎯", "🎯", "🎯"}, 50},
		{"left pair", [3]string{"🎯", "🎯", "👑"}, 5},
		{"right pair", [3]string{"👑", "🎯", "🎯"}, 3},
		{"no match", [3]string{"🎯", "👑", "💰"}, 0},
		{"outer pair pays nothing", [3]string{"🎯", "👑", "🎯"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payout := game.EvaluateLines(tt.reels, bet)
			require.True(t, payout.Equal(decimal.NewFromInt(tt.payout)),
				"expected %d, got %s", tt.payout, payout)
		})
	}
}

// Сценарий из оригинала: баланс 100, ставка 10 (общая 50), DiamondRush,
// форсированная тройка 💎, оба бонуса не сработали.
// Выплата 10*50=500, новый баланс 100-50+500=550
func TestSpinForcedTriple(t *testing.T) {
	env := newTestEnv(t, 100, model.VariantDiamondRush)
	serv := env.newService(&scriptedRand{
		ints:   []int{0, 0, 0},       // 💎 💎 💎
		floats: []float64{0.9, 0.9}, // оба бонуса мимо
	})

	res, err := serv.Spin(env.ctx, model.Spin{BetPerLine: decimal.NewFromInt(10)})
	require.NoError(t, err)

	require.Equal(t, [3]string{"💎", "💎", "💎"}, res.Reels)
	require.True(t, res.TotalPayout.Equal(decimal.NewFromInt(500)))
	require.True(t, res.Balance.Equal(decimal.NewFromInt(550)))

	balance, err := env.paymentServ.Balance(env.ctx)
	require.NoError(t, err)
	require.True(t, balance.Equal(decimal.NewFromInt(550)))
}

// Максимальная выплата за спин: тройка x50 плюс оба бонуса по x2 = x54
func TestSpinMaxPayout(t *testing.T) {
	env := newTestEnv(t, 100, model.VariantClassic)
	serv := env.newService(&scriptedRand{
		ints:   []int{2, 2, 2},       // 💰 💰 💰
		floats: []float64{0.1, 0.2}, // оба бонуса сработали
	})

	res, err := serv.Spin(env.ctx, model.Spin{BetPerLine: decimal.NewFromInt(1)})
	require.NoError(t, err)
	require.True(t, res.TotalPayout.Equal(decimal.NewFromInt(54)))
	// 100 - 5 + 54 = 149
	require.True(t, res.Balance.Equal(decimal.NewFromInt(149)))
}

// Бонусы не зависят от позиционного правила: пустой борд, один бонус
func TestSpinBonusOnLosingBoard(t *testing.T) {
	env := newTestEnv(t, 100, model.VariantClassic)
	serv := env.newService(&scriptedRand{
		ints:   []int{0, 1, 2},        // без совпадений
		floats: []float64{0.24, 0.25}, // первый бонус сработал, второй нет (строго < 0.25)
	})

	res, err := serv.Spin(env.ctx, model.Spin{BetPerLine: decimal.NewFromInt(10)})
	require.NoError(t, err)
	require.True(t, res.TotalPayout.Equal(decimal.NewFromInt(20)))
}

func TestSpinInsufficientFunds(t *testing.T) {
	// Ставка 10 -> общая 50, на балансе только 49
	env := newTestEnv(t, 49, model.VariantClassic)
	serv := env.newService(&scriptedRand{})

	_, err := serv.Spin(env.ctx, model.Spin{BetPerLine: decimal.NewFromInt(10)})
	require.ErrorIs(t, err, model.ErrInsufficientFunds)

	// Частичного списания не было
	balance, err := env.paymentServ.Balance(env.ctx)
	require.NoError(t, err)
	require.True(t, balance.Equal(decimal.NewFromInt(49)))
}

func TestSpinInvalidBet(t *testing.T) {
	env := newTestEnv(t, 100, model.VariantClassic)
	serv := env.newService(&scriptedRand{})

	_, err := serv.Spin(env.ctx, model.Spin{BetPerLine: decimal.Zero})
	require.ErrorIs(t, err, model.ErrInvalidBet)
}

func TestSpinNoGameSelected(t *testing.T) {
	env := newTestEnv(t, 100, "")
	serv := env.newService(&scriptedRand{})

	_, err := serv.Spin(env.ctx, model.Spin{BetPerLine: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, model.ErrNoGameSelected)
}

// Пока флаг занятости взведен, новый спин той же сессии отклоняется
func TestSpinWhileSpinInProgress(t *testing.T) {
	env := newTestEnv(t, 100, model.VariantClassic)
	serv := env.newService(&scriptedRand{})

	err := env.sessionRepo.BeginSpin(env.ctx, "alice")
	require.NoError(t, err)

	_, err = serv.Spin(env.ctx, model.Spin{BetPerLine: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, model.ErrSpinInProgress)

	// После снятия флага спин проходит
	err = env.sessionRepo.EndSpin(env.ctx, "alice")
	require.NoError(t, err)

	serv = env.newService(&scriptedRand{ints: []int{0, 1, 2}, floats: []float64{0.9, 0.9}})
	_, err = serv.Spin(env.ctx, model.Spin{BetPerLine: decimal.NewFromInt(1)})
	require.NoError(t, err)
}

func TestSelectGame(t *testing.T) {
	env := newTestEnv(t, 100, "")
	serv := env.newService(&scriptedRand{})

	err := serv.SelectGame(env.ctx, model.VariantDiamondRush)
	require.NoError(t, err)

	session, err := env.sessionRepo.GetSessionByLogin(env.ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, model.VariantDiamondRush, session.ActiveGame)
}

func TestSelectGameUnknownVariant(t *testing.T) {
	env := newTestEnv(t, 100, "")
	serv := env.newService(&scriptedRand{})

	err := serv.SelectGame(env.ctx, model.GameVariant("poker"))
	require.Error(t, err)
}

// Симуляция множества спинов со случайными ставками: общая ставка никогда
// не превышает баланс в момент списания, баланс никогда не уходит в минус,
// выплата за спин не превышает x54 от ставки на линию
func TestSpinInvariantSimulation(t *testing.T) {
	env := newTestEnv(t, 200, model.VariantClassic)
	rng := rand.New(rand.NewSource(1))
	serv := env.newService(rng)

	maxMult := decimal.NewFromInt(54)

	for i := 0; i < 10000; i++ {
		balance, err := env.paymentServ.Balance(env.ctx)
		require.NoError(t, err)
		require.True(t, balance.Sign() >= 0)

		bet := decimal.NewFromInt(int64(rng.Intn(20) + 1))
		totalBet := bet.Mul(decimal.NewFromInt(5))

		res, err := serv.Spin(env.ctx, model.Spin{BetPerLine: bet})
		if totalBet.GreaterThan(balance) {
			require.ErrorIs(t, err, model.ErrInsufficientFunds)

			// Отклоненный спин не трогает баланс, пополняем и продолжаем
			after, balErr := env.paymentServ.Balance(env.ctx)
			require.NoError(t, balErr)
			require.True(t, after.Equal(balance))

			_, err = env.paymentServ.Deposit(env.ctx, model.Deposit{Amount: decimal.NewFromInt(200)})
			require.NoError(t, err)
			continue
		}

		require.NoError(t, err)
		require.True(t, res.TotalPayout.Sign() >= 0)
		require.True(t, res.TotalPayout.LessThanOrEqual(bet.Mul(maxMult)))
		require.True(t, res.Balance.Equal(balance.Sub(totalBet).Add(res.TotalPayout)))
		require.True(t, res.Balance.Sign() >= 0)
	}

	stats := serv.Stats()
	require.Greater(t, stats.TotalSpins, 0)
	require.Greater(t, stats.TotalBet, 0.0)
}
