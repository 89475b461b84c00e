package payment_test

import (
	"casino_sim/internal/middleware"
	"casino_sim/internal/model"
	"casino_sim/internal/service/payment"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Фейковое хранилище аккаунтов в памяти для подмены внешнего стора в тестах
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

func newTestRepo(t *testing.T, login string, balance int64) (*fakeUserRepo, context.Context) {
	t.Helper()
	repo := newFakeUserRepo()
	err := repo.CreateUser(context.Background(), &model.User{
		Login:    login,
		Password: "secret",
		Balance:  decimal.NewFromInt(balance),
	})
	require.NoError(t, err)
	return repo, middleware.ContextWithLogin(context.Background(), login)
}

func TestDeposit(t *testing.T) {
	repo, ctx := newTestRepo(t, "alice", 100)
	serv := payment.NewPaymentService(repo)

	balance, err := serv.Deposit(ctx, model.Deposit{Amount: decimal.NewFromInt(50)})
	require.NoError(t, err)
	require.True(t, balance.Equal(decimal.NewFromInt(150)))
}

func TestDepositInvalidAmount(t *testing.T) {
	repo, ctx := newTestRepo(t, "alice", 100)
	serv := payment.NewPaymentService(repo)

	tests := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"zero", decimal.Zero},
		{"negative", decimal.NewFromInt(-10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := serv.Deposit(ctx, model.Deposit{Amount: tt.amount})
			require.ErrorIs(t, err, model.ErrInvalidAmount)

			// Баланс не изменился
			balance, err := serv.Balance(ctx)
			require.NoError(t, err)
			require.True(t, balance.Equal(decimal.NewFromInt(100)))
		})
	}
}

func TestWithdraw(t *testing.T) {
	repo, ctx := newTestRepo(t, "alice", 100)
	serv := payment.NewPaymentService(repo)

	balance, err := serv.Withdraw(ctx, model.Withdraw{Amount: decimal.NewFromInt(30)})
	require.NoError(t, err)
	require.True(t, balance.Equal(decimal.NewFromInt(70)))
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	repo, ctx := newTestRepo(t, "alice", 100)
	serv := payment.NewPaymentService(repo)

	_, err := serv.Withdraw(ctx, model.Withdraw{Amount: decimal.NewFromInt(101)})
	require.ErrorIs(t, err, model.ErrInsufficientFunds)

	// Баланс остался нетронутым
	balance, err := serv.Balance(ctx)
	require.NoError(t, err)
	require.True(t, balance.Equal(decimal.NewFromInt(100)))
}

func TestWithdrawWholeBalance(t *testing.T) {
	repo, ctx := newTestRepo(t, "alice", 100)
	serv := payment.NewPaymentService(repo)

	balance, err := serv.Withdraw(ctx, model.Withdraw{Amount: decimal.NewFromInt(100)})
	require.NoError(t, err)
	require.True(t, balance.IsZero())
}

// Баланс после последовательности операций равен
// старту + сумма депозитов - сумма снятий, и ни разу не уходит в минус
func TestDepositWithdrawSequence(t *testing.T) {
	repo, ctx := newTestRepo(t, "alice", 0)
	serv := payment.NewPaymentService(repo)

	ops := []struct {
		deposit bool
		amount  int64
	}{
		{true, 100},
		{false, 40},
		{true, 25},
		{false, 85},
		{true, 10},
	}

	expected := decimal.Zero
	for _, op := range ops {
		amount := decimal.NewFromInt(op.amount)
		var balance decimal.Decimal
		var err error
		if op.deposit {
			balance, err = serv.Deposit(ctx, model.Deposit{Amount: amount})
			expected = expected.Add(amount)
		} else {
			balance, err = serv.Withdraw(ctx, model.Withdraw{Amount: amount})
			expected = expected.Sub(amount)
		}
		require.NoError(t, err)
		require.True(t, balance.Equal(expected))
		require.True(t, balance.Sign() >= 0)
	}

	// 0 + 100 - 40 + 25 - 85 + 10 = 10
	balance, err := serv.Balance(ctx)
	require.NoError(t, err)
	require.True(t, balance.Equal(decimal.NewFromInt(10)))
}

func TestNoLoginInContext(t *testing.T) {
	repo, _ := newTestRepo(t, "alice", 100)
	serv := payment.NewPaymentService(repo)

	_, err := serv.Deposit(context.Background(), model.Deposit{Amount: decimal.NewFromInt(10)})
	require.ErrorIs(t, err, model.ErrUserNotFound)
}
