package redis_repo

import (
	"casino_sim/internal/model"
	"casino_sim/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// Ключ, под которым в Redis лежит весь реестр одним JSON блобом
const defaultLedgerKey = "casino:users"

type record struct {
	Password string  `json:"password"`
	Balance  float64 `json:"balance"`
}

// Redis реализация хранилища аккаунтов. Каждая мутация - это цикл
// GET блоба, изменение и SET обратно. Отсутствие ключа трактуется
// как пустой реестр.
type repo struct {
	rdb *redis.Client
	key string
}

// NewUserRepository - создает хранилище аккаунтов поверх Redis
func NewUserRepository(rdb *redis.Client) repository.UserRepository {
	return &repo{
		rdb: rdb,
		key: defaultLedgerKey,
	}
}

// CreateUser - добавляет нового пользователя в блоб
func (r *repo) CreateUser(ctx context.Context, user *model.User) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}

	if _, ok := users[user.Login]; ok {
		return model.ErrDuplicateUsername
	}

	users[user.Login] = record{
		Password: user.Password,
		Balance:  user.Balance.InexactFloat64(),
	}

	return r.save(ctx, users)
}

// GetUserByLogin - возвращает модель пользователя (Login, Password, Balance) по его логину
func (r *repo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	rec, ok := users[login]
	if !ok {
		return nil, model.ErrUserNotFound
	}

	return &model.User{
		Login:    login,
		Password: rec.Password,
		Balance:  decimal.NewFromFloat(rec.Balance),
	}, nil
}

// GetBalance - получение баланса пользователя по его логину
func (r *repo) GetBalance(ctx context.Context, login string) (decimal.Decimal, error) {
	users, err := r.load(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	rec, ok := users[login]
	if !ok {
		return decimal.Zero, model.ErrUserNotFound
	}

	return decimal.NewFromFloat(rec.Balance), nil
}

// UpdateBalance - записывает новый баланс пользователя в блоб
func (r *repo) UpdateBalance(ctx context.Context, login string, balance decimal.Decimal) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}

	rec, ok := users[login]
	if !ok {
		return model.ErrUserNotFound
	}

	rec.Balance = balance.InexactFloat64()
	users[login] = rec

	return r.save(ctx, users)
}

func (r *repo) load(ctx context.Context) (map[string]record, error) {
	data, err := r.rdb.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return make(map[string]record), nil
		}
		return nil, fmt.Errorf("%w: %v", model.ErrPersistence, err)
	}

	users := make(map[string]record)
	err = json.Unmarshal(data, &users)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrPersistence, err)
	}

	return users, nil
}

func (r *repo) save(ctx context.Context, users map[string]record) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrPersistence, err)
	}

	err = r.rdb.Set(ctx, r.key, data, 0).Err()
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrPersistence, err)
	}

	return nil
}
