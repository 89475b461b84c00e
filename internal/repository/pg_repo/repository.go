package pg_repo

import (
	"casino_sim/internal/model"
	"casino_sim/internal/repository"
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table       = "users"
	colLogin    = "login"
	colPassword = "password"
	colBalance  = "balance"

	uniqueViolationCode = "23505"
)

type repo struct {
	dbc *pgxpool.Pool
}

// NewUserRepository - создает хранилище аккаунтов поверх Postgres
func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc: dbc,
	}
}

// CreateUser - создает нового пользователя в БД.
// Дубликат логина ловится по unique violation
func (r *repo) CreateUser(ctx context.Context, user *model.User) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colLogin, colPassword, colBalance).
		Values(user.Login, user.Password, user.Balance.InexactFloat64()).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return model.ErrDuplicateUsername
		}
		return fmt.Errorf("%w: %v", model.ErrPersistence, err)
	}

	return nil
}

// GetUserByLogin - возвращает модель пользователя (Login, Password, Balance) по его логину
func (r *repo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	// Формируем запрос
	query := sq.Select(colLogin, colPassword, colBalance).
		From(table).
		Where(sq.Eq{colLogin: login}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	var balance float64
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&user.Login, &user.Password, &balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", model.ErrPersistence, err)
	}

	user.Balance = decimal.NewFromFloat(balance)
	return &user, nil
}

// GetBalance - получение баланса пользователя по его логину
func (r *repo) GetBalance(ctx context.Context, login string) (decimal.Decimal, error) {
	// Формируем запрос
	query := sq.Select(colBalance).
		From(table).
		Where(sq.Eq{colLogin: login}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var balance float64
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, model.ErrUserNotFound
		}
		return decimal.Zero, fmt.Errorf("%w: %v", model.ErrPersistence, err)
	}

	return decimal.NewFromFloat(balance), nil
}

// UpdateBalance - записывает новый баланс пользователя
func (r *repo) UpdateBalance(ctx context.Context, login string, balance decimal.Decimal) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colBalance, balance.InexactFloat64()).
		Where(sq.Eq{colLogin: login}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrPersistence, err)
	}

	if res.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}

	return nil
}
