package user_repo

import (
	"casino_sim/internal/model"
	"casino_sim/internal/repository"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/shopspring/decimal"
)

// Запись аккаунта внутри блоба: login -> {password, balance}
type record struct {
	Password string  `json:"password"`
	Balance  float64 `json:"balance"`
}

// Файловая реализация хранилища аккаунтов. Вся таблица пользователей
// лежит одним JSON блобом, блоб целиком перезаписывается после каждой
// мутации. Отсутствие файла трактуется как пустой реестр.
type repo struct {
	mtx   sync.RWMutex
	path  string
	users map[string]record
}

// NewUserRepository - создает файловое хранилище и загружает блоб с диска
func NewUserRepository(path string) (repository.UserRepository, error) {
	users, err := loadBlob(path)
	if err != nil {
		return nil, err
	}

	return &repo{
		path:  path,
		users: users,
	}, nil
}

// CreateUser - добавляет нового пользователя в реестр и пишет блоб на диск
func (r *repo) CreateUser(ctx context.Context, user *model.User) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.users[user.Login]; ok {
		return model.ErrDuplicateUsername
	}

	r.users[user.Login] = record{
		Password: user.Password,
		Balance:  user.Balance.InexactFloat64(),
	}

	return r.persist()
}

// GetUserByLogin - возвращает модель пользователя (Login, Password, Balance) по его логину
func (r *repo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	rec, ok := r.users[login]
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
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	rec, ok := r.users[login]
	if !ok {
		return decimal.Zero, model.ErrUserNotFound
	}

	return decimal.NewFromFloat(rec.Balance), nil
}

// UpdateBalance - записывает новый баланс пользователя и пишет блоб на диск
func (r *repo) UpdateBalance(ctx context.Context, login string, balance decimal.Decimal) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	rec, ok := r.users[login]
	if !ok {
		return model.ErrUserNotFound
	}

	rec.Balance = balance.InexactFloat64()
	r.users[login] = rec

	return r.persist()
}

// persist - сериализует весь реестр и перезаписывает файл.
// Вызывать только под захваченным mtx.
func (r *repo) persist() error {
	data, err := json.Marshal(r.users)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrPersistence, err)
	}

	err = os.WriteFile(r.path, data, 0o644)
	if err != nil {
		// Мутация в памяти уже применена, отката нет - состояния разошлись
		log.Printf("ledger write failed, in-memory state diverged from %s: %v", r.path, err)
		return fmt.Errorf("%w: %v", model.ErrPersistence, err)
	}

	return nil
}

func loadBlob(path string) (map[string]record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
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
