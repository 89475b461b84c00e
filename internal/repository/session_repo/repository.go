package session_repo

import (
	"casino_sim/internal/model"
	"casino_sim/internal/repository"
	"context"
	"sync"
)

// Сессии живут только в памяти процесса и не переживают рестарт.
// Одна сессия на логин: повторный логин вытесняет старую.
type SessionRepo struct {
	mtx      sync.RWMutex
	sessions map[string]*model.Session // ключ - sessionID
	byLogin  map[string]string         // логин -> sessionID
}

// NewSessionRepository - создает пустое хранилище сессий
func NewSessionRepository() repository.SessionRepository {
	return &SessionRepo{
		sessions: make(map[string]*model.Session),
		byLogin:  make(map[string]string),
	}
}

// CreateSession - сохраняет сессию, вытесняя предыдущую сессию того же логина
func (r *SessionRepo) CreateSession(ctx context.Context, session *model.Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if oldID, ok := r.byLogin[session.Login]; ok {
		delete(r.sessions, oldID)
	}

	cp := *session
	r.sessions[session.ID] = &cp
	r.byLogin[session.Login] = session.ID
	return nil
}

// GetSession - возвращает копию сессии по ее ID
func (r *SessionRepo) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, model.ErrSessionNotFound
	}

	cp := *s
	return &cp, nil
}

// GetSessionByLogin - возвращает копию активной сессии пользователя
func (r *SessionRepo) GetSessionByLogin(ctx context.Context, login string) (*model.Session, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, err := r.byLoginLocked(login)
	if err != nil {
		return nil, err
	}

	cp := *s
	return &cp, nil
}

// DeleteSession - удаляет сессию (логаут)
func (r *SessionRepo) DeleteSession(ctx context.Context, sessionID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return model.ErrSessionNotFound
	}

	delete(r.byLogin, s.Login)
	delete(r.sessions, sessionID)
	return nil
}

// SetActiveGame - запоминает выбранную в лобби игру
func (r *SessionRepo) SetActiveGame(ctx context.Context, login string, variant model.GameVariant) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s, err := r.byLoginLocked(login)
	if err != nil {
		return err
	}

	s.ActiveGame = variant
	return nil
}

// BeginSpin - взводит флаг занятости. Пока флаг взведен,
// повторный спин той же сессии отклоняется
func (r *SessionRepo) BeginSpin(ctx context.Context, login string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s, err := r.byLoginLocked(login)
	if err != nil {
		return err
	}

	if s.InSpin {
		return model.ErrSpinInProgress
	}

	s.InSpin = true
	return nil
}

// EndSpin - сбрасывает флаг занятости после выдачи результата
func (r *SessionRepo) EndSpin(ctx context.Context, login string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s, err := r.byLoginLocked(login)
	if err != nil {
		return err
	}

	s.InSpin = false
	return nil
}

func (r *SessionRepo) byLoginLocked(login string) (*model.Session, error) {
	id, ok := r.byLogin[login]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return r.sessions[id], nil
}
