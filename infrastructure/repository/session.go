// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const maxIDAttempts = 5

//go:generate mockgen -source=session.go -destination=mocks/session.go -package=mocks

type SessionRepository interface {
	Create(selection domain.FilterSelection, now time.Time) (*domain.Session, error)
	Save(session *domain.Session) error
	GetByID(id string) (*domain.Session, error)
	Delete(id string) (bool, error)
	DeleteIdleSince(cutoff time.Time) (int64, error)
	Count() int
}

// sessionRepository guarda as sessões em memória. Cada leitura devolve uma cópia,
// de modo que nenhuma sessão compartilha a seleção com outra.
type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{
		sessions: make(map[string]*domain.Session),
	}
}

func (r *sessionRepository) Create(selection domain.FilterSelection, now time.Time) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar id da sessão")
		}

		if _, exists := r.sessions[id]; exists {
			continue
		}

		session := &domain.Session{
			ID:         id,
			Selection:  selection.Clone(),
			CreatedAt:  now,
			LastSeenAt: now,
		}
		r.sessions[id] = session
		return session.Clone(), nil
	}

	return nil, errors.New("não foi possível gerar um id de sessão único")
}

func (r *sessionRepository) Save(session *domain.Session) error {
	if session == nil || session.ID == "" {
		return errors.New("sessão sem id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; !exists {
		return errors.Errorf("sessão não encontrada: %s", session.ID)
	}

	r.sessions[session.ID] = session.Clone()
	return nil
}

// GetByID retorna nil, nil quando a sessão não existe
func (r *sessionRepository) GetByID(id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, nil
	}
	return session.Clone(), nil
}

func (r *sessionRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return false, nil
	}
	delete(r.sessions, id)
	return true, nil
}

// DeleteIdleSince remove as sessões sem atividade desde cutoff e retorna quantas foram removidas
func (r *sessionRepository) DeleteIdleSince(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, session := range r.sessions {
		if session.LastSeenAt.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (r *sessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
