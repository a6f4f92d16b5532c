package sessioning

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	errorcodes "github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

type Service struct {
	repo        repository.SessionRepository
	dashboarder dashboarding.Dashboarder
	now         func() time.Time
}

func NewService(repo repository.SessionRepository, dashboarder dashboarding.Dashboarder) *Service {
	return &Service{
		repo:        repo,
		dashboarder: dashboarder,
		now:         time.Now,
	}
}

func (s *Service) Create(ctx context.Context, selection domain.FilterSelection) (*domain.Session, error) {
	if err := dashboarding.ValidateSelection(selection); err != nil {
		return nil, err
	}

	session, err := s.repo.Create(selection, s.now())
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar sessão")
		return nil, dashboarding.NewDashboardError(errors.Wrap(ErrSessionStorage, err.Error()), errorcodes.ErrSessionStorage, "")
	}

	log.ForContext(ctx).WithField("session_id", session.ID).Info("Sessão criada")
	return session, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Session, error) {
	return s.touch(ctx, id, nil)
}

func (s *Service) UpdateSelection(ctx context.Context, id string, selection domain.FilterSelection) (*domain.Session, error) {
	if err := dashboarding.ValidateSelection(selection); err != nil {
		return nil, err
	}
	return s.touch(ctx, id, &selection)
}

// Dashboard recalcula a visão da sessão a partir da seleção guardada
func (s *Service) Dashboard(ctx context.Context, id string) (*domain.DashboardView, error) {
	session, err := s.touch(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	return s.dashboarder.Dashboard(ctx, session.Selection)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao remover sessão")
		return dashboarding.NewDashboardError(errors.Wrap(ErrSessionStorage, err.Error()), errorcodes.ErrSessionStorage, id)
	}
	if !removed {
		return dashboarding.NewDashboardError(ErrSessionNotFound, errorcodes.ErrSessionNotFound, id)
	}

	log.ForContext(ctx).WithField("session_id", id).Info("Sessão removida")
	return nil
}

func (s *Service) EvictIdle(ctx context.Context, ttl time.Duration) (int64, error) {
	if ttl <= 0 {
		return 0, nil
	}

	removed, err := s.repo.DeleteIdleSince(s.now().Add(-ttl))
	if err != nil {
		return 0, errors.Wrap(err, "erro ao remover sessões inativas")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"removed":   removed,
		"remaining": s.repo.Count(),
	}).Info("Sessões inativas removidas")

	return removed, nil
}

// touch carrega a sessão, aplica a nova seleção quando informada e atualiza o último acesso
func (s *Service) touch(ctx context.Context, id string, selection *domain.FilterSelection) (*domain.Session, error) {
	session, err := s.repo.GetByID(id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar sessão")
		return nil, dashboarding.NewDashboardError(errors.Wrap(ErrSessionStorage, err.Error()), errorcodes.ErrSessionStorage, id)
	}
	if session == nil {
		return nil, dashboarding.NewDashboardError(ErrSessionNotFound, errorcodes.ErrSessionNotFound, id)
	}

	if selection != nil {
		session.Selection = selection.Clone()
	}
	session.LastSeenAt = s.now()

	if err := s.repo.Save(session); err != nil {
		// A sessão pode ter expirado entre a leitura e a escrita
		log.ForContext(ctx).WithError(err).Warn("Erro ao atualizar sessão")
		return nil, dashboarding.NewDashboardError(ErrSessionNotFound, errorcodes.ErrSessionNotFound, id)
	}

	return session, nil
}
