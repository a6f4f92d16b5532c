// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sessioning"
)

type SessionSweepConfig struct {
	CronSchedule string
	Enabled      bool
	TTL          time.Duration
}

// SessionSweepService remove periodicamente as sessões inativas
type SessionSweepService struct {
	scheduler            *gocron.Scheduler
	sessions             sessioning.SessionManager
	config               SessionSweepConfig
	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
	lastSweepRemoved     int64
}

func NewSessionSweepService(sessions sessioning.SessionManager, cfg *config.Config) *SessionSweepService {
	sweepConfig := SessionSweepConfig{
		CronSchedule: cfg.SessionSweep.CronSchedule, // Default: a cada 5 minutos
		Enabled:      cfg.SessionSweep.Enabled,
		TTL:          cfg.Session.TTL,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"ttl":           sweepConfig.TTL.String(),
	}).Info("Configuração do agendador de limpeza de sessões carregada")

	return &SessionSweepService{
		scheduler: gocron.NewScheduler(time.Local),
		sessions:  sessions,
		config:    sweepConfig,
	}
}

func (s *SessionSweepService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de limpeza de sessões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.SweepIdleSessions(ctx); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de sessões inativas")
		}
	})
	if err != nil {
		return errors.Wrap(err, "erro ao agendar limpeza de sessões")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// SweepIdleSessions remove as sessões sem atividade há mais que o TTL configurado.
// Uma execução concorrente é ignorada.
func (s *SessionSweepService) SweepIdleSessions(ctx context.Context) (int64, error) {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Warn("Limpeza de sessões já está em execução")
		return 0, nil
	}
	s.sweepRunning = true
	s.lastSweepStartedAt = time.Now()
	s.sweepMutex.Unlock()

	removed, err := s.sessions.EvictIdle(ctx, s.config.TTL)

	s.sweepMutex.Lock()
	s.sweepRunning = false
	s.lastSweepCompletedAt = time.Now()
	if err == nil {
		s.lastSweepRemoved = removed
	}
	s.sweepMutex.Unlock()

	if err != nil {
		return 0, err
	}

	logrus.WithField("removed", removed).Info("Limpeza de sessões concluída")
	return removed, nil
}

// TriggerManualSync dispara uma limpeza fora do agendamento
func (s *SessionSweepService) TriggerManualSync() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando solicitação manual")
		return
	}
	s.sweepMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de sessões")
	go func() {
		if _, err := s.SweepIdleSessions(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na limpeza manual de sessões")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *SessionSweepService) GetStatus() map[string]any {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"session_ttl":            s.config.TTL.String(),
		"running":                s.sweepRunning,
		"last_sync_started_at":   s.lastSweepStartedAt,
		"last_sync_completed_at": s.lastSweepCompletedAt,
		"last_sync_removed":      s.lastSweepRemoved,
	}
}
