package sessioning

import (
	"context"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/session_manager.go -package=mocks

// SessionManager mantém a seleção de filtros de cada usuário.
// Cada sessão recalcula o próprio resultado; nenhum estado agregado é compartilhado.
type SessionManager interface {
	Create(ctx context.Context, selection domain.FilterSelection) (*domain.Session, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	UpdateSelection(ctx context.Context, id string, selection domain.FilterSelection) (*domain.Session, error)
	Dashboard(ctx context.Context, id string) (*domain.DashboardView, error)
	Delete(ctx context.Context, id string) error

	// EvictIdle remove as sessões sem atividade há mais de ttl e retorna quantas foram removidas
	EvictIdle(ctx context.Context, ttl time.Duration) (int64, error)
}
