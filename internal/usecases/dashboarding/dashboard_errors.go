package dashboarding

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidYear    = errors.New("ano inválido")
	ErrInvalidQuarter = errors.New("trimestre inválido")
	ErrInvalidLimit   = errors.New("limite inválido")
)

// DashboardError é um erro com o código de API correspondente
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(baseErr error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// IsValidationError verifica se o erro veio de uma seleção inválida
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidYear) ||
		errors.Is(err, ErrInvalidQuarter) ||
		errors.Is(err, ErrInvalidLimit)
}
