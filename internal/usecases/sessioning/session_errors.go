package sessioning

import "github.com/pkg/errors"

var (
	ErrSessionNotFound = errors.New("sessão não encontrada")
	ErrSessionStorage  = errors.New("erro ao acessar o armazenamento de sessões")
)
