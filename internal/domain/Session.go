package domain

import "time"

// Session guarda a seleção de filtros de um usuário.
// A tabela base é compartilhada entre sessões; o resultado agregado nunca é.
type Session struct {
	ID         string          `json:"id"`
	Selection  FilterSelection `json:"selection"`
	CreatedAt  time.Time       `json:"created_at"`
	LastSeenAt time.Time       `json:"last_seen_at"`
}

// Clone devolve uma cópia independente da sessão
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Selection = s.Selection.Clone()
	return &c
}
