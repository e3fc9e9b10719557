package domain

import "errors"

// Erros sentinela compartilhados entre integradores, usecases e handlers
var (
	// ErrNotConfigured indica que a fonte não possui credenciais ou
	// identificadores configurados. Não é fatal: o fan-out registra o status
	// not_configured e segue para as demais fontes.
	ErrNotConfigured = errors.New("fonte não configurada")

	// ErrInvalidDaysBack indica days_back fora do intervalo permitido [1, 365]
	ErrInvalidDaysBack = errors.New("days_back deve estar entre 1 e 365")

	// ErrInvalidDaysToKeep indica days_to_keep abaixo do mínimo de 7 dias
	ErrInvalidDaysToKeep = errors.New("days_to_keep deve ser no mínimo 7")
)
