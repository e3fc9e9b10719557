package authenticating

import (
	"errors"
	"fmt"
)

// Erros sentinela do fluxo de autenticação e gestão de usuários
var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserDisabled       = errors.New("usuário desativado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrUserLocked         = errors.New("usuário bloqueado temporariamente")
	ErrInvalidToken       = errors.New("token inválido")
	ErrUserAlreadyExists  = errors.New("usuário já existe")

	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")

	ErrWeakPassword      = errors.New("senha fraca")
	ErrSamePassword      = errors.New("nova senha deve ser diferente da atual")
	ErrNoAdminPrivileges = errors.New("apenas administradores podem realizar esta ação")
)

// AuthError envolve um erro sentinela com o código de API correspondente e,
// quando aplicável, o usuário envolvido na operação
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError cria um erro de autenticação sem contexto de usuário
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError cria um erro de autenticação associado a um usuário
func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
