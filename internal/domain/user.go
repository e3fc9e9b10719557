package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso. Administradores gerenciam usuários e disparam coletas e
// limpezas manuais; visualizadores apenas consultam os relatórios.
const (
	RoleAdmin  = 1
	RoleViewer = 2
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Lastname     string    `json:"lastname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Claims struct {
	UserID       int
	UserName     string
	UserLastname string
	UserEmail    string
	UserActive   bool
	UserRoleID   int
	jwt.RegisteredClaims
}
