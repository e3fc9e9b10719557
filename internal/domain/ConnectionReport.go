package domain

import "time"

// Status possíveis de uma sonda de conectividade
const (
	ConnectionStatusConnected     = "connected"
	ConnectionStatusError         = "error"
	ConnectionStatusNotConfigured = "not_configured"
)

// ConnectionInfo traz os metadados retornados por uma sonda bem-sucedida
type ConnectionInfo struct {
	EntityID string `json:"entity_id"`
	Detail   string `json:"detail,omitempty"`
}

// ConnectionProbe é o resultado da sonda de uma única fonte
type ConnectionProbe struct {
	Status   string `json:"status"`
	EntityID string `json:"entity_id,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ConnectionReport agrega as sondas de todas as fontes configuradas
type ConnectionReport struct {
	Connections map[string]*ConnectionProbe `json:"connections"`
	CheckedAt   time.Time                   `json:"checked_at"`
}
