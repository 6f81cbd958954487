package api

import "time"

// ClientStatus is the lifecycle state of a client. The server sets
// ClientStatusActive on create; later transitions come through updates.
type ClientStatus string

const (
	ClientStatusActive     ClientStatus = "active"
	ClientStatusInactive   ClientStatus = "inactive"
	ClientStatusDischarged ClientStatus = "discharged"
)

// Valid reports whether s is a known client status.
func (s ClientStatus) Valid() bool {
	switch s {
	case ClientStatusActive, ClientStatusInactive, ClientStatusDischarged:
		return true
	}
	return false
}

// ClientCreateRequest is the body of POST /api/v1/clients
type ClientCreateRequest struct {
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
}

// ClientUpdateRequest is the body of PUT /api/v1/clients/{id}
type ClientUpdateRequest struct {
	DateOfBirth *time.Time   `json:"date_of_birth,omitempty"`
	Email       *string      `json:"email,omitempty"`
	Phone       *string      `json:"phone,omitempty"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Status      ClientStatus `json:"status"`
}

// Client is the server representation of a client
type Client struct {
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"` // выставляется сервером при каждом изменении
	DateOfBirth *time.Time   `json:"date_of_birth,omitempty"`
	Email       *string      `json:"email,omitempty"`
	Phone       *string      `json:"phone,omitempty"`
	ID          string       `json:"id"` // назначается сервером при создании
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Status      ClientStatus `json:"status"`
}

// ClientList is the body of GET /api/v1/clients
type ClientList struct {
	Clients []Client `json:"clients"`
}
