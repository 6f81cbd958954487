package models

import (
	"time"

	"github.com/iudanet/clinicsync/pkg/api"
)

// Client представляет клиента практики
type Client struct {
	DateOfBirth *time.Time       `json:"date_of_birth,omitempty"`
	Email       *string          `json:"email,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	Status      api.ClientStatus `json:"status"`
	SyncMeta
}

// Kind implements Record
func (c *Client) Kind() Kind { return KindClient }

// Meta implements Record
func (c *Client) Meta() *SyncMeta { return &c.SyncMeta }

// Clone implements Record
func (c *Client) Clone() Record {
	cp := *c
	cp.DateOfBirth = cloneTime(c.DateOfBirth)
	cp.LastSyncedAt = cloneTime(c.LastSyncedAt)
	cp.Email = cloneString(c.Email)
	cp.Phone = cloneString(c.Phone)
	return &cp
}

// RemapReference implements Record. Clients reference nothing.
func (c *Client) RemapReference(Kind, string, string) bool { return false }

// FullName returns "First Last"
func (c *Client) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
