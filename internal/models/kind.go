package models

import "fmt"

// Kind identifies one of the synchronized entity types
type Kind string

const (
	KindClient       Kind = "client"
	KindSession      Kind = "session"
	KindProgressNote Kind = "progress_note"
)

// Kinds lists every entity kind in sync order. Sessions reference clients
// and notes reference both, so parents always come first.
var Kinds = []Kind{KindClient, KindSession, KindProgressNote}

// String returns the kind name
func (k Kind) String() string {
	return string(k)
}

// ParseKind converts a string into a Kind
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown record kind: %q", s)
}

// NewRecord returns an empty record of the given kind
func NewRecord(kind Kind) (Record, error) {
	switch kind {
	case KindClient:
		return &Client{}, nil
	case KindSession:
		return &Session{}, nil
	case KindProgressNote:
		return &ProgressNote{}, nil
	default:
		return nil, fmt.Errorf("unknown record kind: %q", kind)
	}
}
