package guest

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("guest name cannot be empty")
	ErrInvalidEmail = errors.New("invalid email address")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Guest is linked to exactly one external identity principal; the
// engine never handles credentials, only the principal id the identity
// provider resolves.
type Guest struct {
	id          uuid.UUID
	principalID uuid.UUID
	name        string
	email       string
	phone       string
	createdAt   time.Time
}

func NewGuest(principalID uuid.UUID, name, email, phone string) (*Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	email = strings.TrimSpace(email)
	if email != "" && !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	return &Guest{
		id:          uuid.New(),
		principalID: principalID,
		name:        name,
		email:       email,
		phone:       strings.TrimSpace(phone),
	}, nil
}

func ReconstructGuest(id, principalID uuid.UUID, name, email, phone string, createdAt time.Time) *Guest {
	return &Guest{
		id:          id,
		principalID: principalID,
		name:        name,
		email:       email,
		phone:       phone,
		createdAt:   createdAt,
	}
}

func (g *Guest) ID() uuid.UUID          { return g.id }
func (g *Guest) PrincipalID() uuid.UUID { return g.principalID }
func (g *Guest) Name() string           { return g.name }
func (g *Guest) Email() string          { return g.email }
func (g *Guest) Phone() string          { return g.phone }
func (g *Guest) CreatedAt() time.Time   { return g.createdAt }
