package auth

import "seat-reservation/internal/pkg/errs"

var ErrInvalidRole = errs.New("invalid role")

// Role is the caller role carried in the identity provider's token.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var roleLevels = map[Role]int{
	RoleUser:  1,
	RoleAdmin: 2,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r grants everything min grants.
func (r Role) AtLeast(min Role) bool {
	level, ok := roleLevels[r]
	minLevel, minOK := roleLevels[min]
	return ok && minOK && level >= minLevel
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", errs.Wrapf(ErrInvalidRole, "%q", s)
	}
	return role, nil
}
