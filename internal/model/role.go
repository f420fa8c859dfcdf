package model

import (
	"errors"
	"strings"
)

type Role string

const (
	RoleMarketer Role = "MARKETER"
	RoleManager  Role = "MANAGER"
)

var ErrUnknownRole = errors.New("UNKNOWN_ROLE")

func ParseRole(value string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(value))) {
	case RoleMarketer:
		return RoleMarketer, nil
	case RoleManager:
		return RoleManager, nil
	default:
		return "", ErrUnknownRole
	}
}

// Principal is the locally asserted identity an operation runs under. It is a UI
// preference, not a verified credential; the backend remains the authority.
type Principal struct {
	Role   Role   `json:"role"`
	UserID string `json:"user"`
}

func (p Principal) IsAuthor() bool {
	return p.Role == RoleMarketer
}

func (p Principal) IsReviewer() bool {
	return p.Role == RoleManager
}
