package player

import (
	"fmt"
	"strings"
)

// Role is a player's cricket speciality.
type Role string

const (
	RoleBatsman    Role = "Batsman"
	RoleBowler     Role = "Bowler"
	RoleAllRounder Role = "All-Rounder"
)

func ParseRole(raw string) (Role, error) {
	switch strings.TrimSpace(raw) {
	case string(RoleBatsman):
		return RoleBatsman, nil
	case string(RoleBowler):
		return RoleBowler, nil
	case string(RoleAllRounder):
		return RoleAllRounder, nil
	default:
		return "", fmt.Errorf("unknown player role %q", raw)
	}
}

// AgeGroup partitions players for auction ordering.
type AgeGroup string

const (
	AgeGroupUnder16 AgeGroup = "Under 16"
	AgeGroupUnder19 AgeGroup = "Under 19"
	AgeGroupOpen    AgeGroup = "Open"
)

// AgeGroupOrder is the fixed bracket order used by listings and the slideshow.
var AgeGroupOrder = []AgeGroup{AgeGroupUnder16, AgeGroupUnder19, AgeGroupOpen}

// ParseAgeGroup accepts canonical names plus the legacy "U16"/"U19" forms
// still present in older rows.
func ParseAgeGroup(raw string) (AgeGroup, error) {
	switch strings.TrimSpace(raw) {
	case string(AgeGroupUnder16), "U16":
		return AgeGroupUnder16, nil
	case string(AgeGroupUnder19), "U19":
		return AgeGroupUnder19, nil
	case string(AgeGroupOpen):
		return AgeGroupOpen, nil
	default:
		return "", fmt.Errorf("unknown age group %q", raw)
	}
}

// Player is a registered cricketer. Players are global; auction membership
// lives in the roster entry.
type Player struct {
	ID       string
	FullName string
	Email    string
	Mobile   string
	Role     Role
	AgeGroup AgeGroup
	PhotoURL string
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.FullName) == "" {
		return fmt.Errorf("player full name is required")
	}
	if _, err := ParseRole(string(p.Role)); err != nil {
		return err
	}
	if _, err := ParseAgeGroup(string(p.AgeGroup)); err != nil {
		return err
	}
	if strings.TrimSpace(p.PhotoURL) == "" {
		return fmt.Errorf("player photo is required")
	}

	return nil
}
