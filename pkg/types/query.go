// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// RoleType selects which side of the query catalog to draw from.
type RoleType string

const (
	TypeSDR  RoleType = "sdr"
	TypeAE   RoleType = "ae"
	TypeBoth RoleType = "both"
)

// ParseRoleType validates a --type flag value.
func ParseRoleType(s string) (RoleType, error) {
	switch RoleType(s) {
	case TypeSDR, TypeAE, TypeBoth:
		return RoleType(s), nil
	default:
		return "", fmt.Errorf("invalid role type %q: use sdr, ae, or both", s)
	}
}

// QuerySpec is one search query to execute. Specs are generated per
// invocation from the catalog (or wrapped from a custom string) and are
// not persisted.
type QuerySpec struct {
	// Query is the full X-Ray search string.
	Query string `json:"query" yaml:"query"`

	// Role tags the spec as an SDR or AE query. A spec carries a concrete
	// role even when the catalog was asked for "both".
	Role RoleType `json:"role" yaml:"role"`

	// Batch is the catalog batch index the spec belongs to (0 for custom
	// queries and count-based generation).
	Batch int `json:"batch,omitempty" yaml:"batch,omitempty"`
}
