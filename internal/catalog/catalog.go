// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog generates search QuerySpecs from static X-Ray query
// template lists, one list per role type.
package catalog

import (
	"fmt"

	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// Generate selects count QuerySpecs for the given role type, cycling the
// template list when count exceeds it. For TypeBoth, SDR and AE templates
// are interleaved so the count splits near-evenly (6/4 for 10, never 10/0).
// count < 0 is rejected; count 0 returns an empty slice.
func Generate(role types.RoleType, count int) ([]types.QuerySpec, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid count %d: must be >= 0", count)
	}

	switch role {
	case types.TypeSDR:
		return take(sdrQueries, types.TypeSDR, count), nil
	case types.TypeAE:
		return take(aeQueries, types.TypeAE, count), nil
	case types.TypeBoth:
		return interleave(count), nil
	default:
		return nil, fmt.Errorf("invalid role type %q: use sdr, ae, or both", role)
	}
}

// Custom wraps one user-supplied query string into a single QuerySpec,
// bypassing the catalog. Custom queries are tagged TypeBoth so the
// SDR-only filter policy does not apply to them.
func Custom(query string) types.QuerySpec {
	return types.QuerySpec{Query: query, Role: types.TypeBoth}
}

// Batch returns the n-th fixed-size slice (1-indexed) of the full catalog
// for the role type. A batch past the end of the catalog is empty, not an
// error, so callers can walk batches until exhaustion. For TypeBoth the
// catalog is the SDR list followed by the AE list, so walking every batch
// runs each template exactly once.
func Batch(role types.RoleType, n, size int) ([]types.QuerySpec, error) {
	if n < 1 {
		return nil, fmt.Errorf("invalid batch index %d: batches are numbered from 1", n)
	}
	if size < 1 {
		return nil, fmt.Errorf("invalid batch size %d: must be >= 1", size)
	}

	full, err := catalogFor(role)
	if err != nil {
		return nil, err
	}

	start := (n - 1) * size
	if start >= len(full) {
		return nil, nil
	}
	end := start + size
	if end > len(full) {
		end = len(full)
	}

	specs := full[start:end]
	for i := range specs {
		specs[i].Batch = n
	}
	return specs, nil
}

// catalogFor returns every template for the role type exactly once, in
// catalog order.
func catalogFor(role types.RoleType) ([]types.QuerySpec, error) {
	switch role {
	case types.TypeSDR:
		return take(sdrQueries, types.TypeSDR, len(sdrQueries)), nil
	case types.TypeAE:
		return take(aeQueries, types.TypeAE, len(aeQueries)), nil
	case types.TypeBoth:
		full := take(sdrQueries, types.TypeSDR, len(sdrQueries))
		return append(full, take(aeQueries, types.TypeAE, len(aeQueries))...), nil
	default:
		return nil, fmt.Errorf("invalid role type %q: use sdr, ae, or both", role)
	}
}

// Size returns the number of templates available for the role type.
func Size(role types.RoleType) int {
	switch role {
	case types.TypeSDR:
		return len(sdrQueries)
	case types.TypeAE:
		return len(aeQueries)
	default:
		return len(sdrQueries) + len(aeQueries)
	}
}

// take returns count specs from templates, wrapping around when count
// exceeds the list.
func take(templates []string, role types.RoleType, count int) []types.QuerySpec {
	if count == 0 || len(templates) == 0 {
		return nil
	}
	specs := make([]types.QuerySpec, 0, count)
	for i := 0; i < count; i++ {
		specs = append(specs, types.QuerySpec{
			Query: templates[i%len(templates)],
			Role:  role,
		})
	}
	return specs
}

// interleave alternates SDR and AE templates, SDR first, so an odd count
// gives SDR the extra slot.
func interleave(count int) []types.QuerySpec {
	sdr := take(sdrQueries, types.TypeSDR, (count+1)/2)
	ae := take(aeQueries, types.TypeAE, count/2)

	specs := make([]types.QuerySpec, 0, count)
	for i := 0; i < len(sdr) || i < len(ae); i++ {
		if i < len(sdr) {
			specs = append(specs, sdr[i])
		}
		if i < len(ae) {
			specs = append(specs, ae[i])
		}
	}
	return specs
}
