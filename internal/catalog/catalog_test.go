// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"testing"

	"github.com/a9austin/sdr-sourcer/pkg/types"
)

func countRoles(specs []types.QuerySpec) (sdr, ae int) {
	for _, s := range specs {
		switch s.Role {
		case types.TypeSDR:
			sdr++
		case types.TypeAE:
			ae++
		}
	}
	return sdr, ae
}

func TestGenerateCount(t *testing.T) {
	tests := []struct {
		name  string
		role  types.RoleType
		count int
	}{
		{"sdr five", types.TypeSDR, 5},
		{"ae three", types.TypeAE, 3},
		{"both ten", types.TypeBoth, 10},
		{"zero", types.TypeSDR, 0},
		{"cycles past catalog end", types.TypeAE, len(aeQueries) + 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs, err := Generate(tt.role, tt.count)
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}
			if len(specs) != tt.count {
				t.Errorf("len(specs) = %d, want %d", len(specs), tt.count)
			}
		})
	}
}

func TestGenerateNegativeCount(t *testing.T) {
	if _, err := Generate(types.TypeSDR, -1); err == nil {
		t.Error("Generate(-1) should fail")
	}
}

func TestGenerateInvalidRole(t *testing.T) {
	if _, err := Generate(types.RoleType("manager"), 5); err == nil {
		t.Error("Generate with unknown role should fail")
	}
}

func TestGenerateBothSplitsEvenly(t *testing.T) {
	tests := []struct {
		count   int
		wantSDR int
		wantAE  int
	}{
		{10, 5, 5},
		{9, 5, 4},
		{1, 1, 0},
		{2, 1, 1},
	}
	for _, tt := range tests {
		specs, err := Generate(types.TypeBoth, tt.count)
		if err != nil {
			t.Fatalf("Generate(both, %d) error: %v", tt.count, err)
		}
		sdr, ae := countRoles(specs)
		if sdr != tt.wantSDR || ae != tt.wantAE {
			t.Errorf("Generate(both, %d) split = %d/%d, want %d/%d",
				tt.count, sdr, ae, tt.wantSDR, tt.wantAE)
		}
	}
}

func TestGenerateBothInterleaves(t *testing.T) {
	specs, err := Generate(types.TypeBoth, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []types.RoleType{types.TypeSDR, types.TypeAE, types.TypeSDR, types.TypeAE}
	for i, w := range want {
		if specs[i].Role != w {
			t.Errorf("specs[%d].Role = %s, want %s", i, specs[i].Role, w)
		}
	}
}

func TestCustom(t *testing.T) {
	spec := Custom(`site:linkedin.com/in "Closer" Provo`)
	if spec.Query != `site:linkedin.com/in "Closer" Provo` {
		t.Errorf("Custom query = %q", spec.Query)
	}
	if spec.Role != types.TypeBoth {
		t.Errorf("Custom role = %s, want both", spec.Role)
	}
}

func TestBatch(t *testing.T) {
	first, err := Batch(types.TypeSDR, 1, 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 8 {
		t.Fatalf("len(batch 1) = %d, want 8", len(first))
	}
	if first[0].Batch != 1 {
		t.Errorf("batch index = %d, want 1", first[0].Batch)
	}

	second, err := Batch(types.TypeSDR, 2, 8)
	if err != nil {
		t.Fatal(err)
	}
	if second[0].Query == first[0].Query {
		t.Error("batch 2 should start past batch 1")
	}
}

func TestBatchBothCoversCatalogOnce(t *testing.T) {
	seen := make(map[string]int)
	total := 0
	for n := 1; ; n++ {
		specs, err := Batch(types.TypeBoth, n, 8)
		if err != nil {
			t.Fatal(err)
		}
		if len(specs) == 0 {
			break
		}
		total += len(specs)
		for _, s := range specs {
			seen[s.Query]++
		}
	}
	if total != Size(types.TypeBoth) {
		t.Errorf("walked %d queries, want %d", total, Size(types.TypeBoth))
	}
	for q, c := range seen {
		if c != 1 {
			t.Errorf("query %q appears %d times across batches", q, c)
		}
	}
}

func TestBatchPastEnd(t *testing.T) {
	specs, err := Batch(types.TypeAE, 1000, 8)
	if err != nil {
		t.Fatalf("Batch past end should not error: %v", err)
	}
	if len(specs) != 0 {
		t.Errorf("len(specs) = %d, want 0", len(specs))
	}
}

func TestBatchInvalidArgs(t *testing.T) {
	if _, err := Batch(types.TypeSDR, 0, 8); err == nil {
		t.Error("batch index 0 should fail")
	}
	if _, err := Batch(types.TypeSDR, 1, 0); err == nil {
		t.Error("batch size 0 should fail")
	}
}
