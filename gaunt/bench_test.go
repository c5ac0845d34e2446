// SPDX-License-Identifier: MIT

package gaunt_test

import (
	"testing"

	"github.com/katalvlaran/gaunt/gaunt"
)

// benchmarkCompute runs Compute on p and fails on unexpected errors.
func benchmarkCompute(b *testing.B, p gaunt.Params) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gaunt.Compute(p); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

// BenchmarkCompute_Small is a ten-term expansion.
func BenchmarkCompute_Small(b *testing.B) {
	benchmarkCompute(b, gaunt.Params{N: 10, Nu: 9, M: 4, Mu: 5})
}

// BenchmarkCompute_Reference is the (500, 500, 400, 400) demo case.
func BenchmarkCompute_Reference(b *testing.B) {
	benchmarkCompute(b, gaunt.Params{N: 500, Nu: 500, M: 400, Mu: 400})
}

// BenchmarkCompute_Zonal takes the two-term branch on every step.
func BenchmarkCompute_Zonal(b *testing.B) {
	benchmarkCompute(b, gaunt.Params{N: 300, Nu: 300})
}

// BenchmarkFill_Reference measures the allocation-free path.
func BenchmarkFill_Reference(b *testing.B) {
	p := gaunt.Params{N: 500, Nu: 500, M: 400, Mu: 400}
	buf := make([]float64, p.Nu+1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := gaunt.Fill(buf, p); err != nil {
			b.Fatalf("Fill failed: %v", err)
		}
	}
}
