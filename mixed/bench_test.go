// Package mixed_test — benchmarks for the two-player mixed solver.
//
// Policy:
//   - Inputs built outside the timer; only the solve is measured.
//   - The 2×2 case exercises the analytic path, larger games the
//     support enumeration.
package mixed_test

import (
	"testing"

	"github.com/katalvlaran/equilib/mixed"
)

func BenchmarkFind_Analytic2x2(b *testing.B) {
	m := matchingPennies()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mixed.Find(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFind_SupportEnumeration3(b *testing.B) {
	m := rockPaperScissors()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mixed.Find(m); err != nil {
			b.Fatal(err)
		}
	}
}
