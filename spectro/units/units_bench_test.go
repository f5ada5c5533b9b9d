package units

import "testing"

func BenchmarkNmToEVSlice(b *testing.B) {
	src := make([]float64, 2048)
	dst := make([]float64, len(src))
	for i := range src {
		src[i] = 400 + 0.2*float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NmToEVSlice(dst, src)
	}
}

func BenchmarkEVToNmSlice(b *testing.B) {
	src := make([]float64, 2048)
	dst := make([]float64, len(src))
	for i := range src {
		src[i] = 1.5 + 0.001*float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EVToNmSlice(dst, src)
	}
}
