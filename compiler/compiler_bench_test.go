package compiler

import (
	"testing"
)

// Benchmark the full compilation pipeline (parse + bind + compile + print).
func BenchmarkCompileShapes(b *testing.B) {
	b.ResetTimer()
	for b.Loop() {
		c := New()
		_, err := c.CompileFile("../examples/shapes.ts")
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompileService(b *testing.B) {
	b.ResetTimer()
	for b.Loop() {
		c := New()
		_, err := c.CompileFile("../examples/service.ts")
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPrint(b *testing.B) {
	res, err := New().CompileFile("../examples/service.ts")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for b.Loop() {
		Print(res.Module)
	}
}
