// ==============================================================================================
// FILE: object/object_benchmark_test.go
// ==============================================================================================
// PURPOSE: Performance benchmarks for the Evaluation system.
//          Measures equality-checking cost, environment access time, and
//          collective stringification overhead.
// ==============================================================================================

package object

import (
	"fmt"
	"testing"
)

// BenchmarkEqual_Number measures the cost of comparing two numbers.
func BenchmarkEqual_Number(b *testing.B) {
	left := NumberEvaluation{Value: 123456789}
	right := NumberEvaluation{Value: 123456789}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Equal(left, right)
	}
}

// BenchmarkEnvironment_Get_Deep measures lookup time in a deeply nested scope.
func BenchmarkEnvironment_Get_Deep(b *testing.B) {
	root := NewEnvironment()
	root.Define("target", NumberEvaluation{Value: 1})

	curr := root
	for i := 0; i < 50; i++ {
		curr = NewEnclosedEnvironment(curr)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		curr.Get("target")
	}
}

// BenchmarkEnvironment_Assign_Deep measures mutation time in a deeply nested
// scope, where Assign must walk all the way out to find the defining scope.
func BenchmarkEnvironment_Assign_Deep(b *testing.B) {
	root := NewEnvironment()
	root.Define("target", NumberEvaluation{Value: 1})

	curr := root
	for i := 0; i < 50; i++ {
		curr = NewEnclosedEnvironment(curr)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		curr.Assign("target", NumberEvaluation{Value: float32(i)})
	}
}

func BenchmarkCollectiveEvaluation_LargeString(b *testing.B) {
	elements := make([]Evaluation, 100)
	for i := 0; i < 100; i++ {
		elements[i] = NumberEvaluation{Value: float32(i)}
	}
	coll := CollectiveEvaluation{Elements: elements}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		coll.String()
	}
}

func BenchmarkEnvironment_Define(b *testing.B) {
	env := NewEnvironment()
	val := NumberEvaluation{Value: 1}
	keys := make([]string, 1000)
	for i := 0; i < 1000; i++ {
		keys[i] = fmt.Sprintf("var%d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		env.Define(keys[i%1000], val)
	}
}
