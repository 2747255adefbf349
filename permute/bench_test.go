package permute_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/evenbins/permute"
)

// BenchmarkAll measures enumeration for the slot counts the CKK engine uses.
func BenchmarkAll(b *testing.B) {
	for _, k := range []int{3, 5, 7} {
		labels := permute.Identity(k)
		b.Run("k="+strconv.Itoa(k), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = permute.All(labels)
			}
		})
	}
}
