package traverse_test

import (
	"testing"

	"github.com/stepvis/stepvis/graphstore"
	"github.com/stepvis/stepvis/traverse"
)

// buildGrid wires an n×n lattice, the densest topology the editor produces.
func buildGrid(b *testing.B, n int) (*graphstore.Snapshot, int64) {
	b.Helper()
	s := graphstore.New()
	ids := make([][]int64, n)
	for row := 0; row < n; row++ {
		ids[row] = make([]int64, n)
		for col := 0; col < n; col++ {
			ids[row][col] = s.AddNode(float64(col*40), float64(row*40)).ID
		}
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if col+1 < n {
				if err := s.CreateEdge(ids[row][col], ids[row][col+1], 1); err != nil {
					b.Fatal(err)
				}
			}
			if row+1 < n {
				if err := s.CreateEdge(ids[row][col], ids[row+1][col], 1); err != nil {
					b.Fatal(err)
				}
			}
		}
	}

	return s.Snapshot(), ids[0][0]
}

func BenchmarkRun_BFS_Grid32(b *testing.B) {
	snap, start := buildGrid(b, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.Run(snap, start, traverse.BFS); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_ShortestPath_Grid32(b *testing.B) {
	snap, start := buildGrid(b, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.Run(snap, start, traverse.ShortestPath); err != nil {
			b.Fatal(err)
		}
	}
}
