package search

import (
	"fmt"
	"testing"

	"github.com/lgbarn/dama-go/internal/dama"
)

func BenchmarkChooseMove(b *testing.B) {
	for _, depth := range []int{2, 4, 6} {
		board := dama.NewBoard(dama.Light)
		b.Run(fmt.Sprintf("depth%d", depth), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ChooseMove(board, depth)
			}
		})
	}
}

func BenchmarkEngineSearch(b *testing.B) {
	e := NewEngine(WithDepth(4), WithMaximalCaptures(true))
	board := dama.NewBoard(dama.Light)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Search(board, dama.Dark)
	}
}

