package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/dama-go/internal/dama"
)

// WriteBoard writes b as a diagram with row and column numbers.
// Dark pieces are 'd', Light pieces 'l' and empty dark squares '.'.
func WriteBoard(w io.Writer, b *dama.Board) error {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < dama.BoardSize; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteByte('\n')

	for row := 0; row < dama.BoardSize; row++ {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < dama.BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(squareChar(b, dama.Sq(row, col)))
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func squareChar(b *dama.Board, sq dama.Square) byte {
	p, ok := b.At(sq)
	switch {
	case ok && p.Color == dama.Dark:
		return 'd'
	case ok:
		return 'l'
	case sq.IsDark():
		return '.'
	}
	return ' '
}
