package testutil

import (
	"testing"

	"github.com/lgbarn/dama-go/internal/dama"
)

func TestParseBoard(t *testing.T) {
	tests := []struct {
		name      string
		diagram   string
		wantErr   bool
		wantLight int
		wantDark  int
	}{
		{
			name: "two pieces",
			diagram: `
				........
				........
				........
				..d.....
				...l....
				........
				........
				........`,
			wantLight: 1,
			wantDark:  1,
		},
		{
			name: "spaced columns",
			diagram: `
				. d . d . d . d
				d . d . d . d .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. . . . . . . .
				. l . l . l . l
				l . l . l . l .`,
			wantLight: 8,
			wantDark:  8,
		},
		{
			name:    "too few rows",
			diagram: "........\n........",
			wantErr: true,
		},
		{
			name: "short row",
			diagram: `
				.......
				........
				........
				........
				........
				........
				........
				........`,
			wantErr: true,
		},
		{
			name: "unknown piece",
			diagram: `
				x.......
				........
				........
				........
				........
				........
				........
				........`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseBoard(dama.Light, tt.diagram)
			if tt.wantErr {
				AssertError(t, err)
				return
			}
			AssertNoError(t, err)
			AssertEqual(t, b.Count(dama.Light), tt.wantLight, "light pieces")
			AssertEqual(t, b.Count(dama.Dark), tt.wantDark, "dark pieces")
		})
	}
}

func TestParseBoard_RoundTrip(t *testing.T) {
	start := dama.NewBoard(dama.Light)
	parsed := MustParseBoard(t, dama.Light, start.String())
	AssertEqual(t, parsed.String(), start.String())
	AssertEqual(t, parsed.HumanColor, dama.Light)
}
