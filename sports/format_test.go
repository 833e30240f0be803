package sports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAnswer(t *testing.T) {
	tests := []struct {
		name  string
		team  string
		match Match
		want  string
	}{
		{
			name: "home win",
			team: "PSG",
			match: Match{
				HomeName: "PSG", AwayName: "Lyon",
				HomeScore: 3, AwayScore: 1,
			},
			want: "PSG won 3–1 against Lyon.",
		},
		{
			name: "away loss keeps the queried team's score first",
			team: "PSG",
			match: Match{
				HomeName: "Lyon", AwayName: "PSG",
				HomeScore: 3, AwayScore: 1,
			},
			want: "PSG lost 1–3 against Lyon.",
		},
		{
			name: "draw",
			team: "PSG",
			match: Match{
				HomeName: "PSG", AwayName: "Lyon",
				HomeScore: 2, AwayScore: 2,
			},
			want: "PSG drew 2–2 against Lyon.",
		},
		{
			name: "away win",
			team: "OM",
			match: Match{
				HomeName: "Nice", AwayName: "Olympique Marseille",
				HomeScore: 0, AwayScore: 2,
			},
			want: "OM won 2–0 against Nice.",
		},
		{
			name: "substring match is case-insensitive",
			team: "psg",
			match: Match{
				HomeName: "Paris Saint-Germain (PSG)", AwayName: "Lyon",
				HomeScore: 1, AwayScore: 0,
			},
			want: "psg won 1–0 against Lyon.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAnswer(tt.team, tt.match))
		})
	}
}
