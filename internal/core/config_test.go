package core

import "testing"

func TestStatusWinner(t *testing.T) {
	tests := []struct {
		name      string
		status    Status
		want      string
		playerWon bool
	}{
		{"running", Status{LeftScore: 3, RightScore: 6, Started: true}, "", false},
		{"player won", Status{LeftScore: 3, RightScore: 7, GameOver: true}, "right", true},
		{"cpu won", Status{LeftScore: 7, RightScore: 2, GameOver: true}, "left", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Winner(); got != tt.want {
				t.Errorf("Winner() = %q, expected %q", got, tt.want)
			}
			if got := tt.status.PlayerWon(); got != tt.playerWon {
				t.Errorf("PlayerWon() = %v, expected %v", got, tt.playerWon)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionStart.String() != "Start" || Action(99).String() != "Unknown" {
		t.Errorf("unexpected action names: %q %q", ActionStart, Action(99))
	}
}
