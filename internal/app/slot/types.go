package slot

import "neon-slots/internal/game"

type PlayResult struct {
	RoundID  string    `json:"round_id"`
	Grid     game.Grid `json:"grid"`
	Winnings int64     `json:"winnings"`
	Balance  int64     `json:"balance"`
}

type SimResult struct {
	TotalWinnings int64 `json:"total_winnings"`
	NetResult     int64 `json:"net_result"`
}
