package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"neon-slots/internal/config"
)

type playResponse struct {
	RoundID  string     `json:"round_id"`
	Grid     [][]string `json:"grid"`
	Winnings int64      `json:"winnings"`
	Balance  int64      `json:"balance"`
}

func main() {
	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatal(err)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	delay := time.Duration(cfg.DelayMS) * time.Millisecond

	var won, wagered int64
	for i := 0; i < cfg.Spins; i++ {
		res, err := play(client, cfg.ServerURL, cfg.Bet)
		if err != nil {
			log.Printf("spin %d: %v", i+1, err)
			break
		}
		won += res.Winnings
		wagered += cfg.Bet
		log.Printf("spin %d: round=%s winnings=%d balance=%d", i+1, res.RoundID, res.Winnings, res.Balance)
		time.Sleep(delay)
	}
	log.Printf("done: wagered=%d won=%d net=%d", wagered, won, won-wagered)
}

func play(client *http.Client, baseURL string, bet int64) (*playResponse, error) {
	body, _ := json.Marshal(map[string]int64{"bet": bet})
	resp, err := client.Post(baseURL+"/api/slot/play", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return nil, &playError{status: resp.StatusCode, code: apiErr.Error}
	}
	var out playResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

type playError struct {
	status int
	code   string
}

func (e *playError) Error() string {
	return "play failed: " + http.StatusText(e.status) + " (" + e.code + ")"
}
