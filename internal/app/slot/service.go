package slot

import (
	"context"
	"sync"

	"neon-slots/internal/game"
	"neon-slots/internal/store"
	"neon-slots/internal/wallet"

	"github.com/rs/zerolog/log"
)

// OutcomeGenerator draws one wager outcome. Satisfied by *game.Generator.
type OutcomeGenerator interface {
	Generate(bet int64) (game.Grid, int64)
}

// Service sequences each play: debit the bet, draw the outcome, record
// the totals, credit the winnings. It is the only caller of the ledger
// and the generator.
type Service struct {
	ledger *wallet.Ledger
	gen    OutcomeGenerator

	// Lifetime wager/payout totals for RTP. In-process only; a restart
	// starts them over. A deployment with more than one instance would
	// need these shared or persisted.
	mu          sync.Mutex
	totalWager  int64
	totalPayout int64
}

func NewService(ledger *wallet.Ledger, gen OutcomeGenerator) *Service {
	return &Service{ledger: ledger, gen: gen}
}

// Play runs one wager. Insufficient funds aborts before any outcome is
// drawn or counted. After a successful debit the totals update even if
// the credit fails; the debit has already committed and the outcome was
// decided.
func (s *Service) Play(ctx context.Context, bet int64) (*PlayResult, error) {
	balance, err := s.ledger.Debit(ctx, bet)
	if err != nil {
		return nil, err
	}

	roundID := store.NewID()
	grid, winnings := s.gen.Generate(bet)

	s.mu.Lock()
	s.totalWager += bet
	s.totalPayout += winnings
	s.mu.Unlock()

	if winnings > 0 {
		balance, err = s.ledger.Credit(ctx, winnings)
		if err != nil {
			// The bet is already taken. Log the round so the missing
			// credit can be reconciled by hand.
			log.Error().Err(err).Str("round_id", roundID).
				Int64("bet", bet).Int64("winnings", winnings).
				Msg("credit failed after debit")
			return nil, err
		}
	}

	return &PlayResult{
		RoundID:  roundID,
		Grid:     grid,
		Winnings: winnings,
		Balance:  balance,
	}, nil
}

// Simulate runs count sequential plays of the same bet. The first play
// that cannot be funded aborts the rest; plays already completed keep
// their balance effects.
func (s *Service) Simulate(ctx context.Context, count int, bet int64) (*SimResult, error) {
	var totalWinnings int64
	for i := 0; i < count; i++ {
		res, err := s.Play(ctx, bet)
		if err != nil {
			return nil, err
		}
		totalWinnings += res.Winnings
	}
	return &SimResult{
		TotalWinnings: totalWinnings,
		NetResult:     totalWinnings - bet*int64(count),
	}, nil
}

// RTP reports lifetime payout over wager as a percentage, 0 before the
// first play.
func (s *Service) RTP() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.totalWager == 0 {
		return 0
	}
	return float64(s.totalPayout) / float64(s.totalWager) * 100
}

func (s *Service) Deposit(ctx context.Context, amount int64) (int64, error) {
	return s.ledger.Credit(ctx, amount)
}

func (s *Service) Withdraw(ctx context.Context, amount int64) (int64, error) {
	return s.ledger.Debit(ctx, amount)
}

func (s *Service) Balance(ctx context.Context) (int64, error) {
	return s.ledger.Balance(ctx)
}
