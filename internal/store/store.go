package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store wraps the Redis-backed balance backend. Each account owns one
// string-encoded integer under its balance key; all mutation goes
// through Redis-side atomic primitives so no read-modify-write happens
// on the client.
type Store struct {
	Client  *redis.Client
	initial int64
}

func New(addr, password string, db int, initialBalance int64) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Store{Client: client, initial: initialBalance}
}

func (s *Store) Close() error {
	if s.Client != nil {
		return s.Client.Close()
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.Client.Ping(ctx).Err()
}

func balanceKey(account string) string {
	return "player:" + account + ":balance"
}

// Balance returns the current balance, or the configured initial
// balance if the key has never been written.
func (s *Store) Balance(ctx context.Context, account string) (int64, error) {
	val, err := s.Client.Get(ctx, balanceKey(account)).Result()
	if errors.Is(err, redis.Nil) {
		return s.initial, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	bal, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse balance %q: %w", val, err)
	}
	return bal, nil
}

// Add applies a signed delta in a single INCRBY round trip and returns
// the resulting balance.
func (s *Store) Add(ctx context.Context, account string, delta int64) (int64, error) {
	bal, err := s.Client.IncrBy(ctx, balanceKey(account), delta).Result()
	if err != nil {
		return 0, fmt.Errorf("incr balance: %w", err)
	}
	return bal, nil
}

// InitBalance writes the initial balance only if the key is absent.
func (s *Store) InitBalance(ctx context.Context, account string, initial int64) error {
	if err := s.Client.SetNX(ctx, balanceKey(account), strconv.FormatInt(initial, 10), 0).Err(); err != nil {
		return fmt.Errorf("init balance: %w", err)
	}
	return nil
}

// Reset overwrites the balance unconditionally. Operational/debug use.
func (s *Store) Reset(ctx context.Context, account string, amount int64) error {
	if err := s.Client.Set(ctx, balanceKey(account), strconv.FormatInt(amount, 10), 0).Err(); err != nil {
		return fmt.Errorf("reset balance: %w", err)
	}
	return nil
}

// debitScript decrements the balance only when it covers the amount.
// Check and decrement run inside one script invocation, so concurrent
// debits against the same key serialize on the server and the balance
// can never go negative. An absent key is seeded with the initial
// balance first, mirroring Balance's lazy default.
var debitScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  redis.call('SET', KEYS[1], ARGV[2])
end
local bal = tonumber(redis.call('GET', KEYS[1]))
local amount = tonumber(ARGV[1])
if bal < amount then
  return {0, bal}
end
return {1, redis.call('DECRBY', KEYS[1], amount)}
`)

// DebitIfEnough atomically decrements the balance by amount when funds
// cover it. It reports whether the debit applied and the balance after
// the call (unchanged when it did not).
func (s *Store) DebitIfEnough(ctx context.Context, account string, amount int64) (int64, bool, error) {
	res, err := debitScript.Run(ctx, s.Client, []string{balanceKey(account)}, amount, s.initial).Slice()
	if err != nil {
		return 0, false, fmt.Errorf("debit script: %w", err)
	}
	if len(res) != 2 {
		return 0, false, fmt.Errorf("debit script: unexpected reply %v", res)
	}
	applied, ok := res[0].(int64)
	if !ok {
		return 0, false, fmt.Errorf("debit script: unexpected flag %T", res[0])
	}
	bal, ok := res[1].(int64)
	if !ok {
		return 0, false, fmt.Errorf("debit script: unexpected balance %T", res[1])
	}
	return bal, applied == 1, nil
}
