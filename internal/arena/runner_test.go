package arena

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/tussle/internal/game/combat"
	"github.com/udisondev/tussle/internal/model"
	"github.com/udisondev/tussle/internal/roster"
)

const mismatch = `
parties:
  - name: Red
    characters:
      - name: Giant
        stats: {dex: 20, str: 20, grt: 20, wil: 20, cha: 20, int: 20}
  - name: Blue
    characters:
      - name: Imp
        stats: {dex: 1, str: 1, grt: 1, wil: 1, cha: 1, int: 1}
`

const stalemate = `
parties:
  - name: Red
    characters:
      - name: Alf
        stats: {dex: 9, str: 9, grt: 9, wil: 9, cha: 9, int: 9}
  - name: Blue
    characters:
      - name: Bert
        stats: {dex: 9, str: 9, grt: 9, wil: 9, cha: 9, int: 9}
`

type fakeStore struct {
	mu       sync.Mutex
	battles  map[string]model.BattleRecord
	turns    map[string][]model.TurnRecord
	appends  int
	failTurn error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		battles: make(map[string]model.BattleRecord),
		turns:   make(map[string][]model.TurnRecord),
	}
}

func (s *fakeStore) CreateBattle(_ context.Context, b model.BattleRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.battles[b.ID] = b
	return nil
}

func (s *fakeStore) AppendTurns(_ context.Context, id string, turns []model.TurnRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failTurn != nil {
		return s.failTurn
	}
	s.appends++
	s.turns[id] = append(s.turns[id], turns...)
	return nil
}

func (s *fakeStore) FinishBattle(_ context.Context, id string, finishedAt time.Time, rounds int, winner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.battles[id]
	b.FinishedAt, b.Rounds, b.Winner = finishedAt, rounds, winner
	s.battles[id] = b
	return nil
}

func parse(t *testing.T, data string) *roster.Roster {
	t.Helper()
	rs, err := roster.Parse([]byte(data), 3)
	require.NoError(t, err)
	return rs
}

func TestRun_Decisive(t *testing.T) {
	store := newFakeStore()
	clock := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	r := NewRunner(50, WithStore(store), WithClock(func() time.Time { return clock }))

	rs := parse(t, mismatch)
	res, err := r.Run(context.Background(), rs)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Rounds, "172 HP at 70 net per round with 3 regen")
	assert.Equal(t, "Red", res.Winner)
	assert.Equal(t, []string{"Red"}, res.Standing)
	assert.Equal(t, 6, res.Turns)
	_, err = ulid.Parse(res.ID)
	assert.NoError(t, err)

	rec := store.battles[res.ID]
	assert.Equal(t, rs.Fingerprint, rec.RosterFingerprint)
	assert.Equal(t, 3, rec.Rounds)
	assert.Equal(t, "Red", rec.Winner)
	assert.Equal(t, clock, rec.StartedAt)
	assert.Equal(t, 3, store.appends)

	turns := store.turns[res.ID]
	require.Len(t, turns, 6)
	assert.Equal(t, "Imp", turns[0].Actor, "least mobile acts first")
	assert.Equal(t, []string{"Giant attacks Imp for 72 [PHY] Strike"}, turns[1].Lines)
}

func TestRun_RoundCap(t *testing.T) {
	var stacks int
	counter := combat.TurnLoggerFunc(func(combat.TurnInfo, *combat.ActionStack) { stacks++ })
	r := NewRunner(5, WithTurnLogger(counter))

	res, err := r.Run(context.Background(), parse(t, stalemate))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Rounds)
	assert.Empty(t, res.Winner)
	assert.Equal(t, []string{"Red", "Blue"}, res.Standing)
	assert.Equal(t, 10, stacks)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(5).Run(ctx, parse(t, stalemate))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_StoreFailure(t *testing.T) {
	store := newFakeStore()
	store.failTurn = errors.New("disk full")

	_, err := NewRunner(5, WithStore(store)).Run(context.Background(), parse(t, stalemate))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRunAll(t *testing.T) {
	store := newFakeStore()
	r := NewRunner(50, WithStore(store))

	results, err := r.RunAll(context.Background(), 8, 3, func() (*roster.Roster, error) {
		return roster.Parse([]byte(mismatch), 3)
	})
	require.NoError(t, err)
	require.Len(t, results, 8)

	ids := make(map[string]struct{})
	for _, res := range results {
		assert.Equal(t, "Red", res.Winner)
		assert.Equal(t, 3, res.Rounds)
		ids[res.ID] = struct{}{}
	}
	assert.Len(t, ids, 8)
	assert.Len(t, store.battles, 8)
	assert.Equal(t, map[string]int{"Red": 8}, Tally(results))
}

func TestRunAll_NoLimit(t *testing.T) {
	for _, parallel := range []int{0, -1} {
		results, err := NewRunner(50).RunAll(context.Background(), 4, parallel, func() (*roster.Roster, error) {
			return roster.Parse([]byte(mismatch), 3)
		})
		require.NoError(t, err, "parallel %d", parallel)
		assert.Len(t, results, 4, "parallel %d", parallel)
	}
}

func TestRunAll_LoadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewRunner(5).RunAll(context.Background(), 4, 2, func() (*roster.Roster, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

type quiet struct{}

func (quiet) RequestReactions(*combat.Action) []*combat.Action { return nil }

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	stack := combat.NewActionStack()
	stack.Build([]*combat.Action{
		combat.NewAction(combat.Characters("Alf"),
			combat.Attack{Damage: model.Damage{Type: model.Physical("Slash"), Amount: 32}},
			combat.Characters("Bert")),
	}, quiet{})

	rec.ManeuverStack(combat.TurnInfo{Round: 2, Seq: 1, Actor: "Alf", Maneuver: "Barehanded Blow"}, stack)

	got := rec.Flush()
	require.Len(t, got, 1)
	assert.Equal(t, model.TurnRecord{
		Round: 2, Seq: 1, Actor: "Alf", Maneuver: "Barehanded Blow",
		Lines: []string{"Alf strikes Bert for 32 [PHY] Slash"},
	}, got[0])
	assert.Empty(t, rec.Flush())
	assert.Equal(t, 1, rec.Total())
}
