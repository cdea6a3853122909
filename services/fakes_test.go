package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/card-league/models"
	"github.com/Dosada05/card-league/realtime"
	"github.com/Dosada05/card-league/repositories"
)

// memStore backs all repository fakes so that cross-table behaviour
// (joins, cascades, rollbacks) works like the database.
type memStore struct {
	mu          sync.Mutex
	nextID      int
	players     map[int]models.Player
	tournaments map[int]models.Tournament
	pairings    map[int]models.Pairing
	games       map[int]models.Game

	failGameCreateAfter int // 0 = never
	gamesCreated        int
}

func newMemStore() *memStore {
	return &memStore{
		players:     map[int]models.Player{},
		tournaments: map[int]models.Tournament{},
		pairings:    map[int]models.Pairing{},
		games:       map[int]models.Game{},
	}
}

func (m *memStore) id() int {
	m.nextID++
	return m.nextID
}

func (m *memStore) seedPlayers(names ...string) []models.Player {
	players := make([]models.Player, 0, len(names))
	for _, n := range names {
		p := &models.Player{Name: n}
		_ = (&fakePlayerRepo{m}).Create(context.Background(), p)
		players = append(players, *p)
	}
	return players
}

func (m *memStore) snapshot() *memStore {
	cp := newMemStore()
	cp.nextID = m.nextID
	for k, v := range m.players {
		cp.players[k] = v
	}
	for k, v := range m.tournaments {
		cp.tournaments[k] = v
	}
	for k, v := range m.pairings {
		cp.pairings[k] = v
	}
	for k, v := range m.games {
		cp.games[k] = v
	}
	return cp
}

func (m *memStore) restore(s *memStore) {
	m.nextID = s.nextID
	m.players, m.tournaments, m.pairings, m.games = s.players, s.tournaments, s.pairings, s.games
}

// fakeTx rolls the store back when fn fails.
type fakeTx struct{ store *memStore }

func (f fakeTx) WithinTx(_ context.Context, fn func(exec repositories.SQLExecutor) error) error {
	f.store.mu.Lock()
	saved := f.store.snapshot()
	f.store.mu.Unlock()

	if err := fn(nil); err != nil {
		f.store.mu.Lock()
		f.store.restore(saved)
		f.store.mu.Unlock()
		return err
	}
	return nil
}

type fakePlayerRepo struct{ store *memStore }

func (r *fakePlayerRepo) Create(_ context.Context, p *models.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.players {
		if existing.Name == p.Name {
			return repositories.ErrPlayerNameConflict
		}
	}
	p.ID = r.store.id()
	p.CreatedAt = time.Now()
	r.store.players[p.ID] = *p
	return nil
}

func (r *fakePlayerRepo) GetByID(_ context.Context, id int) (*models.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.players[id]
	if !ok {
		return nil, repositories.ErrPlayerNotFound
	}
	return &p, nil
}

func (r *fakePlayerRepo) List(_ context.Context) ([]models.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	players := make([]models.Player, 0, len(r.store.players))
	for _, p := range r.store.players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool {
		if players[i].Name != players[j].Name {
			return players[i].Name < players[j].Name
		}
		return players[i].ID < players[j].ID
	})
	return players, nil
}

func (r *fakePlayerRepo) ListIDs(_ context.Context, _ repositories.SQLExecutor) ([]int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ids := make([]int, 0, len(r.store.players))
	for id := range r.store.players {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

func (r *fakePlayerRepo) Delete(_ context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.players[id]; !ok {
		return repositories.ErrPlayerNotFound
	}
	delete(r.store.players, id)
	return nil
}

type fakeTournamentRepo struct{ store *memStore }

func (r *fakeTournamentRepo) Create(_ context.Context, _ repositories.SQLExecutor, t *models.Tournament) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.tournaments {
		if existing.Year == t.Year && existing.Month == t.Month {
			return repositories.ErrTournamentPeriodConflict
		}
	}
	t.ID = r.store.id()
	t.CreatedAt = time.Now()
	stored := *t
	stored.Pairings = nil
	r.store.tournaments[t.ID] = stored
	return nil
}

func (r *fakeTournamentRepo) GetByID(_ context.Context, id int) (*models.Tournament, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	t, ok := r.store.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	return &t, nil
}

func (r *fakeTournamentRepo) GetByPeriod(_ context.Context, year, month int) (*models.Tournament, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, t := range r.store.tournaments {
		if t.Year == year && t.Month == month {
			return &t, nil
		}
	}
	return nil, repositories.ErrTournamentNotFound
}

func (r *fakeTournamentRepo) List(_ context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list := make([]models.Tournament, 0)
	for _, t := range r.store.tournaments {
		if filter.Year != nil && t.Year != *filter.Year {
			continue
		}
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Year != list[j].Year {
			return list[i].Year > list[j].Year
		}
		return list[i].Month > list[j].Month
	})
	return list, nil
}

func (r *fakeTournamentRepo) Delete(_ context.Context, _ repositories.SQLExecutor, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.tournaments[id]; !ok {
		return repositories.ErrTournamentNotFound
	}
	delete(r.store.tournaments, id)
	return nil
}

type fakePairingRepo struct{ store *memStore }

func (r *fakePairingRepo) Create(_ context.Context, _ repositories.SQLExecutor, p *models.Pairing) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p.Player1ID >= p.Player2ID {
		return repositories.ErrPairingOrderViolation
	}
	p.ID = r.store.id()
	r.store.pairings[p.ID] = *p
	return nil
}

func (r *fakePairingRepo) withNames(p models.Pairing) models.Pairing {
	p.Player1Name = r.store.players[p.Player1ID].Name
	p.Player2Name = r.store.players[p.Player2ID].Name
	return p
}

func (r *fakePairingRepo) ListByTournament(_ context.Context, tournamentID int) ([]models.Pairing, error) {
	return r.list(func(p models.Pairing) bool { return p.TournamentID == tournamentID }), nil
}

func (r *fakePairingRepo) ListByTournaments(_ context.Context, ids []int) ([]models.Pairing, error) {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return r.list(func(p models.Pairing) bool { return set[p.TournamentID] }), nil
}

func (r *fakePairingRepo) list(keep func(models.Pairing) bool) []models.Pairing {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list := make([]models.Pairing, 0)
	for _, p := range r.store.pairings {
		if keep(p) {
			list = append(list, r.withNames(p))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (r *fakePairingRepo) ExistsForPlayer(_ context.Context, playerID int) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.pairings {
		if p.HasPlayer(playerID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePairingRepo) DeleteByTournament(_ context.Context, _ repositories.SQLExecutor, tournamentID int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, p := range r.store.pairings {
		if p.TournamentID == tournamentID {
			delete(r.store.pairings, id)
		}
	}
	return nil
}

type fakeGameRepo struct{ store *memStore }

var errInjected = errors.New("injected failure")

func (r *fakeGameRepo) Create(_ context.Context, _ repositories.SQLExecutor, g *models.Game) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.gamesCreated++
	if r.store.failGameCreateAfter > 0 && r.store.gamesCreated > r.store.failGameCreateAfter {
		return errInjected
	}
	g.ID = r.store.id()
	r.store.games[g.ID] = *g
	return nil
}

func (r *fakeGameRepo) GetByID(_ context.Context, id int) (*models.Game, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	g, ok := r.store.games[id]
	if !ok {
		return nil, repositories.ErrGameNotFound
	}
	return &g, nil
}

func (r *fakeGameRepo) ListByTournament(_ context.Context, tournamentID int) ([]models.Game, error) {
	return r.list(func(g models.Game) bool { return g.TournamentID == tournamentID }), nil
}

func (r *fakeGameRepo) ListByTournaments(_ context.Context, ids []int) ([]models.Game, error) {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return r.list(func(g models.Game) bool { return set[g.TournamentID] }), nil
}

func (r *fakeGameRepo) list(keep func(models.Game) bool) []models.Game {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list := make([]models.Game, 0)
	for _, g := range r.store.games {
		if keep(g) {
			list = append(list, g)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].RoundNumber != list[j].RoundNumber {
			return list[i].RoundNumber < list[j].RoundNumber
		}
		return list[i].ID < list[j].ID
	})
	return list
}

func (r *fakeGameRepo) UpdateWinner(_ context.Context, id int, winner *int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	g, ok := r.store.games[id]
	if !ok {
		return repositories.ErrGameNotFound
	}
	g.WinnerPairingID = winner
	r.store.games[id] = g
	return nil
}

func (r *fakeGameRepo) DeleteByTournament(_ context.Context, _ repositories.SQLExecutor, tournamentID int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, g := range r.store.games {
		if g.TournamentID == tournamentID {
			delete(r.store.games, id)
		}
	}
	return nil
}

type recordingBroadcaster struct {
	mu       sync.Mutex
	rooms    []string
	messages []realtime.Message
}

func (b *recordingBroadcaster) BroadcastToRoom(room string, message realtime.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rooms = append(b.rooms, room)
	b.messages = append(b.messages, message)
}

type testEnv struct {
	store       *memStore
	players     *fakePlayerRepo
	tournaments *fakeTournamentRepo
	pairings    *fakePairingRepo
	games       *fakeGameRepo
	broadcaster *recordingBroadcaster
}

func newTestEnv() *testEnv {
	store := newMemStore()
	return &testEnv{
		store:       store,
		players:     &fakePlayerRepo{store},
		tournaments: &fakeTournamentRepo{store},
		pairings:    &fakePairingRepo{store},
		games:       &fakeGameRepo{store},
		broadcaster: &recordingBroadcaster{},
	}
}

func (f *testEnv) tournamentService() TournamentService {
	return NewTournamentService(fakeTx{f.store}, f.tournaments, f.players, f.pairings, f.games, f.broadcaster, nil)
}

func (f *testEnv) gameService() GameService {
	return NewGameService(f.tournaments, f.pairings, f.games, f.broadcaster, nil)
}

func (f *testEnv) statisticsService() StatisticsService {
	return NewStatisticsService(f.players, f.tournaments, f.pairings, f.games)
}

var rosterNames = []string{"Anna", "Boris", "Clara", "Dmitri", "Elena", "Fedor", "Galina", "Hugo"}
