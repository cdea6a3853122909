package services

import (
	"context"
	"errors"
	"testing"
)

func TestCreatePlayer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantErr  error
	}{
		{"plain", "Anna", "Anna", nil},
		{"trimmed and collapsed", "  Anna   Maria ", "Anna Maria", nil},
		{"empty", "", "", ErrPlayerNameRequired},
		{"whitespace only", "   ", "", ErrPlayerNameRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			svc := NewPlayerService(env.players, env.pairings)

			player, err := svc.CreatePlayer(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && player.Name != tt.wantName {
				t.Errorf("name = %q, want %q", player.Name, tt.wantName)
			}
		})
	}
}

func TestCreatePlayerNameConflict(t *testing.T) {
	env := newTestEnv()
	svc := NewPlayerService(env.players, env.pairings)
	ctx := context.Background()

	if _, err := svc.CreatePlayer(ctx, "Anna"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreatePlayer(ctx, " Anna "); !errors.Is(err, ErrPlayerNameConflict) {
		t.Errorf("expected ErrPlayerNameConflict, got %v", err)
	}
}

func TestGetAndListPlayers(t *testing.T) {
	env := newTestEnv()
	env.store.seedPlayers("Clara", "Anna", "Boris")
	svc := NewPlayerService(env.players, env.pairings)
	ctx := context.Background()

	players, err := svc.ListPlayers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(players) != 3 || players[0].Name != "Anna" || players[2].Name != "Clara" {
		t.Errorf("unexpected list: %+v", players)
	}

	got, err := svc.GetPlayer(ctx, players[1].ID)
	if err != nil || got.Name != "Boris" {
		t.Errorf("GetPlayer = %+v, %v", got, err)
	}
	if _, err := svc.GetPlayer(ctx, 404); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestDeletePlayer(t *testing.T) {
	env := newTestEnv()
	players := env.store.seedPlayers(rosterNames...)
	extra := env.store.seedPlayers("Substitute")[0]
	svc := NewPlayerService(env.players, env.pairings)
	ctx := context.Background()

	// The substitute is deleted first so the roster is back to eight.
	if err := svc.DeletePlayer(ctx, extra.ID); err != nil {
		t.Fatalf("delete unused player: %v", err)
	}
	if _, err := env.tournamentService().CreateTournament(ctx, CreateTournamentInput{Year: 2026, Month: 1}); err != nil {
		t.Fatal(err)
	}

	err := svc.DeletePlayer(ctx, players[0].ID)
	if !errors.Is(err, ErrPlayerInUse) {
		t.Errorf("expected ErrPlayerInUse, got %v", err)
	}
	if _, ok := env.store.players[players[0].ID]; !ok {
		t.Error("player in use was deleted")
	}

	if err := svc.DeletePlayer(ctx, 9999); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}
}
