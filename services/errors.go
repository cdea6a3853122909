package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ошибки валидации
	ErrPlayerNameRequired = errors.New("player name is required")
	ErrInvalidPeriod      = errors.New("invalid tournament year or month")
	ErrRosterIncomplete   = errors.New("roster must contain exactly 8 players")
	ErrInvalidWinner      = errors.New("winner must be one of the game's pairings")

	// Ошибки конфликтов
	ErrPlayerNameConflict  = errors.New("player name is already in use")
	ErrPlayerInUse         = errors.New("player has played in tournaments and cannot be deleted")
	ErrDuplicateTournament = errors.New("a tournament for this year and month already exists")

	// Ошибки аутентификации
	ErrInvalidCredentials = errors.New("invalid password")
	ErrAuthDisabled       = errors.New("admin login is not configured")

	ErrExportUnavailable = errors.New("result export storage is not configured")

	ErrPlayerNotFound     = errors.New("player not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrGameNotFound       = errors.New("game not found")
)
