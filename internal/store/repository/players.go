package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/gridiron/internal/store"
)

// PlayerRepository handles player data access
type PlayerRepository struct {
	db *store.Database
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *store.Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// UpsertTx inserts or updates a player inside the caller's transaction.
// Players are never deleted on game re-ingest; only the mutable
// attributes are overwritten.
func (r *PlayerRepository) UpsertTx(ctx context.Context, tx *sql.Tx, player *store.Player) error {
	query := `
		INSERT INTO players (nfl_id, gsis_id, first_name, last_name, player_name,
			position, position_group, uniform_number, team_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (nfl_id) DO UPDATE SET
			team_id = EXCLUDED.team_id,
			uniform_number = EXCLUDED.uniform_number,
			position = EXCLUDED.position,
			position_group = EXCLUDED.position_group,
			updated_at = NOW()
	`

	_, err := tx.ExecContext(ctx, query,
		player.NFLID, player.GSISID, player.FirstName, player.LastName, player.PlayerName,
		player.Position, player.PositionGroup, player.UniformNumber, player.TeamID,
	)
	if err != nil {
		return fmt.Errorf("upserting player %d: %w", player.NFLID, err)
	}

	return nil
}

// GetByID finds a player by NFL ID.
func (r *PlayerRepository) GetByID(ctx context.Context, nflID int) (*store.Player, error) {
	query := `
		SELECT nfl_id, gsis_id, first_name, last_name, player_name,
			position, position_group, uniform_number, team_id, created_at, updated_at
		FROM players
		WHERE nfl_id = $1
	`

	player := &store.Player{}
	err := r.db.DB().QueryRowContext(ctx, query, nflID).Scan(
		&player.NFLID, &player.GSISID, &player.FirstName, &player.LastName, &player.PlayerName,
		&player.Position, &player.PositionGroup, &player.UniformNumber, &player.TeamID,
		&player.CreatedAt, &player.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player not found: %d", nflID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying player: %w", err)
	}

	return player, nil
}

// Search finds players by name substring, case-insensitive.
func (r *PlayerRepository) Search(ctx context.Context, name string, limit int) ([]*store.Player, error) {
	if limit <= 0 {
		limit = 25
	}

	query := `
		SELECT nfl_id, gsis_id, first_name, last_name, player_name,
			position, position_group, uniform_number, team_id, created_at, updated_at
		FROM players
		WHERE player_name ILIKE $1 OR last_name ILIKE $1
		ORDER BY last_name, first_name
		LIMIT $2
	`

	rows, err := r.db.DB().QueryContext(ctx, query, "%"+name+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("searching players: %w", err)
	}
	defer rows.Close()

	var players []*store.Player
	for rows.Next() {
		player := &store.Player{}
		err := rows.Scan(
			&player.NFLID, &player.GSISID, &player.FirstName, &player.LastName, &player.PlayerName,
			&player.Position, &player.PositionGroup, &player.UniformNumber, &player.TeamID,
			&player.CreatedAt, &player.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		players = append(players, player)
	}

	return players, rows.Err()
}
