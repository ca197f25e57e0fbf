package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreEntry is one finished session in the score history.
type ScoreEntry struct {
	ID        int64
	Profile   string
	GameID    string
	Score     int
	CreatedAt time.Time
}

// GameStats aggregates the score history of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// SaveScore records a finished session. Returns the inserted row ID.
func (s *Store) SaveScore(profile, gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (profile, game_id, score) VALUES (?, ?, ?)",
		profile, gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns the best scores for a game across all profiles.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, profile, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Profile, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns a profile's best score for a game, 0 when none exist.
func (s *Store) HighScore(profile, gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE profile = ? AND game_id = ?",
		profile, gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ProfileStats aggregates a profile's history per game.
func (s *Store) ProfileStats(profile string) (map[string]GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), MAX(created_at)
		 FROM scores
		 WHERE profile = ?
		 GROUP BY game_id`,
		profile,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get profile stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
