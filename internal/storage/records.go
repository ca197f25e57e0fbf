package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// Records is the key/value view of one profile.
// Values are opaque bytes, JSON by convention.
type Records struct {
	store   *Store
	profile string
}

// Records returns the record view for a profile.
func (s *Store) Records(profile string) *Records {
	return &Records{store: s, profile: profile}
}

// Profile returns the profile name this view is scoped to.
func (r *Records) Profile() string {
	return r.profile
}

// Get returns the stored value for key, or ErrNotFound.
func (r *Records) Get(key string) ([]byte, error) {
	var value string
	err := r.store.db.QueryRow(
		"SELECT value FROM records WHERE profile = ? AND key = ?",
		r.profile, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s/%s: %w", r.profile, key, err)
	}
	return []byte(value), nil
}

// Put replaces the value stored under key.
func (r *Records) Put(key string, value []byte) error {
	_, err := r.store.db.Exec(
		`INSERT INTO records (profile, key, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		r.profile, key, string(value),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s/%s: %w", r.profile, key, err)
	}
	return nil
}

// Profiles lists every profile that has at least one record, sorted by name.
func (s *Store) Profiles() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT profile FROM records ORDER BY profile")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("storage: cannot scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return profiles, nil
}
