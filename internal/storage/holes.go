package storage

import (
	"database/sql"
	"fmt"

	"github.com/vovakirdan/tui-minigolf/internal/core"
)

// HoleRecord is one stored hole result.
type HoleRecord struct {
	ID        int64     `db:"id"`
	HoleID    string    `db:"hole_id"`
	Par       int       `db:"par"`
	Strokes   int       `db:"strokes"`
	PickedUp  bool      `db:"picked_up"`
	CreatedAt Timestamp `db:"created_at"`
}

// Result converts the record back to a core hole result.
func (r HoleRecord) Result() core.HoleResult {
	return core.HoleResult{HoleID: r.HoleID, Par: r.Par, Strokes: r.Strokes, PickedUp: r.PickedUp}
}

// HoleBest summarises every completed play of one hole.
type HoleBest struct {
	HoleID string `db:"hole_id"`
	Par    int    `db:"par"`
	Best   int    `db:"best"`
	Plays  int    `db:"plays"`
}

const insertHoleResult = `INSERT INTO hole_results (hole_id, par, strokes, picked_up) VALUES (?, ?, ?, ?)`

// SaveHoleResult records the outcome of one hole.
func (s *Store) SaveHoleResult(r core.HoleResult) (int64, error) {
	res, err := s.db.Exec(insertHoleResult, r.HoleID, r.Par, r.Strokes, r.PickedUp)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save hole result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// SaveCard records every hole of a finished round in one transaction.
func (s *Store) SaveCard(card []core.HoleResult) error {
	if len(card) == 0 {
		return nil
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, r := range card {
		if _, err := tx.Exec(insertHoleResult, r.HoleID, r.Par, r.Strokes, r.PickedUp); err != nil {
			return fmt.Errorf("storage: cannot save hole %s: %w", r.HoleID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit card: %w", err)
	}
	return nil
}

// BestStrokes returns the fewest strokes the hole was ever holed in.
// Picked-up balls do not count. ok is false when there is no such result.
func (s *Store) BestStrokes(holeID string) (best int, ok bool, err error) {
	var v sql.NullInt64
	err = s.db.Get(&v,
		"SELECT MIN(strokes) FROM hole_results WHERE hole_id = ? AND picked_up = 0",
		holeID,
	)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best strokes: %w", err)
	}
	if !v.Valid {
		return 0, false, nil
	}
	return int(v.Int64), true, nil
}

// HoleHistory returns the most recent results for a hole, newest first.
func (s *Store) HoleHistory(holeID string, limit int) ([]HoleRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	var records []HoleRecord
	err := s.db.Select(&records,
		`SELECT id, hole_id, par, strokes, picked_up, created_at
		 FROM hole_results
		 WHERE hole_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		holeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query hole history: %w", err)
	}
	return records, nil
}

// HoleBests returns the best completed score of every hole played so far,
// ordered by hole ID.
func (s *Store) HoleBests() ([]HoleBest, error) {
	var bests []HoleBest
	err := s.db.Select(&bests,
		`SELECT hole_id, MAX(par) AS par, MIN(strokes) AS best, COUNT(*) AS plays
		 FROM hole_results
		 WHERE picked_up = 0
		 GROUP BY hole_id
		 ORDER BY hole_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query hole bests: %w", err)
	}
	return bests, nil
}
