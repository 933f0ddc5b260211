package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/RichardoC/senior-care/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS consultations (
    id TEXT PRIMARY KEY,
    situation TEXT NOT NULL,
    content TEXT NOT NULL,
    model TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE VIRTUAL TABLE IF NOT EXISTS consultations_fts USING fts4(
    situation,
    content,
    tokenize=unicode61
);

-- Keep the FTS index in step with the log
CREATE TRIGGER IF NOT EXISTS consultations_ai AFTER INSERT ON consultations BEGIN
    INSERT INTO consultations_fts(docid, situation, content)
    VALUES (new.rowid, new.situation, new.content);
END;

CREATE TRIGGER IF NOT EXISTS consultations_ad AFTER DELETE ON consultations BEGIN
    DELETE FROM consultations_fts WHERE docid = old.rowid;
END;`

// Database is the consultation log. The default DSN is an in-memory database,
// so entries live only as long as the process.
type Database struct {
	db *sql.DB
}

func New(dsn string) (*Database, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// One connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Database{db: db}, nil
}

func (db *Database) Close() error {
	return db.db.Close()
}

func (db *Database) SaveConsultation(c *models.Consultation) error {
	query := `
        INSERT INTO consultations (id, situation, content, model, created_at)
        VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
        RETURNING created_at`

	return db.db.QueryRow(query, c.ID, c.Situation, c.Content, c.Model).Scan(&c.CreatedAt)
}

// ListConsultations returns up to limit entries, newest first.
func (db *Database) ListConsultations(limit int) ([]models.Consultation, error) {
	query := `
        SELECT id, situation, content, model, created_at
        FROM consultations
        ORDER BY created_at DESC, rowid DESC
        LIMIT ?`

	rows, err := db.db.Query(query, limit)
	if err != nil {
		return []models.Consultation{}, err
	}
	defer rows.Close()

	return scanConsultations(rows)
}

// SearchConsultations runs a full-text phrase search over situations and answers.
func (db *Database) SearchConsultations(query string) ([]models.Consultation, error) {
	rows, err := db.db.Query(`
		SELECT c.id, c.situation, c.content, c.model, c.created_at
		FROM consultations c
		JOIN consultations_fts fts ON c.rowid = fts.docid
		WHERE consultations_fts MATCH ?
		ORDER BY c.created_at DESC, c.rowid DESC;
	`, phrase(query))
	if err != nil {
		return nil, fmt.Errorf("failed to search consultations: %w", err)
	}
	defer rows.Close()

	return scanConsultations(rows)
}

// ClearConsultations empties the log.
func (db *Database) ClearConsultations() error {
	_, err := db.db.Exec("DELETE FROM consultations")
	return err
}

func scanConsultations(rows *sql.Rows) ([]models.Consultation, error) {
	out := make([]models.Consultation, 0)
	for rows.Next() {
		var c models.Consultation
		if err := rows.Scan(&c.ID, &c.Situation, &c.Content, &c.Model, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan consultation: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// phrase quotes free text so FTS operators in it are matched literally.
func phrase(q string) string {
	return `"` + strings.ReplaceAll(q, `"`, " ") + `"`
}
