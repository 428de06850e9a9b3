package storage

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"cardstmt/internal"
)

type DB struct {
	conn *sql.DB
}

func Create(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS statements (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  fileName TEXT NOT NULL,
  issuer TEXT NOT NULL,
  cardNumber TEXT,
  statementDate TEXT,
  paymentDueDate TEXT,
  totalAmountDue TEXT,
  minimumAmountDue TEXT,
  creditLimit TEXT,
  availableCredit TEXT,
  previousBalance TEXT,
  parsingStatus TEXT NOT NULL,
  errorsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_statements_issuer ON statements(issuer);
CREATE INDEX IF NOT EXISTS idx_statements_status ON statements(parsingStatus);
`
	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) InsertRecords(records []internal.StatementRecord) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT INTO statements (
  fileName, issuer, cardNumber, statementDate, paymentDueDate,
  totalAmountDue, minimumAmountDue, creditLimit, availableCredit,
  previousBalance, parsingStatus, errorsJson
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		errorsJSON, err := json.Marshal(rec.Errors)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(
			rec.FileName, string(rec.Issuer),
			rec.CardNumber, rec.StatementDate, rec.PaymentDueDate,
			rec.TotalAmountDue, rec.MinimumAmountDue, rec.CreditLimit,
			rec.AvailableCredit, rec.PreviousBalance,
			string(rec.ParsingStatus), string(errorsJSON),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (d *DB) CountByStatus() (map[string]int, error) {
	rows, err := d.conn.Query(`SELECT parsingStatus, COUNT(*) FROM statements GROUP BY parsingStatus`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		out[status] = count
	}
	return out, rows.Err()
}
