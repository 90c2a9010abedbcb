package v1

import (
	"database/sql"
	"fmt"
	"strings"
)

// Recorder persists the run output to a SQL database so results can be
// analyzed after the unit tests have executed. sqlite3 covers local host
// runs; oracle covers a shared results server. The driver must be imported
// by the main application.
type Recorder struct {
	DB         *sql.DB
	DriverName string
}

// OpenRecorder connects to the results database and creates the result
// tables if they do not exist yet.
func OpenRecorder(driverName, dataSourceName string) (*Recorder, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("open results db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping results db: %w", err)
	}

	rec := &Recorder{DB: db, DriverName: driverName}
	if err := rec.setupTables(); err != nil {
		db.Close()
		return nil, err
	}
	return rec, nil
}

func (rec *Recorder) setupTables() error {
	var stmts []string
	if rec.DriverName == "oracle" {
		stmts = []string{
			"CREATE TABLE run_log (entry_type VARCHAR2(16), summary VARCHAR2(200), detail VARCHAR2(400))",
			"CREATE TABLE case_results (suite_name VARCHAR2(200), case_name VARCHAR2(200), passed NUMBER(1))",
		}
	} else {
		stmts = []string{
			"CREATE TABLE IF NOT EXISTS run_log (entry_type TEXT, summary TEXT, detail TEXT)",
			"CREATE TABLE IF NOT EXISTS case_results (suite_name TEXT, case_name TEXT, passed INTEGER)",
		}
	}

	for _, q := range stmts {
		if _, err := rec.DB.Exec(q); err != nil {
			// Oracle has no IF NOT EXISTS; ORA-00955 means the table
			// is already there.
			if rec.DriverName == "oracle" && strings.Contains(err.Error(), "ORA-00955") {
				continue
			}
			return fmt.Errorf("create result tables: %w", err)
		}
	}
	return nil
}

// placeholders builds the value placeholder list for the driver.
func (rec *Recorder) placeholders(n int) string {
	ph := make([]string, n)
	for i := range ph {
		if rec.DriverName == "oracle" {
			ph[i] = fmt.Sprintf(":%d", i+1)
		} else {
			ph[i] = "?"
		}
	}
	return strings.Join(ph, ", ")
}

// Attach subscribes the recorder to a runner. Every log entry and case
// verdict of the run is persisted. Once attached, write failures are
// swallowed: recording is best effort and never fails the run.
func (rec *Recorder) Attach(r *Runner) {
	r.RegisterLogHandler(rec.recordEntry)
	r.RegisterResultHandler(rec.recordResult)
}

func (rec *Recorder) recordEntry(e LogEntry) {
	q := fmt.Sprintf("INSERT INTO run_log (entry_type, summary, detail) VALUES (%s)",
		rec.placeholders(3))
	rec.DB.Exec(q, string(e.Type), clip(e.Summary, 200), clip(e.Detail, 400))
}

func (rec *Recorder) recordResult(res CaseResult) {
	passed := 0
	if res.Passed {
		passed = 1
	}
	q := fmt.Sprintf("INSERT INTO case_results (suite_name, case_name, passed) VALUES (%s)",
		rec.placeholders(3))
	rec.DB.Exec(q, clip(res.Suite, 200), clip(res.Case, 200), passed)
}

// clip bounds column values to the declared column widths.
func clip(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// FetchResults returns every recorded case verdict in insertion order.
func (rec *Recorder) FetchResults() ([]CaseResult, error) {
	rows, err := rec.DB.Query("SELECT suite_name, case_name, passed FROM case_results")
	if err != nil {
		return nil, fmt.Errorf("query case results: %w", err)
	}
	defer rows.Close()

	var results []CaseResult
	for rows.Next() {
		var res CaseResult
		var passed int
		if err := rows.Scan(&res.Suite, &res.Case, &passed); err != nil {
			return nil, fmt.Errorf("scan case result: %w", err)
		}
		res.Passed = passed != 0
		results = append(results, res)
	}
	return results, rows.Err()
}

// LogLineCount returns how many log entries have been recorded.
func (rec *Recorder) LogLineCount() (int, error) {
	var n int
	err := rec.DB.QueryRow("SELECT COUNT(*) FROM run_log").Scan(&n)
	return n, err
}

// Close releases the database connection.
func (rec *Recorder) Close() error {
	return rec.DB.Close()
}
