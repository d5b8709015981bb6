package observer

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sqlCall struct {
	query string
	args  []driver.Value
}

// recordingConn captures every statement and answers queries with rows.
type recordingConn struct {
	calls []sqlCall
	rows  [][]driver.Value
	err   error
}

func (c *recordingConn) record(query string, args []driver.NamedValue) {
	values := make([]driver.Value, len(args))
	for i, a := range args {
		values[i] = a.Value
	}
	c.calls = append(c.calls, sqlCall{query: query, args: values})
}

func (c *recordingConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.record(query, args)
	if c.err != nil {
		return nil, c.err
	}
	return driver.RowsAffected(1), nil
}

func (c *recordingConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	c.record(query, args)
	if c.err != nil {
		return nil, c.err
	}
	return &recordedRows{rows: c.rows}, nil
}

func (c *recordingConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *recordingConn) Close() error { return nil }

func (c *recordingConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

type recordedRows struct {
	rows [][]driver.Value
	pos  int
}

func (r *recordedRows) Columns() []string {
	return []string{"id", "temperature", "humidity", "pressure", "recorded_at"}
}

func (r *recordedRows) Close() error { return nil }

func (r *recordedRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.pos])
	r.pos++
	return nil
}

type recordingConnector struct {
	conn *recordingConn
}

func (c recordingConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }

func (c recordingConnector) Driver() driver.Driver { return recordingDriver{c.conn} }

type recordingDriver struct {
	conn *recordingConn
}

func (d recordingDriver) Open(string) (driver.Conn, error) { return d.conn, nil }

func newRecordingStore(t *testing.T, conn *recordingConn) *PGReadingStore {
	t.Helper()
	db := sql.OpenDB(recordingConnector{conn: conn})
	t.Cleanup(func() { db.Close() })
	return NewPGReadingStore(db)
}

func TestPGReadingStoreApplySchema(t *testing.T) {
	conn := &recordingConn{}
	store := newRecordingStore(t, conn)

	require.NoError(t, store.ApplySchema(context.Background()))
	require.Len(t, conn.calls, 1)
	assert.Contains(t, conn.calls[0].query, "CREATE TABLE IF NOT EXISTS weather_readings")
}

func TestPGReadingStoreSave(t *testing.T) {
	conn := &recordingConn{}
	store := newRecordingStore(t, conn)
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	require.NoError(t, store.Save(context.Background(), Reading{Temperature: 25, Humidity: 70, Pressure: 1013}, at))

	require.Len(t, conn.calls, 1)
	assert.Equal(t,
		"INSERT INTO weather_readings (temperature, humidity, pressure, recorded_at) VALUES ($1, $2, $3, $4)",
		conn.calls[0].query)
	assert.Equal(t, []driver.Value{float64(25), float64(70), float64(1013), at}, conn.calls[0].args)
}

func TestPGReadingStoreSaveError(t *testing.T) {
	conn := &recordingConn{err: errors.New("relation does not exist")}
	store := newRecordingStore(t, conn)

	err := store.Save(context.Background(), Reading{}, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save reading: relation does not exist")
}

func TestPGReadingStoreRecent(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	rows := [][]driver.Value{
		{int64(2), float64(26), float64(65), float64(1011), at},
		{int64(1), float64(25), float64(70), float64(1013), at},
	}

	tests := []struct {
		name      string
		limit     int
		wantQuery string
		wantArgs  []driver.Value
	}{
		{
			name:      "with limit",
			limit:     2,
			wantQuery: "SELECT id, temperature, humidity, pressure, recorded_at FROM weather_readings ORDER BY id DESC LIMIT $1",
			wantArgs:  []driver.Value{int64(2)},
		},
		{
			name:      "without limit",
			limit:     0,
			wantQuery: "SELECT id, temperature, humidity, pressure, recorded_at FROM weather_readings ORDER BY id DESC",
			wantArgs:  []driver.Value{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &recordingConn{rows: rows}
			store := newRecordingStore(t, conn)

			records, err := store.Recent(context.Background(), tt.limit)
			require.NoError(t, err)

			require.Len(t, conn.calls, 1)
			assert.Equal(t, tt.wantQuery, conn.calls[0].query)
			assert.Equal(t, tt.wantArgs, conn.calls[0].args)

			require.Len(t, records, 2)
			assert.Equal(t, int64(2), records[0].ID)
			assert.Equal(t, Reading{Temperature: 26, Humidity: 65, Pressure: 1011}, records[0].Reading)
			assert.True(t, at.Equal(records[1].RecordedAt))
		})
	}
}

func TestPGReadingStoreRecentError(t *testing.T) {
	conn := &recordingConn{err: errors.New("timeout")}
	store := newRecordingStore(t, conn)

	_, err := store.Recent(context.Background(), 1)
	assert.ErrorContains(t, err, "failed to fetch readings: timeout")
}
