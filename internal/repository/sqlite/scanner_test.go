package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}

	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}

	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = ts.data[i].(int64)
		case *int:
			*v = ts.data[i].(int)
		case *string:
			*v = ts.data[i].(string)
		}
	}

	return nil
}

// TestRows implements the Rows interface over a fixed set of scanners
type TestRows struct {
	rows    []*TestScanner
	current int
	err     error
}

func (tr *TestRows) Next() bool {
	if tr.current >= len(tr.rows) {
		return false
	}
	tr.current++
	return true
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	return tr.rows[tr.current-1].Scan(dest...)
}

func (tr *TestRows) Err() error {
	return tr.err
}

func TestScanTask(t *testing.T) {
	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *Task
		expectError bool
	}{
		{
			name:     "Valid task",
			scanner:  &TestScanner{data: []interface{}{int64(1), "Write report", 3}},
			expected: &Task{ID: 1, TaskName: "Write report", DeadlineDays: 3},
		},
		{
			name:        "Scan error",
			scanner:     &TestScanner{err: errors.New("scan failed")},
			expectError: true,
		},
		{
			name:        "Column mismatch",
			scanner:     &TestScanner{data: []interface{}{int64(1), "Write report"}},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := ScanTask(tt.scanner)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, task)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, task)
		})
	}
}

func TestScanTasks(t *testing.T) {
	t.Run("Multiple rows keep order", func(t *testing.T) {
		rows := &TestRows{rows: []*TestScanner{
			{data: []interface{}{int64(1), "b", 2}},
			{data: []interface{}{int64(2), "a", 1}},
		}}

		tasks, err := ScanTasks(rows)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, "b", tasks[0].TaskName)
		assert.Equal(t, "a", tasks[1].TaskName)
	})

	t.Run("Empty result", func(t *testing.T) {
		tasks, err := ScanTasks(&TestRows{})
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("Row scan error", func(t *testing.T) {
		rows := &TestRows{rows: []*TestScanner{{err: errors.New("bad row")}}}
		_, err := ScanTasks(rows)
		assert.EqualError(t, err, "bad row")
	})

	t.Run("Iteration error", func(t *testing.T) {
		rows := &TestRows{err: errors.New("cursor closed")}
		_, err := ScanTasks(rows)
		assert.EqualError(t, err, "cursor closed")
	})
}
