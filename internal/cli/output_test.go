package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitime/unitime/internal/board"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   string
	Name string
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

func newTestFormatter(jsonOut, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonOut, Quiet: quiet, Out: &out, ErrOut: &errOut}, &out, &errOut
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	t.Parallel()
	f, out, _ := newTestFormatter(true, false)

	require.NoError(t, f.Success(mockDataWithID{ID: "c1", Name: "Done"}))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]any)
	assert.Equal(t, "c1", data["ID"])
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	t.Parallel()

	t.Run("single id", func(t *testing.T) {
		f, out, _ := newTestFormatter(false, true)
		require.NoError(t, f.Success(mockDataWithID{ID: "abc"}))
		assert.Equal(t, "abc\n", out.String())
	})

	t.Run("id list", func(t *testing.T) {
		f, out, _ := newTestFormatter(false, true)
		require.NoError(t, f.Success(ColumnList{{ID: "a"}, {ID: "b"}}))
		assert.Equal(t, "a\nb\n", out.String())
	})

	t.Run("no id prints nothing", func(t *testing.T) {
		f, out, _ := newTestFormatter(false, true)
		require.NoError(t, f.Success(mockDataWithoutID{Name: "x"}))
		assert.Empty(t, out.String())
	})

	t.Run("quiet wins over json", func(t *testing.T) {
		f, out, _ := newTestFormatter(true, true)
		require.NoError(t, f.Success(mockDataWithID{ID: "abc"}))
		assert.Equal(t, "abc\n", out.String())
	})
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	t.Parallel()
	f, out, _ := newTestFormatter(false, false)

	require.NoError(t, f.Success(ColumnResult{ID: "c1", Title: "Review"}))
	assert.Contains(t, out.String(), "Review")
	assert.Contains(t, out.String(), "c1")

	out.Reset()
	require.NoError(t, f.Success(mockDataWithoutID{Name: "x", Value: 1}))
	assert.Contains(t, out.String(), "Name:x")
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	t.Parallel()
	f, out, _ := newTestFormatter(true, false)

	require.NoError(t, f.ErrorWithSuggestion("TASK_NOT_FOUND", "no such task", "list tasks"))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "TASK_NOT_FOUND", errData["code"])
	assert.Equal(t, "list tasks", errData["suggestion"])
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	t.Parallel()
	f, out, errOut := newTestFormatter(false, false)

	require.NoError(t, f.Error("ERROR", "boom"))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error: boom")
	assert.NotContains(t, errOut.String(), "Suggestion")
}

func TestOutputFormatter_Fail(t *testing.T) {
	t.Parallel()
	f, _, errOut := newTestFormatter(false, false)

	err := f.Fail(fmt.Errorf("column x: %w", board.ErrColumnNotFound))

	assert.Equal(t, ExitNotFound, ExitCode(err))
	assert.ErrorIs(t, err, board.ErrColumnNotFound)
	assert.Contains(t, errOut.String(), "Suggestion")
}

// ============================================================================
// Helpers
// ============================================================================

func TestExitCode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("plain")))
	assert.Equal(t, ExitValidation, ExitCode(&ExitError{Code: ExitValidation, Err: board.ErrIndexOutOfRange}))
	assert.Equal(t, ExitUsage, ExitCode(fmt.Errorf("wrapped: %w", &ExitError{Code: ExitUsage, Err: errors.New("x")})))
}

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		code string
		exit int
	}{
		{board.ErrColumnNotFound, "COLUMN_NOT_FOUND", ExitNotFound},
		{board.ErrTaskNotFound, "TASK_NOT_FOUND", ExitNotFound},
		{board.ErrIndexOutOfRange, "INDEX_OUT_OF_RANGE", ExitValidation},
		{errors.New("disk"), "ERROR", ExitFailure},
	}
	for _, tt := range tests {
		code, exit, _ := Classify(tt.err)
		assert.Equal(t, tt.code, code)
		assert.Equal(t, tt.exit, exit)
	}
}

func TestParseIndex(t *testing.T) {
	t.Parallel()
	n, err := ParseIndex("index", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = ParseIndex("index", "-1")
	assert.Error(t, err)
	_, err = ParseIndex("index", "two")
	assert.Error(t, err)
}
