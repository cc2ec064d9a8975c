package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeamX-Solutions/beamx-scorecard/internal/model"
)

func writeJSONL(t *testing.T, sets []model.AnswerSet) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.jsonl")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, a := range sets {
		require.NoError(t, enc.Encode(a))
	}
	return path
}

func TestReadAnswerLines(t *testing.T) {
	first := testAnswers()
	second := testAnswers()
	second.BusinessName = "Second Shop"
	path := writeJSONL(t, []model.AnswerSet{first, second})

	got, err := readAnswerLines(path, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Amaka Foods", got[0].BusinessName)
	assert.Equal(t, "Second Shop", got[1].BusinessName)
}

func TestReadAnswerLines_Limit(t *testing.T) {
	path := writeJSONL(t, []model.AnswerSet{testAnswers(), testAnswers(), testAnswers()})

	got, err := readAnswerLines(path, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReadAnswerLines_BadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{not json}\n"), 0o644))

	_, err := readAnswerLines(path, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestProcessBatch_SavesAndSkipsFailures(t *testing.T) {
	cfg = testConfig()
	fs := &fakeStore{}

	good := testAnswers()
	bad := testAnswers()
	bad.CashFlow = "out of domain"

	err := processBatch(context.Background(), []model.AnswerSet{good, bad}, nil, fs)
	require.NoError(t, err)

	// The invalid set is logged and skipped, the valid one persisted.
	require.Len(t, fs.saved, 1)
	assert.Equal(t, "Amaka Foods", fs.saved[0].Answers.BusinessName)
	assert.Equal(t, 73.4, fs.saved[0].Report.TotalScore)
}

func TestProcessBatch_Empty(t *testing.T) {
	cfg = testConfig()
	assert.NoError(t, processBatch(context.Background(), nil, nil, nil))
}
