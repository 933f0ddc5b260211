package db

import (
	"testing"

	"github.com/RichardoC/senior-care/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *Database {
	t.Helper()
	database, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func save(t *testing.T, database *Database, situation, content string) *models.Consultation {
	t.Helper()
	c := &models.Consultation{
		ID:        uuid.NewString(),
		Situation: situation,
		Content:   content,
		Model:     "qwen/qwen3-coder:free",
	}
	require.NoError(t, database.SaveConsultation(c))
	return c
}

func TestSaveAndList(t *testing.T) {
	database := newTestDB(t)
	first := save(t, database, "68세 독거", "기초연금 안내")
	second := save(t, database, "치매 진단", "노인장기요양보험 안내")

	assert.False(t, first.CreatedAt.IsZero())

	list, err := database.ListConsultations(10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, "qwen/qwen3-coder:free", list[0].Model)
}

func TestListRespectsLimit(t *testing.T) {
	database := newTestDB(t)
	for i := 0; i < 3; i++ {
		save(t, database, "situation", "answer")
	}

	list, err := database.ListConsultations(2)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestSearchConsultations(t *testing.T) {
	database := newTestDB(t)
	save(t, database, "recently lost my job", "emergency welfare support applies")
	save(t, database, "living alone on a pension", "basic pension applies")

	results, err := database.SearchConsultations("emergency")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "recently lost my job", results[0].Situation)

	results, err = database.SearchConsultations(`pension "OR`)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestClearConsultations(t *testing.T) {
	database := newTestDB(t)
	save(t, database, "living alone", "basic pension applies")

	require.NoError(t, database.ClearConsultations())

	list, err := database.ListConsultations(10)
	require.NoError(t, err)
	assert.Empty(t, list)

	results, err := database.SearchConsultations("pension")
	require.NoError(t, err)
	assert.Empty(t, results)
}
