package history

import (
	"fmt"
	"testing"

	"fraudcheck/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(i int) models.HistoryEntry {
	return models.HistoryEntry{
		Amount:      decimal.NewFromInt(int64(i * 1000)),
		Bank:        fmt.Sprintf("Bank %d", i),
		Category:    "Travel",
		RiskPercent: decimal.NewFromFloat(12.5),
		RiskLevel:   models.RiskLevelLow,
	}
}

type mapSession map[string]interface{}

func (m mapSession) Get(key string) interface{}      { return m[key] }
func (m mapSession) Set(key string, val interface{}) { m[key] = val }
func (m mapSession) Delete(key string)               { delete(m, key) }

func TestLog_PushMostRecentFirst(t *testing.T) {
	l := New()
	l.Push(entry(1))
	l.Push(entry(2))
	l.Push(entry(3))

	got := l.Entries()
	require.Len(t, got, 3)
	assert.Equal(t, "Bank 3", got[0].Bank)
	assert.Equal(t, "Bank 2", got[1].Bank)
	assert.Equal(t, "Bank 1", got[2].Bank)
}

func TestLog_SixthEntryDropsOldest(t *testing.T) {
	l := New()
	for i := 1; i <= 6; i++ {
		l.Push(entry(i))
	}

	got := l.Entries()
	require.Len(t, got, MaxEntries)
	assert.Equal(t, "Bank 6", got[0].Bank)
	assert.Equal(t, "Bank 2", got[4].Bank)
	for _, e := range got {
		assert.NotEqual(t, "Bank 1", e.Bank)
	}
}

func TestLog_NeverExceedsCap(t *testing.T) {
	l := New()
	for i := 0; i < 50; i++ {
		l.Push(entry(i))
		assert.LessOrEqual(t, l.Len(), MaxEntries)
	}
}

func TestNew_Truncates(t *testing.T) {
	l := New(entry(1), entry(2), entry(3), entry(4), entry(5), entry(6), entry(7))
	assert.Equal(t, MaxEntries, l.Len())
	assert.Equal(t, "Bank 1", l.Entries()[0].Bank)
}

func TestLog_EntriesIsCopy(t *testing.T) {
	l := New(entry(1))
	got := l.Entries()
	got[0].Bank = "changed"
	assert.Equal(t, "Bank 1", l.Entries()[0].Bank)
}

func TestStoreAndLoad(t *testing.T) {
	sess := mapSession{}
	l := New()
	l.Push(entry(1))
	l.Push(entry(2))

	require.NoError(t, Store(sess, l))
	assert.IsType(t, "", sess[SessionKey])

	loaded, err := Load(sess)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())
	assert.Equal(t, "Bank 2", loaded.Entries()[0].Bank)
	assert.True(t, decimal.NewFromInt(2000).Equal(loaded.Entries()[0].Amount))
	assert.Equal(t, "12.5", loaded.Entries()[0].RiskPercent.String())
}

func TestLoad_Empty(t *testing.T) {
	l, err := Load(mapSession{})
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
}

func TestLoad_Corrupt(t *testing.T) {
	l, err := Load(mapSession{SessionKey: "{not json"})
	assert.Error(t, err)
	assert.Equal(t, 0, l.Len())

	l, err = Load(mapSession{SessionKey: 42})
	assert.Error(t, err)
	assert.Equal(t, 0, l.Len())
}

func TestClear(t *testing.T) {
	sess := mapSession{}
	require.NoError(t, Store(sess, New(entry(1))))
	Clear(sess)

	l, err := Load(sess)
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
}
