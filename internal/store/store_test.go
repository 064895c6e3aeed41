// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.CacheConfig{Dir: t.TempDir(), Enabled: true})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRecordSet() *types.RecordSet {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	likes, comments, shares, score := 10.0, 2.0, 1.0, 17.0
	return &types.RecordSet{
		Source: "posts.csv",
		Features: types.Features{
			HasDate: true, HasAuthorType: true, HasContentType: true,
			HasLikes: true, HasComments: true, HasShares: true, HasEngagement: true,
		},
		ExtraColumns: []string{"Platform"},
		Records: []types.Record{
			{
				Index: 0, Date: &date, AuthorType: "Ai", ContentType: "Video",
				Likes: &likes, Comments: &comments, Shares: &shares,
				EngagementScore: &score, Extra: map[string]string{"Platform": "Twitter"},
			},
			{Index: 1, AuthorType: "Human", ContentType: "Blog"},
		},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	s := testStore(t)
	rs := sampleRecordSet()
	mod := time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Store("posts.csv", mod, 512, rs))

	got, ok, err := s.Lookup("posts.csv", mod, 512)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, rs.Features, got.Features)
	assert.Equal(t, rs.ExtraColumns, got.ExtraColumns)
	require.Len(t, got.Records, 2)

	first := got.Records[0]
	require.NotNil(t, first.Date)
	assert.True(t, first.Date.Equal(*rs.Records[0].Date))
	require.NotNil(t, first.EngagementScore)
	assert.Equal(t, 17.0, *first.EngagementScore)
	assert.Equal(t, "Twitter", first.Extra["Platform"])

	second := got.Records[1]
	assert.Nil(t, second.Date)
	assert.Nil(t, second.Likes)
	assert.Nil(t, second.EngagementScore)
}

func TestLookupMissingSource(t *testing.T) {
	s := testStore(t)

	_, ok, err := s.Lookup("unknown.csv", time.Now(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLookupStaleIdentity(t *testing.T) {
	s := testStore(t)
	mod := time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Store("posts.csv", mod, 512, sampleRecordSet()))

	_, ok, err := s.Lookup("posts.csv", mod.Add(time.Second), 512)
	require.NoError(t, err)
	assert.False(t, ok, "changed mod time must invalidate")

	_, ok, err = s.Lookup("posts.csv", mod, 513)
	require.NoError(t, err)
	assert.False(t, ok, "changed size must invalidate")
}

func TestStoreReplacesPreviousEntry(t *testing.T) {
	s := testStore(t)
	mod := time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Store("posts.csv", mod, 512, sampleRecordSet()))

	smaller := &types.RecordSet{
		Source:   "posts.csv",
		Features: types.Features{HasAuthorType: true},
		Records:  []types.Record{{Index: 0, AuthorType: "Human"}},
	}
	newMod := mod.Add(time.Minute)
	require.NoError(t, s.Store("posts.csv", newMod, 600, smaller))

	got, ok, err := s.Lookup("posts.csv", newMod, 600)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, got.Records, 1)
}

func TestListAndClear(t *testing.T) {
	s := testStore(t)
	mod := time.Now()
	require.NoError(t, s.Store("a.csv", mod, 1, sampleRecordSet()))
	require.NoError(t, s.Store("b.csv", mod, 2, sampleRecordSet()))

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.csv", entries[0].Source)
	assert.Equal(t, 2, entries[0].RowCount)

	require.NoError(t, s.Clear())
	entries, err = s.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
