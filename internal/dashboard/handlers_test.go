// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/internal/pipeline"
	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	raw := &types.RawTable{
		Source:  "test.csv",
		Columns: []string{"Date", "Author_Type", "Content_Type", "Likes", "Comments", "Shares"},
		Rows: [][]string{
			{"01-01-2024", "ai", "Blog", "10", "2", "1"},   // engagement 17
			{"02-01-2024", "ai", "Video", "20", "0", "1"},  // engagement 23
			{"03-01-2024", "human", "Blog", "5", "0", "0"}, // engagement 5
		},
	}
	rs := pipeline.Normalize(raw, "")
	return New(rs, types.DashboardConfig{LogLevel: "error"})
}

// get performs a request against the test server and decodes the JSON body.
func get(t *testing.T, s *Server, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func TestHealth(t *testing.T) {
	s := testServer(t)
	var body map[string]any
	w := get(t, s, "/healthz", &body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 3, body["posts"])
}

func TestIndexPage(t *testing.T) {
	s := testServer(t)
	w := get(t, s, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "AI vs Human Content Dashboard")
}

func TestSummary(t *testing.T) {
	s := testServer(t)
	var resp SummaryResponse
	w := get(t, s, "/api/v1/summary", &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, resp.NoData)
	assert.Equal(t, 3, resp.TotalPosts)
	require.NotNil(t, resp.TotalLikes)
	assert.Equal(t, 35.0, *resp.TotalLikes)
	require.NotNil(t, resp.AvgEngagement)
	assert.Equal(t, 15.0, *resp.AvgEngagement)
}

func TestSummaryFiltered(t *testing.T) {
	s := testServer(t)
	var resp SummaryResponse
	get(t, s, "/api/v1/summary?author_type=Ai", &resp)

	assert.Equal(t, 2, resp.TotalPosts)
	require.NotNil(t, resp.AvgEngagement)
	assert.Equal(t, 20.0, *resp.AvgEngagement)
}

func TestSummaryDateRange(t *testing.T) {
	s := testServer(t)
	var resp SummaryResponse
	get(t, s, "/api/v1/summary?start_date=2024-01-02&end_date=2024-01-03", &resp)

	assert.Equal(t, 2, resp.TotalPosts)
}

func TestSummaryNoData(t *testing.T) {
	s := testServer(t)
	var resp SummaryResponse
	w := get(t, s, "/api/v1/summary?author_type=Alien", &resp)

	// Empty selection is a normal response, not an error.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.NoData)
	assert.Equal(t, 0, resp.TotalPosts)
	assert.Nil(t, resp.AvgEngagement)
}

func TestBadDateParameter(t *testing.T) {
	s := testServer(t)
	var resp ErrorResponse
	w := get(t, s, "/api/v1/summary?start_date=01-01-2024", &resp)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Error, "start_date")
}

func TestByAuthor(t *testing.T) {
	s := testServer(t)
	var resp SeriesResponse
	w := get(t, s, "/api/v1/engagement/by-author", &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mean", resp.Fn)
	require.Len(t, resp.Groups, 2)
	assert.Equal(t, []string{"Ai"}, resp.Groups[0].Key)
	require.NotNil(t, resp.Groups[0].Value)
	assert.Equal(t, 20.0, *resp.Groups[0].Value)
	require.NotNil(t, resp.Groups[1].Value)
	assert.Equal(t, 5.0, *resp.Groups[1].Value)
}

func TestShareIsSum(t *testing.T) {
	s := testServer(t)
	var resp SeriesResponse
	get(t, s, "/api/v1/engagement/share", &resp)

	assert.Equal(t, "sum", resp.Fn)
	require.Len(t, resp.Groups, 2)
	require.NotNil(t, resp.Groups[0].Value)
	assert.Equal(t, 40.0, *resp.Groups[0].Value)
}

func TestTrendKeys(t *testing.T) {
	s := testServer(t)
	var resp SeriesResponse
	get(t, s, "/api/v1/engagement/trend", &resp)

	require.Len(t, resp.Groups, 3)
	assert.Equal(t, []string{"2024-01-01", "Ai"}, resp.Groups[0].Key)
}

func TestTrendFilteredGroupAbsent(t *testing.T) {
	s := testServer(t)
	var resp SeriesResponse
	get(t, s, "/api/v1/engagement/trend?author_type=Human", &resp)

	require.Len(t, resp.Groups, 1)
	assert.Equal(t, []string{"2024-01-03", "Human"}, resp.Groups[0].Key)
}

func TestDistribution(t *testing.T) {
	s := testServer(t)
	var resp DistributionResponse
	w := get(t, s, "/api/v1/engagement/distribution", &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp.Groups, 3)
	assert.Equal(t, []string{"Blog", "Ai"}, resp.Groups[0].Key)
	assert.Equal(t, []float64{17}, resp.Groups[0].Values)
}

func TestSeriesNoData(t *testing.T) {
	s := testServer(t)
	var resp SeriesResponse
	w := get(t, s, "/api/v1/engagement/by-author?content_type=Podcast", &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.NoData)
	assert.Empty(t, resp.Groups)
}
