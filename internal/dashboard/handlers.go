// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/internal/pipeline"
	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

// queryDateFormat is the layout for start_date/end_date query parameters.
const queryDateFormat = "2006-01-02"

// ErrorResponse is the JSON body for request errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// filterFromQuery builds FilterOptions from the shared query parameters:
// start_date, end_date (ISO dates), author_type and content_type (repeatable).
func filterFromQuery(c *gin.Context) (types.FilterOptions, error) {
	var opts types.FilterOptions

	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse(queryDateFormat, v)
		if err != nil {
			return opts, fmt.Errorf("invalid start_date %q: want YYYY-MM-DD", v)
		}
		opts.From = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse(queryDateFormat, v)
		if err != nil {
			return opts, fmt.Errorf("invalid end_date %q: want YYYY-MM-DD", v)
		}
		opts.To = &t
	}
	opts.AuthorTypes = c.QueryArray("author_type")
	opts.ContentTypes = c.QueryArray("content_type")
	return opts, nil
}

// filteredSet applies the request's filter to the loaded record set. It
// writes the error response itself when the query is malformed.
func (s *Server) filteredSet(c *gin.Context) (*types.RecordSet, bool) {
	opts, err := filterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return nil, false
	}
	return pipeline.Filter(s.records, opts), true
}

// SummaryResponse holds the KPI row above the charts. Nil values mean the
// underlying column is absent or the selection is empty.
type SummaryResponse struct {
	NoData        bool     `json:"no_data"`
	TotalPosts    int      `json:"total_posts"`
	TotalLikes    *float64 `json:"total_likes"`
	AvgComments   *float64 `json:"avg_comments"`
	TotalShares   *float64 `json:"total_shares"`
	AvgEngagement *float64 `json:"avg_engagement"`
}

func (s *Server) handleSummary(c *gin.Context) {
	rs, ok := s.filteredSet(c)
	if !ok {
		return
	}

	resp := SummaryResponse{NoData: rs.Len() == 0, TotalPosts: rs.Len()}
	if rs.Features.HasLikes {
		resp.TotalLikes = reduce(rs, func(r *types.Record) *float64 { return r.Likes }, false)
	}
	if rs.Features.HasComments {
		resp.AvgComments = reduce(rs, func(r *types.Record) *float64 { return r.Comments }, true)
	}
	if rs.Features.HasShares {
		resp.TotalShares = reduce(rs, func(r *types.Record) *float64 { return r.Shares }, false)
	}
	if rs.Features.HasEngagement {
		resp.AvgEngagement = reduce(rs, func(r *types.Record) *float64 { return r.EngagementScore }, true)
	}
	c.JSON(http.StatusOK, resp)
}

// reduce sums or averages the non-null values of one field; nil when no
// value is present.
func reduce(rs *types.RecordSet, field func(*types.Record) *float64, mean bool) *float64 {
	var sum float64
	var n int
	for i := range rs.Records {
		if v := field(&rs.Records[i]); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	if mean {
		sum /= float64(n)
	}
	return &sum
}

// GroupPoint is one aggregated group in a chart series. Value is null when
// the metric was null for every row of the group.
type GroupPoint struct {
	Key   []string `json:"key"`
	Count int      `json:"count"`
	Value *float64 `json:"value"`
}

// SeriesResponse is the shared shape of the chart endpoints.
type SeriesResponse struct {
	NoData bool         `json:"no_data"`
	Keys   []string     `json:"keys"`
	Metric string       `json:"metric"`
	Fn     string       `json:"fn"`
	Groups []GroupPoint `json:"groups"`
}

func seriesResponse(view *pipeline.GroupedView) SeriesResponse {
	resp := SeriesResponse{
		NoData: len(view.Groups) == 0,
		Keys:   view.Keys,
		Metric: view.Metric,
		Fn:     string(view.Fn),
		Groups: make([]GroupPoint, 0, len(view.Groups)),
	}
	for _, g := range view.Groups {
		p := GroupPoint{Key: g.Key, Count: g.Count}
		if !math.IsNaN(g.Value) {
			v := g.Value
			p.Value = &v
		}
		resp.Groups = append(resp.Groups, p)
	}
	return resp
}

// handleSeries runs one aggregation over the filtered set and writes the
// series response.
func (s *Server) handleSeries(c *gin.Context, keys []string, fn pipeline.ReduceFunc) {
	rs, ok := s.filteredSet(c)
	if !ok {
		return
	}
	view, err := pipeline.Aggregate(rs, keys, types.ColEngagement, fn)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, seriesResponse(view))
}

// handleByAuthor backs the grouped bar chart: mean engagement per author type.
func (s *Server) handleByAuthor(c *gin.Context) {
	s.handleSeries(c, []string{types.ColAuthorType}, pipeline.ReduceMean)
}

// handleTrend backs the time series chart: mean engagement per date per
// author type.
func (s *Server) handleTrend(c *gin.Context) {
	s.handleSeries(c, []string{types.ColDate, types.ColAuthorType}, pipeline.ReduceMean)
}

// handleShare backs the proportion pie chart: total engagement per author type.
func (s *Server) handleShare(c *gin.Context) {
	s.handleSeries(c, []string{types.ColAuthorType}, pipeline.ReduceSum)
}

// DistributionResponse backs the box plot: raw engagement values per content
// type, split by author type.
type DistributionResponse struct {
	NoData bool                 `json:"no_data"`
	Groups []pipeline.DistGroup `json:"groups"`
}

func (s *Server) handleDistribution(c *gin.Context) {
	rs, ok := s.filteredSet(c)
	if !ok {
		return
	}
	groups, err := pipeline.Distribution(rs,
		[]string{types.ColContentType, types.ColAuthorType}, types.ColEngagement)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, DistributionResponse{NoData: len(groups) == 0, Groups: groups})
}
