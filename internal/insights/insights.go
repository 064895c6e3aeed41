// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package insights computes the aggregate figures behind the narrative
// report and the dashboard summary: post counts and mean engagement per
// author type, the content-type performance matrix, top content types, and
// the monthly engagement trend.
package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/internal/pipeline"
	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

// Normalized author-type labels for the two cohorts the report compares.
const (
	AuthorAI    = "Ai"
	AuthorHuman = "Human"
)

const topContentLimit = 3

// AuthorStats holds per-cohort means. A nil mean marks a metric whose
// column is absent from the source or whose values are all null.
type AuthorStats struct {
	Posts         int      `json:"posts" yaml:"posts"`
	AvgEngagement *float64 `json:"avg_engagement" yaml:"avg_engagement"`
	AvgLikes      *float64 `json:"avg_likes" yaml:"avg_likes"`
	AvgComments   *float64 `json:"avg_comments" yaml:"avg_comments"`
	AvgShares     *float64 `json:"avg_shares" yaml:"avg_shares"`
}

// ContentScore is a content type with its overall mean engagement.
type ContentScore struct {
	ContentType   string  `json:"content_type" yaml:"content_type"`
	AvgEngagement float64 `json:"avg_engagement" yaml:"avg_engagement"`
}

// ContentPerformance is one row of the content type × author type matrix.
type ContentPerformance struct {
	ContentType string   `json:"content_type" yaml:"content_type"`
	AI          *float64 `json:"ai" yaml:"ai"`
	Human       *float64 `json:"human" yaml:"human"`
}

// TrendPoint is the mean engagement for both cohorts in one calendar month.
type TrendPoint struct {
	Month string   `json:"month" yaml:"month"`
	AI    *float64 `json:"ai" yaml:"ai"`
	Human *float64 `json:"human" yaml:"human"`
}

// Insights is the full set of derived figures for one record set.
type Insights struct {
	TotalPosts int         `json:"total_posts" yaml:"total_posts"`
	AI         AuthorStats `json:"ai" yaml:"ai"`
	Human      AuthorStats `json:"human" yaml:"human"`

	ContentPerformance []ContentPerformance `json:"content_performance,omitempty" yaml:"content_performance,omitempty"`
	TopContentTypes    []ContentScore       `json:"top_content_types,omitempty" yaml:"top_content_types,omitempty"`
	MonthlyTrend       []TrendPoint         `json:"monthly_trend,omitempty" yaml:"monthly_trend,omitempty"`

	DateMin *time.Time `json:"date_min,omitempty" yaml:"date_min,omitempty"`
	DateMax *time.Time `json:"date_max,omitempty" yaml:"date_max,omitempty"`
}

// Compute derives the full insight set from a cleaned record set. The
// author type and engagement score columns are required; every other
// section degrades to absent when its column is missing.
func Compute(rs *types.RecordSet) (*Insights, error) {
	if !rs.Features.HasAuthorType {
		return nil, fmt.Errorf("insights require an author_type column")
	}
	if !rs.Features.HasEngagement {
		return nil, fmt.Errorf("insights require an engagement_score column")
	}

	ins := &Insights{TotalPosts: rs.Len()}

	for _, r := range rs.Records {
		switch r.AuthorType {
		case AuthorAI:
			ins.AI.Posts++
		case AuthorHuman:
			ins.Human.Posts++
		}
		if rs.Features.HasDate && r.Date != nil {
			if ins.DateMin == nil || r.Date.Before(*ins.DateMin) {
				d := *r.Date
				ins.DateMin = &d
			}
			if ins.DateMax == nil || r.Date.After(*ins.DateMax) {
				d := *r.Date
				ins.DateMax = &d
			}
		}
	}

	ins.AI.AvgEngagement = authorMean(rs, AuthorAI, types.ColEngagement)
	ins.Human.AvgEngagement = authorMean(rs, AuthorHuman, types.ColEngagement)
	if rs.Features.HasLikes {
		ins.AI.AvgLikes = authorMean(rs, AuthorAI, types.ColLikes)
		ins.Human.AvgLikes = authorMean(rs, AuthorHuman, types.ColLikes)
	}
	if rs.Features.HasComments {
		ins.AI.AvgComments = authorMean(rs, AuthorAI, types.ColComments)
		ins.Human.AvgComments = authorMean(rs, AuthorHuman, types.ColComments)
	}
	if rs.Features.HasShares {
		ins.AI.AvgShares = authorMean(rs, AuthorAI, types.ColShares)
		ins.Human.AvgShares = authorMean(rs, AuthorHuman, types.ColShares)
	}

	if rs.Features.HasContentType {
		ins.ContentPerformance = contentPerformance(rs)
		ins.TopContentTypes = topContentTypes(rs)
	}
	if rs.Features.HasDate {
		ins.MonthlyTrend = monthlyTrend(rs)
	}

	return ins, nil
}

// authorMean returns the mean of metric over one author cohort, or nil when
// the cohort is empty or the metric is all null there.
func authorMean(rs *types.RecordSet, author, metric string) *float64 {
	view, err := pipeline.Aggregate(rs, []string{types.ColAuthorType}, metric, pipeline.ReduceMean)
	if err != nil {
		return nil
	}
	v, ok := view.Value(author)
	if !ok || math.IsNaN(v) {
		return nil
	}
	return &v
}

func contentPerformance(rs *types.RecordSet) []ContentPerformance {
	view, err := pipeline.Aggregate(rs,
		[]string{types.ColContentType, types.ColAuthorType},
		types.ColEngagement, pipeline.ReduceMean)
	if err != nil {
		return nil
	}

	byContent := make(map[string]*ContentPerformance)
	var order []string
	for _, g := range view.Groups {
		content, author := g.Key[0], g.Key[1]
		row := byContent[content]
		if row == nil {
			row = &ContentPerformance{ContentType: content}
			byContent[content] = row
			order = append(order, content)
		}
		if math.IsNaN(g.Value) {
			continue
		}
		v := g.Value
		switch author {
		case AuthorAI:
			row.AI = &v
		case AuthorHuman:
			row.Human = &v
		}
	}

	out := make([]ContentPerformance, 0, len(order))
	for _, c := range order {
		out = append(out, *byContent[c])
	}
	return out
}

func topContentTypes(rs *types.RecordSet) []ContentScore {
	view, err := pipeline.Aggregate(rs,
		[]string{types.ColContentType}, types.ColEngagement, pipeline.ReduceMean)
	if err != nil {
		return nil
	}

	var scores []ContentScore
	for _, g := range view.Groups {
		if math.IsNaN(g.Value) {
			continue
		}
		scores = append(scores, ContentScore{ContentType: g.Key[0], AvgEngagement: g.Value})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].AvgEngagement != scores[j].AvgEngagement {
			return scores[i].AvgEngagement > scores[j].AvgEngagement
		}
		return scores[i].ContentType < scores[j].ContentType
	})
	if len(scores) > topContentLimit {
		scores = scores[:topContentLimit]
	}
	return scores
}

func monthlyTrend(rs *types.RecordSet) []TrendPoint {
	view, err := pipeline.Aggregate(rs,
		[]string{pipeline.KeyMonth, types.ColAuthorType},
		types.ColEngagement, pipeline.ReduceMean)
	if err != nil {
		return nil
	}

	byMonth := make(map[string]*TrendPoint)
	var order []string
	for _, g := range view.Groups {
		month, author := g.Key[0], g.Key[1]
		p := byMonth[month]
		if p == nil {
			p = &TrendPoint{Month: month}
			byMonth[month] = p
			order = append(order, month)
		}
		if math.IsNaN(g.Value) {
			continue
		}
		v := g.Value
		switch author {
		case AuthorAI:
			p.AI = &v
		case AuthorHuman:
			p.Human = &v
		}
	}

	out := make([]TrendPoint, 0, len(order))
	for _, m := range order {
		out = append(out, *byMonth[m])
	}
	return out
}
