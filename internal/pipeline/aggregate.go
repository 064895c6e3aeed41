// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

// ReduceFunc selects the reduction applied to a metric within each group.
type ReduceFunc string

const (
	ReduceMean ReduceFunc = "mean"
	ReduceSum  ReduceFunc = "sum"
)

// KeyMonth groups by calendar month of the date column ("2006-01"). The
// other valid group keys are the column names themselves: author_type,
// content_type, and date.
const KeyMonth = "month"

// Group is one distinct combination of group-key values with its reduced
// metric. Value is NaN when the metric is null for every row in the group.
type Group struct {
	Key   []string `json:"key" yaml:"key"`
	Count int      `json:"count" yaml:"count"`
	Value float64  `json:"value" yaml:"value"`
}

// GroupedView is the result of an aggregation: groups sorted by key value.
// Empty groups never appear; rows whose group key is null are skipped.
type GroupedView struct {
	Keys   []string   `json:"keys" yaml:"keys"`
	Metric string     `json:"metric" yaml:"metric"`
	Fn     ReduceFunc `json:"fn" yaml:"fn"`
	Groups []Group    `json:"groups" yaml:"groups"`
}

// Value looks up the reduced metric for an exact key combination.
func (v *GroupedView) Value(key ...string) (float64, bool) {
	for _, g := range v.Groups {
		if equalKey(g.Key, key) {
			return g.Value, true
		}
	}
	return 0, false
}

func equalKey(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Aggregate groups rs by one or two keys and reduces the named metric with
// fn. It returns an error for an unknown key or metric, or when the
// required column is absent from the record set's features.
func Aggregate(rs *types.RecordSet, keys []string, metric string, fn ReduceFunc) (*GroupedView, error) {
	if len(keys) == 0 || len(keys) > 2 {
		return nil, fmt.Errorf("aggregate requires one or two group keys, got %d", len(keys))
	}
	if fn != ReduceMean && fn != ReduceSum {
		return nil, fmt.Errorf("unknown reduce function %q", fn)
	}

	keyFns := make([]keyFunc, len(keys))
	for i, k := range keys {
		f, err := keyAccessor(rs, k)
		if err != nil {
			return nil, err
		}
		keyFns[i] = f
	}
	metricFn, err := metricAccessor(rs, metric)
	if err != nil {
		return nil, err
	}

	type acc struct {
		key   []string
		count int
		n     int
		sum   float64
	}
	accs := make(map[string]*acc)

	for i := range rs.Records {
		r := &rs.Records[i]
		parts := make([]string, len(keyFns))
		skip := false
		for j, f := range keyFns {
			v, ok := f(r)
			if !ok {
				skip = true
				break
			}
			parts[j] = v
		}
		if skip {
			continue
		}

		id := strings.Join(parts, "\x1f")
		a := accs[id]
		if a == nil {
			a = &acc{key: parts}
			accs[id] = a
		}
		a.count++
		if m := metricFn(r); m != nil {
			a.n++
			a.sum += *m
		}
	}

	view := &GroupedView{Keys: keys, Metric: metric, Fn: fn}
	for _, a := range accs {
		g := Group{Key: a.key, Count: a.count}
		switch {
		case a.n == 0:
			g.Value = math.NaN()
		case fn == ReduceMean:
			g.Value = a.sum / float64(a.n)
		default:
			g.Value = a.sum
		}
		view.Groups = append(view.Groups, g)
	}

	sort.Slice(view.Groups, func(i, j int) bool {
		return strings.Join(view.Groups[i].Key, "\x1f") < strings.Join(view.Groups[j].Key, "\x1f")
	})

	return view, nil
}

// DistGroup holds the raw metric values for one group, for distribution
// views such as box plots.
type DistGroup struct {
	Key    []string  `json:"key" yaml:"key"`
	Values []float64 `json:"values" yaml:"values"`
}

// Distribution collects the non-null metric values per group, sorted by
// group key. Groups with no non-null values are omitted.
func Distribution(rs *types.RecordSet, keys []string, metric string) ([]DistGroup, error) {
	if len(keys) == 0 || len(keys) > 2 {
		return nil, fmt.Errorf("distribution requires one or two group keys, got %d", len(keys))
	}

	keyFns := make([]keyFunc, len(keys))
	for i, k := range keys {
		f, err := keyAccessor(rs, k)
		if err != nil {
			return nil, err
		}
		keyFns[i] = f
	}
	metricFn, err := metricAccessor(rs, metric)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*DistGroup)
	for i := range rs.Records {
		r := &rs.Records[i]
		parts := make([]string, len(keyFns))
		skip := false
		for j, f := range keyFns {
			v, ok := f(r)
			if !ok {
				skip = true
				break
			}
			parts[j] = v
		}
		if skip {
			continue
		}
		m := metricFn(r)
		if m == nil {
			continue
		}
		id := strings.Join(parts, "\x1f")
		g := groups[id]
		if g == nil {
			g = &DistGroup{Key: parts}
			groups[id] = g
		}
		g.Values = append(g.Values, *m)
	}

	out := make([]DistGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Join(out[i].Key, "\x1f") < strings.Join(out[j].Key, "\x1f")
	})
	return out, nil
}

type keyFunc func(*types.Record) (string, bool)

func keyAccessor(rs *types.RecordSet, key string) (keyFunc, error) {
	switch types.CanonicalColumn(key) {
	case types.ColAuthorType:
		if !rs.Features.HasAuthorType {
			return nil, fmt.Errorf("record set has no %s column", types.ColAuthorType)
		}
		return func(r *types.Record) (string, bool) { return r.AuthorType, true }, nil
	case types.ColContentType:
		if !rs.Features.HasContentType {
			return nil, fmt.Errorf("record set has no %s column", types.ColContentType)
		}
		return func(r *types.Record) (string, bool) { return r.ContentType, true }, nil
	case types.ColDate:
		if !rs.Features.HasDate {
			return nil, fmt.Errorf("record set has no %s column", types.ColDate)
		}
		return func(r *types.Record) (string, bool) {
			if r.Date == nil {
				return "", false
			}
			return r.Date.Format("2006-01-02"), true
		}, nil
	case KeyMonth:
		if !rs.Features.HasDate {
			return nil, fmt.Errorf("record set has no %s column", types.ColDate)
		}
		return func(r *types.Record) (string, bool) {
			if r.Date == nil {
				return "", false
			}
			return r.Date.Format("2006-01"), true
		}, nil
	}
	return nil, fmt.Errorf("unknown group key %q", key)
}

func metricAccessor(rs *types.RecordSet, metric string) (func(*types.Record) *float64, error) {
	switch types.CanonicalColumn(metric) {
	case types.ColLikes:
		if !rs.Features.HasLikes {
			return nil, fmt.Errorf("record set has no %s column", types.ColLikes)
		}
		return func(r *types.Record) *float64 { return r.Likes }, nil
	case types.ColComments:
		if !rs.Features.HasComments {
			return nil, fmt.Errorf("record set has no %s column", types.ColComments)
		}
		return func(r *types.Record) *float64 { return r.Comments }, nil
	case types.ColShares:
		if !rs.Features.HasShares {
			return nil, fmt.Errorf("record set has no %s column", types.ColShares)
		}
		return func(r *types.Record) *float64 { return r.Shares }, nil
	case types.ColEngagement:
		if !rs.Features.HasEngagement {
			return nil, fmt.Errorf("record set has no %s column", types.ColEngagement)
		}
		return func(r *types.Record) *float64 { return r.EngagementScore }, nil
	}
	return nil, fmt.Errorf("unknown metric %q", metric)
}
