// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

// Filter returns the sub-sequence of rs matching opts, preserving relative
// order and original record indexes. An unset bound or empty allow-list
// places no restriction on its field, so Filter with zero options returns a
// row-for-row copy of the input. The input set is never mutated.
//
// When a date bound is set, records with a null date are excluded: an
// unparseable date cannot be shown to lie inside any interval.
func Filter(rs *types.RecordSet, opts types.FilterOptions) *types.RecordSet {
	out := &types.RecordSet{
		Source:       rs.Source,
		Features:     rs.Features,
		ExtraColumns: rs.ExtraColumns,
	}

	authors := allowSet(opts.AuthorTypes)
	contents := allowSet(opts.ContentTypes)

	for _, r := range rs.Records {
		if opts.From != nil || opts.To != nil {
			if r.Date == nil {
				continue
			}
			if opts.From != nil && r.Date.Before(*opts.From) {
				continue
			}
			if opts.To != nil && r.Date.After(*opts.To) {
				continue
			}
		}
		if authors != nil && !authors[r.AuthorType] {
			continue
		}
		if contents != nil && !contents[r.ContentType] {
			continue
		}
		out.Records = append(out.Records, r)
	}

	return out
}

// allowSet converts an allow-list to a lookup set; nil means unrestricted.
func allowSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}
