// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Record holds one content post after cleaning. Numeric fields are pointers
// so a missing source value stays distinguishable from zero.
type Record struct {
	// Index is the dense 0-based position assigned after deduplication.
	Index int `json:"index" yaml:"index"`

	// Date is the post date, nil when the source value was absent or
	// unparseable.
	Date *time.Time `json:"date" yaml:"date"`

	// AuthorType is the normalized categorical label (e.g. "Ai", "Human").
	AuthorType string `json:"author_type" yaml:"author_type"`

	// ContentType is the content category, passed through unmodified.
	ContentType string `json:"content_type" yaml:"content_type"`

	Likes    *float64 `json:"likes" yaml:"likes"`
	Comments *float64 `json:"comments" yaml:"comments"`
	Shares   *float64 `json:"shares" yaml:"shares"`

	// EngagementScore is likes + 2*comments + 3*shares, recomputed during
	// normalization when all three component columns exist in the source.
	EngagementScore *float64 `json:"engagement_score" yaml:"engagement_score"`

	// Extra holds columns outside the known schema, passed through as text.
	Extra map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Features describes which columns and derived fields exist in a RecordSet.
// Downstream consumers branch on this descriptor instead of re-sniffing
// column presence.
type Features struct {
	HasDate        bool `json:"has_date" yaml:"has_date"`
	HasAuthorType  bool `json:"has_author_type" yaml:"has_author_type"`
	HasContentType bool `json:"has_content_type" yaml:"has_content_type"`
	HasLikes       bool `json:"has_likes" yaml:"has_likes"`
	HasComments    bool `json:"has_comments" yaml:"has_comments"`
	HasShares      bool `json:"has_shares" yaml:"has_shares"`

	// HasEngagement is true when the engagement score was recomputed from
	// its components or carried over from a source column.
	HasEngagement bool `json:"has_engagement" yaml:"has_engagement"`
}

// RecordSet is the cleaned, ordered collection of records. It is built once
// by the pipeline and treated as read-only afterwards; filtering produces
// new derived sets and never mutates the source.
type RecordSet struct {
	// Source identifies where the records came from (usually the CSV path).
	Source string `json:"source" yaml:"source"`

	Features Features `json:"features" yaml:"features"`

	// ExtraColumns lists pass-through column names in source header order.
	ExtraColumns []string `json:"extra_columns,omitempty" yaml:"extra_columns,omitempty"`

	Records []Record `json:"records" yaml:"records"`
}

// Len returns the number of records in the set.
func (rs *RecordSet) Len() int { return len(rs.Records) }

// FilterOptions selects a subset of a RecordSet. A nil bound or empty
// allow-list means no restriction on that field.
type FilterOptions struct {
	// From and To bound the date field inclusively. Records with a null
	// date are excluded whenever either bound is set.
	From *time.Time
	To   *time.Time

	// AuthorTypes and ContentTypes are allow-lists of normalized values.
	AuthorTypes  []string
	ContentTypes []string
}

// IsEmpty reports whether no constraint is set.
func (o FilterOptions) IsEmpty() bool {
	return o.From == nil && o.To == nil && len(o.AuthorTypes) == 0 && len(o.ContentTypes) == 0
}
