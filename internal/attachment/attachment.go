// Package attachment contains the pure presentation-layer core for exam file
// attachments: extension classification, parsing of the backend's
// comma-delimited file_url field, category summaries and preview planning.
// Nothing here performs I/O; callers project the results into views.
package attachment

import "strings"

// Ref is a single attachment reference. The backend identifies attachments
// only by URL; file name and extension are derived.
type Ref struct {
	URL string `json:"url"`
}

// FileName returns the last path segment of the URL.
func (r Ref) FileName() string {
	if i := strings.LastIndex(r.URL, "/"); i >= 0 {
		return r.URL[i+1:]
	}
	return r.URL
}

// Extension returns the lowercased suffix after the last dot of the file
// name, or "" when the name has no extension.
func (r Ref) Extension() string {
	name := r.FileName()
	i := strings.LastIndex(name, ".")
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// Category classifies the reference by its extension.
func (r Ref) Category() Category {
	return Classify(r.Extension())
}

// Set is an ordered sequence of attachment references. Order follows the
// source string; duplicates are kept.
type Set []Ref

// Parse splits the backend's comma-delimited attachment string into a Set.
// Entries are trimmed and empty entries discarded. A blank or all-whitespace
// input yields an empty set, not an error. This is the only place the
// delimiter format is interpreted; everything downstream operates on the Set.
func Parse(raw string) Set {
	if strings.TrimSpace(raw) == "" {
		return Set{}
	}
	parts := strings.Split(raw, ",")
	set := make(Set, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		set = append(set, Ref{URL: p})
	}
	return set
}

// Join serializes the set back into the backend's delimiter format. Used
// only at the backend boundary.
func Join(set Set) string {
	urls := make([]string, len(set))
	for i, ref := range set {
		urls[i] = ref.URL
	}
	return strings.Join(urls, ",")
}

// Counts maps each document category to the number of attachments in it.
// Every category is present, so the zero state renders as all-zero badges.
type Counts map[Category]int

// Summarize tallies the set per category. The sum of counts always equals
// len(set).
func Summarize(set Set) Counts {
	counts := make(Counts, len(Categories))
	for _, c := range Categories {
		counts[c] = 0
	}
	for _, ref := range set {
		counts[ref.Category()]++
	}
	return counts
}

// Total returns the sum of all category counts.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}
