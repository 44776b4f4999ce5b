package search

import (
	"strings"
	"testing"
	"time"
)

func testSynthesizer() *Synthesizer {
	s := New(nil)
	s.TimeNow = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

func TestPageItemCount(t *testing.T) {
	s := testSynthesizer()

	tests := []struct {
		name string
		num  int
		want int
	}{
		{name: "default page", num: 10, want: 10},
		{name: "small page", num: 3, want: 3},
		{name: "capped at ten", num: 25, want: 10},
		{name: "zero yields empty page", num: 0, want: 0},
		{name: "negative yields empty page", num: -3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := s.Page("Quantum", Options{Start: 1, Num: tt.num})
			if len(page.Items) != tt.want {
				t.Errorf("Page() returned %v items, want %v", len(page.Items), tt.want)
			}
		})
	}
}

func TestPageLinksEmbedSlug(t *testing.T) {
	s := testSynthesizer()

	page := s.Page("Quantum Physics", Options{Start: 1, Num: 10})
	for i, item := range page.Items {
		if !strings.Contains(item.Link, "quantum-physics") {
			t.Errorf("item %v link %q does not embed slug", i, item.Link)
		}
		if item.FormattedURL != item.Link {
			t.Errorf("item %v formattedUrl %q != link %q", i, item.FormattedURL, item.Link)
		}
	}

	// Links carry the absolute result index, offset by start.
	page2 := s.Page("Quantum Physics", Options{Start: 11, Num: 1})
	if !strings.HasSuffix(page2.Items[0].Link, "-11") {
		t.Errorf("link %q should end with result index 11", page2.Items[0].Link)
	}

	// Start is not coerced: a zero offset shows up in the links as-is.
	page3 := s.Page("Quantum Physics", Options{Start: 0, Num: 1})
	if !strings.HasSuffix(page3.Items[0].Link, "-0") {
		t.Errorf("link %q should end with result index 0", page3.Items[0].Link)
	}
}

func TestPageDisplayLinksFromCatalog(t *testing.T) {
	s := testSynthesizer()

	domains := make(map[string]bool)
	for _, src := range DefaultSources() {
		domains[src.Domain] = true
	}

	page := s.Page("Quantum", Options{Start: 1, Num: 10})
	for i, item := range page.Items {
		if !domains[item.DisplayLink] {
			t.Errorf("item %v displayLink %q not in source catalog", i, item.DisplayLink)
		}
	}
}

func TestPageSourcesRotate(t *testing.T) {
	sources := []Source{
		{Domain: "a.org", Name: "A", Type: "Reference"},
		{Domain: "b.org", Name: "B", Type: "Reference"},
	}
	s := New(sources)

	page := s.Page("topic", Options{Start: 1, Num: 4})
	want := []string{"a.org", "b.org", "a.org", "b.org"}
	for i, item := range page.Items {
		if item.DisplayLink != want[i] {
			t.Errorf("item %v displayLink = %v, want %v", i, item.DisplayLink, want[i])
		}
	}
}

func TestPageEnvelope(t *testing.T) {
	s := testSynthesizer()

	page := s.Page("algebra", Options{Start: 1, Num: 5})

	if page.Kind != "customsearch#search" {
		t.Errorf("Kind = %v", page.Kind)
	}
	if len(page.Queries.Request) != 1 {
		t.Fatalf("Queries.Request has %v entries, want 1", len(page.Queries.Request))
	}
	req := page.Queries.Request[0]
	if req.SearchTerms != "algebra" {
		t.Errorf("SearchTerms = %v, want algebra", req.SearchTerms)
	}
	if req.Count != 5 || req.StartIndex != 1 {
		t.Errorf("Count/StartIndex = %v/%v, want 5/1", req.Count, req.StartIndex)
	}
	if page.SearchInformation.TotalResults != "50000" {
		t.Errorf("TotalResults = %v, want 50000", page.SearchInformation.TotalResults)
	}
	if page.SearchInformation.FormattedTotalResults != "50,000" {
		t.Errorf("FormattedTotalResults = %v", page.SearchInformation.FormattedTotalResults)
	}
}

func TestPageTitlesMentionQueryAndSource(t *testing.T) {
	s := testSynthesizer()

	page := s.Page("Calculus", Options{Start: 1, Num: 10})
	for i, item := range page.Items {
		if !strings.Contains(item.Title, "Calculus") {
			t.Errorf("item %v title %q does not mention query", i, item.Title)
		}
		if item.HTMLTitle != item.Title {
			t.Errorf("item %v htmlTitle diverges from title", i)
		}
		if item.Snippet == "" {
			t.Errorf("item %v has empty snippet", i)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Quantum", "quantum"},
		{"Quantum Physics", "quantum-physics"},
		{"  spaced   out  ", "-spaced-out-"},
		{"MiXeD Case", "mixed-case"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
