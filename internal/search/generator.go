// Package search synthesizes search-result pages from a fixed catalog of
// educational sources. Nothing is fetched from a live search API: titles,
// snippets and links are generated deterministically from the query.
package search

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	maxPageSize  = 10
	totalResults = "50000"
)

var whitespace = regexp.MustCompile(`\s+`)

// Options are the pagination and filter parameters of one search request.
// DateRestrict and SiteSearch are accepted for envelope fidelity but do not
// influence the synthesized content.
type Options struct {
	Start        int
	Num          int
	DateRestrict string
	SiteSearch   string
}

// Synthesizer builds result pages from a source catalog.
type Synthesizer struct {
	sources []Source

	// TimeNow feeds cache ids. Overridable in tests.
	TimeNow func() time.Time
}

// New creates a synthesizer over the given catalog. An empty catalog falls
// back to the built-in defaults.
func New(sources []Source) *Synthesizer {
	if len(sources) == 0 {
		sources = DefaultSources()
	}
	return &Synthesizer{sources: sources, TimeNow: time.Now}
}

// Page synthesizes one result page for query. The item list has
// min(opts.Num, 10) entries; sources rotate through the catalog and links
// embed the slugified query plus the absolute result index.
func (s *Synthesizer) Page(query string, opts Options) *Response {
	// Only the upper bound is clamped: num=0 yields an empty item list and
	// start passes through as given, so link indexes always equal start+i.
	count := opts.Num
	if count < 0 {
		count = 0
	}
	if count > maxPageSize {
		count = maxPageSize
	}

	slug := Slugify(query)
	now := s.TimeNow().UnixMilli()

	items := make([]Result, 0, count)
	for i := 0; i < count; i++ {
		source := s.sources[i%len(s.sources)]
		resultIndex := opts.Start + i
		link := fmt.Sprintf("https://%s/%s-%d", source.Domain, slug, resultIndex)
		title := resultTitle(query, source.Name, i)
		snippet := resultSnippet(query, source.Type, i)

		items = append(items, Result{
			Title:        title,
			Link:         link,
			Snippet:      snippet,
			DisplayLink:  source.Domain,
			FormattedURL: link,
			HTMLTitle:    title,
			HTMLSnippet:  snippet,
			CacheID:      fmt.Sprintf("cache_%d_%d", resultIndex, now),
		})
	}

	return &Response{
		Kind: "customsearch#search",
		URL: URLInfo{
			Type:     "application/json",
			Template: "https://www.googleapis.com/customsearch/v1?q={searchTerms}",
		},
		Queries: Queries{
			Request: []RequestInfo{{
				Title:          "EduSearch",
				TotalResults:   totalResults,
				SearchTerms:    query,
				Count:          opts.Num,
				StartIndex:     opts.Start,
				InputEncoding:  "utf8",
				OutputEncoding: "utf8",
				Safe:           "off",
				CX:             "educational_search",
			}},
		},
		Context: Context{Title: "Educational Search"},
		SearchInformation: Information{
			SearchTime:            0.25,
			FormattedSearchTime:   "0.25",
			TotalResults:          totalResults,
			FormattedTotalResults: "50,000",
		},
		Items: items,
	}
}

// Slugify lowercases the query and collapses whitespace runs into dashes,
// producing the path fragment embedded in every generated link.
func Slugify(query string) string {
	return whitespace.ReplaceAllString(strings.ToLower(query), "-")
}

func resultTitle(query, sourceName string, index int) string {
	titles := []string{
		"%s - Complete Guide | %s",
		"Learn %s: Interactive Course | %s",
		"%s Fundamentals and Advanced Topics | %s",
		"Mastering %s: Step-by-Step Tutorial | %s",
		"%s Explained: Theory and Practice | %s",
		"Introduction to %s | %s",
		"%s: Key Concepts and Applications | %s",
		"Understanding %s: Comprehensive Overview | %s",
		"%s for Beginners and Experts | %s",
		"Deep Dive into %s | %s",
	}
	return fmt.Sprintf(titles[index%len(titles)], query, sourceName)
}

func resultSnippet(query, sourceType string, index int) string {
	kind := strings.ToLower(sourceType)
	snippets := []string{
		"Comprehensive %[2]s covering %[1]s. Learn the fundamentals, explore advanced concepts, and apply your knowledge through interactive exercises and real-world examples.",
		"Discover the key principles of %[1]s through engaging %[2]s. Perfect for students, professionals, and anyone looking to expand their knowledge in this field.",
		"Master %[1]s with our structured learning approach. This %[2]s provides clear explanations, practical examples, and hands-on activities to reinforce your understanding.",
		"Explore %[1]s from beginner to advanced levels. Our %[2]s offers comprehensive coverage with expert insights and practical applications.",
		"Learn %[1]s through interactive content designed for effective learning. Includes theory, practice problems, and real-world case studies.",
		"Understand the core concepts of %[1]s with our expertly crafted %[2]s. Suitable for all learning levels with progressive difficulty.",
		"Dive deep into %[1]s with comprehensive materials that cover both theoretical foundations and practical applications in modern contexts.",
		"Educational resource on %[1]s featuring clear explanations, visual aids, and interactive elements to enhance your learning experience.",
		"Study %[1]s with our well-structured curriculum designed by education experts. Includes assessments and progress tracking.",
		"Complete guide to %[1]s with step-by-step instructions, examples, and exercises to help you master this important subject.",
	}
	return fmt.Sprintf(snippets[index%len(snippets)], query, kind)
}
