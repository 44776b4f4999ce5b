package search

// Source is one entry of the educational source catalog. Every synthesized
// result is attributed to a source; no live search API is involved.
type Source struct {
	Domain string // e.g. "khan-academy.org"
	Name   string // e.g. "Khan Academy"
	Type   string // e.g. "Interactive Learning"
}

// DefaultSources is the built-in catalog, used when no catalog file is
// configured.
func DefaultSources() []Source {
	return []Source{
		{Domain: "khan-academy.org", Name: "Khan Academy", Type: "Interactive Learning"},
		{Domain: "coursera.org", Name: "Coursera", Type: "Online Courses"},
		{Domain: "edx.org", Name: "edX", Type: "University Courses"},
		{Domain: "wikipedia.org", Name: "Wikipedia", Type: "Reference"},
		{Domain: "youtube.com", Name: "Educational Videos", Type: "Video Content"},
		{Domain: "mit.edu", Name: "MIT OpenCourseWare", Type: "Academic"},
		{Domain: "stanford.edu", Name: "Stanford Online", Type: "Academic"},
		{Domain: "khanacademy.org", Name: "Khan Academy Labs", Type: "Interactive"},
		{Domain: "brilliant.org", Name: "Brilliant", Type: "Interactive Learning"},
		{Domain: "codecademy.com", Name: "Codecademy", Type: "Programming"},
	}
}
