package search

// The response envelope mirrors a generic custom-search API payload so the
// client can treat synthesized pages like any web-search response.

type Result struct {
	Title        string `json:"title"`
	Link         string `json:"link"`
	Snippet      string `json:"snippet"`
	DisplayLink  string `json:"displayLink"`
	FormattedURL string `json:"formattedUrl"`
	HTMLTitle    string `json:"htmlTitle"`
	HTMLSnippet  string `json:"htmlSnippet"`
	CacheID      string `json:"cacheId,omitempty"`
}

type URLInfo struct {
	Type     string `json:"type"`
	Template string `json:"template"`
}

type RequestInfo struct {
	Title          string `json:"title"`
	TotalResults   string `json:"totalResults"`
	SearchTerms    string `json:"searchTerms"`
	Count          int    `json:"count"`
	StartIndex     int    `json:"startIndex"`
	InputEncoding  string `json:"inputEncoding"`
	OutputEncoding string `json:"outputEncoding"`
	Safe           string `json:"safe"`
	CX             string `json:"cx"`
}

type Queries struct {
	Request []RequestInfo `json:"request"`
}

type Context struct {
	Title string `json:"title"`
}

type Information struct {
	SearchTime            float64 `json:"searchTime"`
	FormattedSearchTime   string  `json:"formattedSearchTime"`
	TotalResults          string  `json:"totalResults"`
	FormattedTotalResults string  `json:"formattedTotalResults"`
}

type Response struct {
	Kind              string      `json:"kind"`
	URL               URLInfo     `json:"url"`
	Queries           Queries     `json:"queries"`
	Context           Context     `json:"context"`
	SearchInformation Information `json:"searchInformation"`
	Items             []Result    `json:"items"`
}
