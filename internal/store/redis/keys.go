package redis

import "fmt"

const keyPrefix = "edusearch"

// SearchPageKey builds the cache key for one synthesized result page.
// Pages differ only by slug and pagination, so those are the whole key.
func SearchPageKey(slug string, start, num int) string {
	return fmt.Sprintf("%s:search:%s:%d:%d", keyPrefix, slug, start, num)
}
