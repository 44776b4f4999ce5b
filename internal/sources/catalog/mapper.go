package catalog

import (
	"github.com/edusearch/edusearch/internal/logger"
	"github.com/edusearch/edusearch/internal/search"
)

// MapSources converts parsed catalog entries to search sources.
// Entries missing a domain or name are skipped and logged; a missing type
// defaults to "Reference".
func MapSources(file *File, log logger.Logger) []search.Source {
	if file == nil {
		return nil
	}

	sources := make([]search.Source, 0, len(file.Sources))
	for _, entry := range file.Sources {
		if entry.Domain == "" || entry.Name == "" {
			log.Warn("skipping catalog entry with missing domain or name",
				logger.String("domain", entry.Domain),
				logger.String("name", entry.Name))
			continue
		}

		kind := entry.Type
		if kind == "" {
			kind = "Reference"
		}

		sources = append(sources, search.Source{
			Domain: entry.Domain,
			Name:   entry.Name,
			Type:   kind,
		})
	}

	return sources
}
