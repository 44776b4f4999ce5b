package deps

import (
	"time"

	"github.com/edusearch/edusearch/internal/logger"
	"github.com/edusearch/edusearch/internal/search"
	"github.com/edusearch/edusearch/internal/store/memory"
	redisstore "github.com/edusearch/edusearch/internal/store/redis"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	Store       *memory.Store       // record store for users, bookmarks and history
	Search      *search.Synthesizer // result-page generator
	SearchCache *redisstore.Cache   // nil when the Redis cache is disabled

	DefaultUserID int // every request is scoped to this user
	HistoryLimit  int // default page size for history reads
}
