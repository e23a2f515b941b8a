package backend

import (
	"github.com/dugout-app/dugout/pkg/db/models"
	lru "github.com/hashicorp/golang-lru/v2"
)

// cache keeps recently resolved teams in memory. Teams are immutable apart
// from fields this backend never rewrites, so entries are only evicted by
// size.
type cache struct {
	b     *Backend
	teams *lru.Cache[string, models.Team]
}

func newCache(b *Backend, size int) *cache {
	if size <= 0 {
		size = 1
	}
	c := &cache{b: b}
	cache, _ := lru.New[string, models.Team](size)
	c.teams = cache
	return c
}

func (c *cache) Get(id string) (models.Team, bool) {
	return c.teams.Get(id)
}

func (c *cache) Set(id string, t models.Team) {
	c.teams.Add(id, t)
}

func (c *cache) Delete(id string) {
	c.teams.Remove(id)
}

func (c *cache) Len() int {
	return c.teams.Len()
}
