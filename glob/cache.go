package glob

import (
	"sync"

	"github.com/dlclark/regexp2"
	log "github.com/sirupsen/logrus"
)

type cacheKey struct {
	pattern string
	opts    Options
}

// Cache memoizes compiled expressions. It is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*regexp2.Regexp
}

func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]*regexp2.Regexp)}
}

// Compile returns the expression for pattern, compiling it on first use.
func (c *Cache) Compile(pattern string, opts Options) (*regexp2.Regexp, error) {
	key := cacheKey{pattern: pattern, opts: opts}
	c.mu.RLock()
	re, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return re, nil
	}

	compiled := Parse(pattern, opts)
	log.Debugf("Compiled '%s' to %s", pattern, compiled)
	re, err := compiled.Regexp()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok {
		return existing, nil
	}
	c.entries[key] = re
	return re, nil
}

// Match reports whether candidate matches pattern.
func (c *Cache) Match(pattern string, opts Options, candidate string) (bool, error) {
	re, err := c.Compile(pattern, opts)
	if err != nil {
		return false, err
	}
	return re.MatchString(candidate)
}

// Len returns the number of cached expressions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
