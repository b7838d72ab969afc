package cli

import (
	"fmt"
	"strings"
	"sync"
)

// resultCache memoizes recommendation summaries. The engine is deterministic
// over (options, dataset snapshot) and the snapshot never changes after load,
// so a hit can be returned as-is. Callers must not mutate cached summaries.
type resultCache struct {
	mu      sync.Mutex
	entries map[string]*Summary
}

func cacheKey(opts Options) string {
	return fmt.Sprintf("%s|%s|%d|%s|%s|%s|%s|%s|%t|%t|%t|%t|%s|%s|%d|%t",
		opts.Era, opts.Ruleset, opts.BoxSize, opts.TwoBoxMode, opts.KiteStyle,
		opts.BoxingMode, opts.Focus, opts.Start,
		opts.Ports, opts.RunSpeed, opts.Charm, opts.PetHeavy,
		strings.Join(opts.MustInclude, ","), strings.Join(opts.Exclude, ","),
		opts.Limit, opts.Explain)
}

func (c *resultCache) get(opts Options) (*Summary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	summary, ok := c.entries[cacheKey(opts)]
	return summary, ok
}

func (c *resultCache) put(opts Options, summary *Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[string]*Summary)
	}
	c.entries[cacheKey(opts)] = summary
}
