package derive

import "sync"

// planCache shares compiled plans across conversions. Only fully compiled
// plan graphs are published; plans under compilation stay private to the
// compiling call, so a concurrent reader can never observe a partial plan.
type planCache struct {
	mux sync.RWMutex
	m   map[planKey]*structPlan
}

// get returns a published plan
func (c *planCache) get(k planKey) (*structPlan, bool) {
	c.mux.RLock()
	defer c.mux.RUnlock()
	plan, ok := c.m[k]
	return plan, ok
}

// publish stores a compiled plan graph
func (c *planCache) publish(pending map[planKey]*structPlan) {
	c.mux.Lock()
	defer c.mux.Unlock()
	for k, plan := range pending {
		c.m[k] = plan
	}
}

func newPlanCache() *planCache {
	return &planCache{m: make(map[planKey]*structPlan)}
}
