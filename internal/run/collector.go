package run

import (
	"fmt"

	"gravityshift/internal/components"
	"gravityshift/internal/engine"
)

// Collector counts picked-up collectibles toward a target.
type Collector struct {
	target    int
	collected int

	// Reached fires once when the count first hits the target.
	Reached engine.Event
}

func NewCollector(target int) *Collector {
	return &Collector{target: target}
}

func (c *Collector) Count() int  { return c.collected }
func (c *Collector) Target() int { return c.target }

func (c *Collector) Collect() {
	c.collected++
	if c.collected == c.target {
		c.Reached.Invoke()
	}
}

// Track counts every future pickup of collectible.
func (c *Collector) Track(collectible *components.Collectible) engine.ListenerID {
	return collectible.Collected.AddListener(func(*components.Collectible) { c.Collect() })
}

func (c *Collector) String() string {
	return fmt.Sprintf("Collected Cubes: %d / %d", c.collected, c.target)
}
