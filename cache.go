package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// identityCache keeps, per rule list, at most one live handle per
// currently-populated index, so that repeated observation of the same slot
// yields the same handle identity. Slots are populated lazily; the slice
// grows only as far as the highest index ever materialized.
//
// onInsert and onRemove are the only operations that change stored handle
// indices. The owning rule list calls them exactly once per structural
// mutation, paired with the matching sequence mutation, before any caller
// regains control.
type identityCache struct {
	slots []*Rule
}

// at returns the cached handle for index i, or nil.
func (c *identityCache) at(i int) *Rule {
	if i < 0 || i >= len(c.slots) {
		return nil
	}
	return c.slots[i]
}

// put stores a handle for index i, growing the slot table as needed.
func (c *identityCache) put(i int, r *Rule) {
	for len(c.slots) <= i {
		c.slots = append(c.slots, nil)
	}
	c.slots[i] = r
}

// onInsert shifts every cached handle with index ≥ i up by one and opens
// an empty slot at i. No handle is created or destroyed.
func (c *identityCache) onInsert(i int) {
	if i < 0 || i > len(c.slots) {
		return // nothing materialized that far
	}
	for j := i; j < len(c.slots); j++ {
		if c.slots[j] != nil {
			c.slots[j].index++
		}
	}
	if i < len(c.slots) {
		c.slots = append(c.slots, nil)
		copy(c.slots[i+1:], c.slots[i:])
		c.slots[i] = nil
	}
}

// onRemove drops slot i from the bookkeeping and shifts every cached
// handle with index > i down by one. The caller is responsible for
// disconnecting the handle at i beforehand.
func (c *identityCache) onRemove(i int) {
	if i < 0 || i >= len(c.slots) {
		return
	}
	for j := i + 1; j < len(c.slots); j++ {
		if c.slots[j] != nil {
			c.slots[j].index--
		}
	}
	c.slots = append(c.slots[:i], c.slots[i+1:]...)
}

// each calls f for every materialized handle.
func (c *identityCache) each(f func(*Rule)) {
	for _, r := range c.slots {
		if r != nil {
			f(r)
		}
	}
}

// reset forgets all slots. Handles already handed out live on
// independently.
func (c *identityCache) reset() {
	c.slots = nil
}
