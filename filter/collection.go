package filter

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/hugr-lab/searchfilter-go/criterion"
)

// Item is a definition with the alias it is registered under.
type Item struct {
	Alias      string
	Definition Definition
}

// Collection is an ordered alias→Definition registry.
// Not thread-safe: build one per request.
type Collection struct {
	items []Item
	index map[string]int
}

// NewCollection creates a collection and adds items in order.
func NewCollection(items ...Item) (*Collection, error) {
	c := &Collection{index: make(map[string]int)}
	if err := c.AddMany(items...); err != nil {
		return nil, err
	}
	return c, nil
}

// Add registers def under alias and stamps the alias on it.
// Returns *DuplicateAliasError if alias is already present.
func (c *Collection) Add(alias string, def Definition) error {
	if alias == "" {
		return ErrEmptyAlias
	}
	if c.Has(alias) {
		return &DuplicateAliasError{Alias: alias}
	}
	b := def.base()
	if b.alias != "" && b.alias != alias {
		return fmt.Errorf("%w: %s is registered as %s", ErrAliasAssigned, alias, b.alias)
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	b.alias = alias
	c.index[alias] = len(c.items)
	c.items = append(c.items, Item{Alias: alias, Definition: def})
	return nil
}

// AddMany adds items in order, stopping at the first error.
func (c *Collection) AddMany(items ...Item) error {
	for _, it := range items {
		if err := c.Add(it.Alias, it.Definition); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes alias. Removing an absent alias is a no-op.
func (c *Collection) Remove(alias string) {
	i, ok := c.index[alias]
	if !ok {
		return
	}
	c.items[i].Definition.base().alias = ""
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, alias)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].Alias] = j
	}
}

func (c *Collection) Get(alias string) (Definition, bool) {
	i, ok := c.index[alias]
	if !ok {
		return nil, false
	}
	return c.items[i].Definition, true
}

func (c *Collection) Has(alias string) bool {
	_, ok := c.index[alias]
	return ok
}

// Keys returns aliases in insertion order.
func (c *Collection) Keys() []string {
	keys := make([]string, len(c.items))
	for i, it := range c.items {
		keys[i] = it.Alias
	}
	return keys
}

func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// All iterates definitions in insertion order.
func (c *Collection) All() iter.Seq2[string, Definition] {
	return func(yield func(string, Definition) bool) {
		for _, it := range c.items {
			if !yield(it.Alias, it.Definition) {
				return
			}
		}
	}
}

// ViewConfig exports every definition keyed by alias, ordered by label.
// Equal labels keep insertion order.
func (c *Collection) ViewConfig() ViewConfig {
	items := append([]Item(nil), c.items...)
	sort.SliceStable(items, func(i, j int) bool {
		return strings.Compare(items[i].Definition.Label(), items[j].Definition.Label()) < 0
	})
	out := make(ViewConfig, len(items))
	for i, it := range items {
		out[i] = ViewEntry{Alias: it.Alias, Config: it.Definition.ViewConfig()}
	}
	return out
}

// Criteria returns the attached criterion of every definition that has one.
func (c *Collection) Criteria() map[string]criterion.Criterion {
	out := make(map[string]criterion.Criterion, len(c.items))
	for _, it := range c.items {
		if cr := it.Definition.Criterion(); cr != nil {
			out[it.Alias] = cr
		}
	}
	return out
}
