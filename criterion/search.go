package criterion

// Entry is the decoded selection of one filter alias.
type Entry struct {
	Alias     string
	Condition Condition
	Values    Values
}

// Search is an ordered alias → Entry map. Order is the order in which
// aliases were first set.
type Search struct {
	entries []Entry
	index   map[string]int
}

// NewSearch returns an empty search.
func NewSearch(entries ...Entry) *Search {
	s := &Search{index: make(map[string]int)}
	for _, e := range entries {
		s.Set(e.Alias, e.Condition, e.Values)
	}
	return s
}

// Set stores the selection for alias. Re-setting an alias replaces its
// selection but keeps its position.
func (s *Search) Set(alias string, cond Condition, values Values) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	e := Entry{Alias: alias, Condition: cond, Values: values}
	if i, ok := s.index[alias]; ok {
		s.entries[i] = e
		return
	}
	s.index[alias] = len(s.entries)
	s.entries = append(s.entries, e)
}

// Get returns the selection for alias.
func (s *Search) Get(alias string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	i, ok := s.index[alias]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Delete removes alias. Removing an absent alias is a no-op.
func (s *Search) Delete(alias string) {
	if s == nil {
		return
	}
	i, ok := s.index[alias]
	if !ok {
		return
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	delete(s.index, alias)
	for j := i; j < len(s.entries); j++ {
		s.index[s.entries[j].Alias] = j
	}
}

// Entries returns the selections in order.
func (s *Search) Entries() []Entry {
	if s == nil {
		return nil
	}
	return s.entries
}

// Aliases returns the selected aliases in order.
func (s *Search) Aliases() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Alias
	}
	return out
}

// Len returns the number of selections.
func (s *Search) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}
