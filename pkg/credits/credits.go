package credits

import (
	"regexp"
	"strings"
)

var entryPattern = regexp.MustCompile(`^\s*([a-zA-Z0-9 ]+?)\s*(?:<([^>]+)>)?\s*$`)

// Entry is a single contributor credit.
type Entry struct {
	Name  string
	Email string
}

// String returns the entry in its "Name <email>" or "Name" form.
func (e Entry) String() string {
	if e.Email == "" {
		return e.Name
	}

	return e.Name + " <" + e.Email + ">"
}

// Parse extracts an [Entry] from raw. It returns false when raw does not have
// the expected shape, or when the name is empty after trimming.
func Parse(raw string) (Entry, bool) {
	m := entryPattern.FindStringSubmatch(raw)
	if m == nil {
		return Entry{}, false
	}

	name := strings.TrimSpace(m[1])
	if name == "" {
		return Entry{}, false
	}

	return Entry{Name: name, Email: strings.TrimSpace(m[2])}, true
}

// Credits is an insertion-ordered mapping of contributor name to email.
// The zero value is ready to use.
type Credits struct {
	index   map[string]int
	entries []Entry
}

// New returns [Credits] populated from raw credit strings, in order.
func New(raw ...string) *Credits {
	c := &Credits{}
	c.AddAll(raw...)

	return c
}

// Add parses raw and upserts it. A name that is already present keeps its
// position and has its email replaced. Malformed input is ignored and Add
// reports false.
func (c *Credits) Add(raw string) bool {
	e, ok := Parse(raw)
	if !ok {
		return false
	}

	c.Put(e)

	return true
}

// AddAll adds each raw credit string in order.
func (c *Credits) AddAll(raw ...string) {
	for _, r := range raw {
		c.Add(r)
	}
}

// Put upserts an already parsed entry.
func (c *Credits) Put(e Entry) {
	if c.index == nil {
		c.index = map[string]int{}
	}

	if i, ok := c.index[e.Name]; ok {
		c.entries[i].Email = e.Email

		return
	}

	c.index[e.Name] = len(c.entries)
	c.entries = append(c.entries, e)
}

// Email returns the email stored for name.
func (c *Credits) Email(name string) (string, bool) {
	i, ok := c.index[name]
	if !ok {
		return "", false
	}

	return c.entries[i].Email, true
}

// Clear removes all entries.
func (c *Credits) Clear() {
	c.index = nil
	c.entries = nil
}

// Len returns the number of entries.
func (c *Credits) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in insertion order.
func (c *Credits) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)

	return out
}

// Strings flattens the entries into their string forms.
func (c *Credits) Strings() []string {
	out := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.String())
	}

	return out
}

// Clone returns an independent copy.
func (c *Credits) Clone() *Credits {
	out := &Credits{}
	for _, e := range c.entries {
		out.Put(e)
	}

	return out
}
