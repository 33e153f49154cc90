package svg2tikz

import (
	"strings"

	"cogentcore.org/core/ordmap"
)

// Options is an ordered set of TikZ options. Keys keep the position of
// their first insertion, so the rendered text is stable.
type Options struct {
	m ordmap.Map[string, string]
}

// NewOptions returns an empty option set.
func NewOptions() *Options {
	return &Options{}
}

// Set adds key=value, replacing the value in place if key exists.
func (o *Options) Set(key, value string) {
	o.m.Add(key, value)
}

// Get returns the value of key.
func (o *Options) Get(key string) (string, bool) {
	if o == nil {
		return "", false
	}
	return o.m.ValueByKeyTry(key)
}

// Delete removes key; it reports whether key was present.
func (o *Options) Delete(key string) bool {
	if o == nil {
		return false
	}
	return o.m.DeleteKey(key)
}

// Keys returns the option names in order.
func (o *Options) Keys() []string {
	if o == nil {
		return nil
	}
	return o.m.Keys()
}

// Len returns the number of options.
func (o *Options) Len() int {
	if o == nil {
		return 0
	}
	return len(o.m.Order)
}

// Clone returns an independent copy.
func (o *Options) Clone() *Options {
	c := NewOptions()
	if o == nil {
		return c
	}
	for _, kv := range o.m.Order {
		c.Set(kv.Key, kv.Value)
	}
	return c
}

// String renders the options as "k=v,k=v".
func (o *Options) String() string {
	if o == nil {
		return ""
	}
	parts := make([]string, 0, len(o.m.Order))
	for _, kv := range o.m.Order {
		parts = append(parts, kv.Key+"="+kv.Value)
	}
	return strings.Join(parts, ",")
}
