package dhcpv6

import (
	"sort"

	"github.com/athena-dhcpd/dhcpwire/pkg/wire"
)

// Options is the ordered, multi-valued container DHCPv6 options live in.
// Unlike DHCPv4, option codes MAY legitimately repeat (multiple IA_NA
// entries, for instance), so this holds a sorted sequence of entries
// rather than a single value per code (spec.md §3 "v6 DhcpOptions").
type Options struct {
	entries []Option
}

// NewOptions returns an empty options container.
func NewOptions() *Options {
	return &Options{}
}

// Insert appends opt, keeping entries in ascending code order. Unlike the
// v4 container this does not replace same-code entries.
func (o *Options) Insert(opt Option) {
	i := sort.Search(len(o.entries), func(i int) bool { return o.entries[i].Code() > opt.Code() })
	o.entries = append(o.entries, nil)
	copy(o.entries[i+1:], o.entries[i:])
	o.entries[i] = opt
}

// Get returns the first stored option with the given code, if any.
func (o *Options) Get(code OptionCode) (Option, bool) {
	for _, opt := range o.entries {
		if opt.Code() == code {
			return opt, true
		}
	}
	return nil, false
}

// GetAll returns every stored option with the given code, in insertion
// order among themselves.
func (o *Options) GetAll(code OptionCode) []Option {
	var out []Option
	for _, opt := range o.entries {
		if opt.Code() == code {
			out = append(out, opt)
		}
	}
	return out
}

// Has reports whether at least one entry with code is present.
func (o *Options) Has(code OptionCode) bool {
	_, ok := o.Get(code)
	return ok
}

// Remove deletes every entry with the given code.
func (o *Options) Remove(code OptionCode) {
	o.Retain(func(opt Option) bool { return opt.Code() != code })
}

// Len returns the total number of entries, counting repeats.
func (o *Options) Len() int { return len(o.entries) }

// IsEmpty reports whether the container holds no entries.
func (o *Options) IsEmpty() bool { return len(o.entries) == 0 }

// Clear removes every entry.
func (o *Options) Clear() { o.entries = nil }

// Retain keeps only the entries for which keep returns true, preserving
// relative order.
func (o *Options) Retain(keep func(Option) bool) {
	kept := o.entries[:0]
	for _, opt := range o.entries {
		if keep(opt) {
			kept = append(kept, opt)
		}
	}
	o.entries = kept
}

// Clone returns a shallow copy of the container.
func (o *Options) Clone() *Options {
	clone := &Options{entries: make([]Option, len(o.entries))}
	copy(clone.entries, o.entries)
	return clone
}

// Iter returns every stored entry in ascending code order.
func (o *Options) Iter() []Option {
	return o.entries
}

// Encode serializes every entry as a 2-byte code, 2-byte length, and
// payload, in ascending stored order. There is no terminator and no Pad.
func (o *Options) Encode(w *wire.Writer) {
	for _, opt := range o.Iter() {
		scratch := wire.NewWriter(0)
		opt.Encode(scratch)
		body := scratch.Bytes()
		w.WriteU16(uint16(opt.Code()))
		w.WriteU16(uint16(len(body)))
		w.WriteBytes(body)
	}
}
