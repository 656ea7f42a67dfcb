package dhcpv4

import (
	"sort"

	"github.com/athena-dhcpd/dhcpwire/pkg/wire"
)

// Options is the ordered, single-valued container DHCPv4 options live in.
// DHCPv4 semantics treat a repeated option code as a long-option fragment
// to be concatenated (RFC 3396), not a second logical value, so unlike
// DhcpOptions in DHCPv6 this container holds at most one Option per code.
//
// Canonical iteration order is ascending numeric code, with exactly one
// exception: Relay Agent Information (option 82), if present, is placed
// immediately before the implicit End marker regardless of its numeric
// rank (RFC 3046 §2.1).
type Options struct {
	byCode map[OptionCode]Option
}

// NewOptions returns an empty options container.
func NewOptions() *Options {
	return &Options{byCode: make(map[OptionCode]Option)}
}

// Insert stores opt, replacing any existing entry with the same code.
func (o *Options) Insert(opt Option) {
	if o.byCode == nil {
		o.byCode = make(map[OptionCode]Option)
	}
	o.byCode[opt.Code()] = opt
}

// Get returns the option stored under code, if any.
func (o *Options) Get(code OptionCode) (Option, bool) {
	opt, ok := o.byCode[code]
	return opt, ok
}

// Has reports whether code is present.
func (o *Options) Has(code OptionCode) bool {
	_, ok := o.byCode[code]
	return ok
}

// Remove deletes the entry for code, if present.
func (o *Options) Remove(code OptionCode) {
	delete(o.byCode, code)
}

// Len returns the number of distinct option codes stored.
func (o *Options) Len() int { return len(o.byCode) }

// IsEmpty reports whether the container holds no options.
func (o *Options) IsEmpty() bool { return len(o.byCode) == 0 }

// Clear removes every option.
func (o *Options) Clear() { o.byCode = make(map[OptionCode]Option) }

// Retain keeps only the options for which keep returns true.
func (o *Options) Retain(keep func(Option) bool) {
	for code, opt := range o.byCode {
		if !keep(opt) {
			delete(o.byCode, code)
		}
	}
}

// Clone returns a shallow copy of the container; Option values themselves
// are immutable by convention once decoded, so this is sufficient for
// callers building a reply from a request's options without aliasing the
// request's map.
func (o *Options) Clone() *Options {
	clone := NewOptions()
	for code, opt := range o.byCode {
		clone.byCode[code] = opt
	}
	return clone
}

// Iter returns every stored option in canonical encode order: ascending
// numeric code, with option 82 (if present) moved to the end.
func (o *Options) Iter() []Option {
	codes := make([]OptionCode, 0, len(o.byCode))
	for code := range o.byCode {
		if code == OptionRelayAgentInfo {
			continue
		}
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	opts := make([]Option, 0, len(o.byCode))
	for _, code := range codes {
		opts = append(opts, o.byCode[code])
	}
	if rai, ok := o.byCode[OptionRelayAgentInfo]; ok {
		opts = append(opts, rai)
	}
	return opts
}

// Encode serializes every option in canonical order, splitting any option
// whose encoded payload exceeds 255 bytes into contiguous RFC 3396
// fragments, and finishes with the implicit End marker. Pad is never
// emitted.
func (o *Options) Encode(w *wire.Writer) {
	for _, opt := range o.Iter() {
		scratch := wire.NewWriter(0)
		opt.Encode(scratch)
		payload := scratch.Bytes()
		writeFragmented(w, opt.Code(), payload)
	}
	w.WriteU8(byte(OptionEnd))
}

func writeFragmented(w *wire.Writer, code OptionCode, payload []byte) {
	if len(payload) == 0 {
		w.WriteU8(byte(code))
		w.WriteU8(0)
		return
	}
	for len(payload) > 0 {
		n := len(payload)
		if n > 255 {
			n = 255
		}
		w.WriteU8(byte(code))
		w.WriteU8(byte(n))
		w.WriteBytes(payload[:n])
		payload = payload[n:]
	}
}
