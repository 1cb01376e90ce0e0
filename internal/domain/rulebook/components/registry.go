package components

import (
	"sort"

	"github.com/KirkDiggler/spellcraft/internal/domain/spell"
	spellerr "github.com/KirkDiggler/spellcraft/internal/errors"
)

// Registry is the read-only lookup of component options. It is filled once
// by NewRegistry and never written again, so concurrent readers need no lock.
type Registry struct {
	options map[spell.ComponentKey]spell.ComponentOption
	bySlot  map[spell.Slot][]spell.ComponentKey
}

// NewRegistry validates a table and indexes it
func NewRegistry(table *Table) (*Registry, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	r := &Registry{
		options: make(map[spell.ComponentKey]spell.ComponentOption, len(table.Options)),
		bySlot:  make(map[spell.Slot][]spell.ComponentKey),
	}
	for _, opt := range table.Options {
		r.options[opt.Key] = opt
		r.bySlot[opt.Slot] = append(r.bySlot[opt.Slot], opt.Key)
	}
	for slot := range r.bySlot {
		keys := r.bySlot[slot]
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	}

	return r, nil
}

// DefaultRegistry indexes the built-in table
func DefaultRegistry() *Registry {
	r, err := NewRegistry(Defaults())
	if err != nil {
		panic("built-in component table is invalid: " + err.Error())
	}
	return r
}

// Lookup returns the option for a key
func (r *Registry) Lookup(key spell.ComponentKey) (spell.ComponentOption, error) {
	opt, ok := r.options[key]
	if !ok {
		return spell.ComponentOption{}, spellerr.Configurationf("unknown component %q", key).
			WithComponent(key.String()).
			WithConstraint("known_component")
	}
	return opt, nil
}

// LookupSlot returns the option for a key and checks it fills the slot
func (r *Registry) LookupSlot(slot spell.Slot, key spell.ComponentKey) (spell.ComponentOption, error) {
	opt, err := r.Lookup(key)
	if err != nil {
		return spell.ComponentOption{}, err
	}
	if opt.Slot != slot {
		return spell.ComponentOption{}, spellerr.Configurationf("component %s is a %s, not a %s", key, opt.Slot, slot).
			WithComponent(key.String()).
			WithConstraint("slot")
	}
	return opt, nil
}

// List returns the options registered for a slot, ordered by key
func (r *Registry) List(slot spell.Slot) []spell.ComponentOption {
	keys := r.bySlot[slot]
	result := make([]spell.ComponentOption, 0, len(keys))
	for _, key := range keys {
		result = append(result, r.options[key])
	}
	return result
}

// Table returns a copy of the registered options as a table
func (r *Registry) Table() *Table {
	table := &Table{}
	for _, slot := range []spell.Slot{spell.SlotDeliveryMethod, spell.SlotTargetShape} {
		table.Options = append(table.Options, r.List(slot)...)
	}
	return table
}

// Assemble resolves a selection into an assembly. Parameters are copied
// as given; bounds are checked when the assembly is costed.
func (r *Registry) Assemble(sel *spell.Selection) (*spell.Assembly, error) {
	if sel == nil {
		return nil, spellerr.InvalidArgument("selection is required")
	}

	delivery, err := r.LookupSlot(spell.SlotDeliveryMethod, sel.DeliveryMethod)
	if err != nil {
		return nil, err
	}
	shape, err := r.LookupSlot(spell.SlotTargetShape, sel.TargetShape)
	if err != nil {
		return nil, err
	}

	return sel.Resolve(delivery, shape), nil
}
