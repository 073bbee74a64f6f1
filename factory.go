// Package factory builds instances of registered classes by slot name.
package factory

import (
	"context"
	"sync"

	"github.com/akrennmair/slice"
	"github.com/hnhuaxi/factory/registry"
	"github.com/hnhuaxi/factory/utils"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// PropBaseClass is the property name under which a factory exposes its Base.
const PropBaseClass = "baseClass"

// Factory builds instances of registered classes by slot name. All classes in a factory
// satisfied its Base when they were registered. It is safe for concurrent use.
type Factory struct {
	Option Option

	mu    sync.RWMutex
	base  Base
	slots registry.Registry[*Class]
	props map[string]any
	built atomic.Int64
	log   *zap.SugaredLogger
}

// Stats is a point-in-time summary of a factory.
type Stats struct {
	Slots   int
	Classes int
	Built   int64
}

// New returns an empty factory whose classes must satisfy base.
func New(base Base, ops ...OptionFunc) *Factory {
	var opts Option
	for _, op := range ops {
		op(&opts)
	}

	if opts.Log == nil {
		opts.Log = Logger
	}

	props := make(map[string]any, len(opts.Properties))
	for name, v := range opts.Properties {
		props[name] = v
	}

	return &Factory{
		Option: opts,
		base:   base,
		props:  props,
		log:    opts.Log.Sugar(),
	}
}

func (f *Factory) notify(change Change) {
	if f.Option.Notifier == nil {
		return
	}

	if err := f.Option.Notifier.Notify(context.Background(), change); err != nil {
		f.log.Warnw("notify change failed", "op", change.Op, "key", change.Key, "error", err)
	}
}

// Register appends cls to the slot under key, creating the slot if needed. The same
// class may be registered more than once.
func (f *Factory) Register(key string, cls *Class) error {
	if key == "" {
		return errors.Wrap(ErrInvalidKey, "empty key")
	}

	f.mu.Lock()
	base := f.base
	if !base.Satisfied(cls) {
		f.mu.Unlock()
		if cls == nil {
			return errors.Wrapf(ErrTypeMismatch, "nil class is not a subtype of %s", base)
		}
		return errors.Wrapf(ErrTypeMismatch, "%s is not a subtype of %s", cls.Type(), base)
	}
	f.slots.Append(key, cls)
	f.mu.Unlock()

	f.log.Debugw("class registered", "key", key, "class", cls.Name(), "base", base.String())
	f.notify(Change{Op: OpRegistered, Key: key, Class: cls.Name(), Base: base.String()})
	return nil
}

// MustRegister is Register that panics on error.
func (f *Factory) MustRegister(key string, cls *Class) {
	if err := f.Register(key, cls); err != nil {
		panic(err)
	}
}

// RegisterAll registers every class under key. Classes that pass are kept even when
// others fail; the failures are returned together.
func (f *Factory) RegisterAll(key string, classes ...*Class) error {
	var errs error
	for _, cls := range classes {
		errs = multierr.Append(errs, f.Register(key, cls))
	}
	return errs
}

// RegisterDefault registers cls under the key derived from the base name, so a base
// named Animal files classes under "animals".
func (f *Factory) RegisterDefault(cls *Class) error {
	return f.Register(f.DefaultKey(), cls)
}

// DefaultKey is the slot key RegisterDefault uses for the current base.
func (f *Factory) DefaultKey() string {
	return utils.SlotKey(f.BaseClass().Name())
}

// GetInstance builds one instance per class under key. The class at position i gets
// args[i]; classes past the end of args get the zero value of their argument type and
// surplus args are ignored. If any constructor fails no instances are returned.
func (f *Factory) GetInstance(key string, args []any) ([]any, error) {
	f.mu.RLock()
	classes, ok := f.slots.Lookup(key)
	f.mu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrUnknownKey, "get instance %q", key)
	}

	f.log.Debugw("get instance", "key", key, "classes", slice.Map(classes, func(cls *Class) string {
		return cls.Name()
	}), "args", len(args))

	var (
		instances = make([]any, 0, len(classes))
		errs      error
	)

	for i, cls := range classes {
		var arg any
		if i < len(args) {
			arg = args[i]
		}

		instance, err := cls.New(arg)
		if err != nil {
			errs = multierr.Append(errs, errors.WithMessagef(err, "construct %s at %s[%d]", cls.Name(), key, i))
			continue
		}
		instances = append(instances, instance)
	}

	if errs != nil {
		return nil, errs
	}

	f.built.Add(int64(len(instances)))
	return instances, nil
}

// Remove drops the first occurrence of cls from the slot under key. Removing a class
// that is not in the slot changes nothing.
func (f *Factory) Remove(key string, cls *Class) error {
	f.mu.Lock()
	removed, ok := f.slots.Remove(key, cls)
	base := f.base
	f.mu.Unlock()

	if !ok {
		return errors.Wrapf(ErrUnknownKey, "remove from %q", key)
	}

	if !removed {
		f.log.Debugw("class not in slot", "key", key, "class", cls)
		return nil
	}

	f.log.Debugw("class removed", "key", key, "class", cls.Name())
	f.notify(Change{Op: OpRemoved, Key: key, Class: cls.Name(), Base: base.String()})
	return nil
}

// BaseClass returns the current requirement.
func (f *Factory) BaseClass() Base {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.base
}

// SetBaseClass replaces the requirement for later registrations. Classes already
// registered stay.
func (f *Factory) SetBaseClass(base Base) {
	f.mu.Lock()
	f.base = base
	f.mu.Unlock()

	f.log.Debugw("base class changed", "base", base.String())
	f.notify(Change{Op: OpBaseChanged, Base: base.String()})
}

// Property looks name up among the explicit properties, then the PropBaseClass name,
// then the slots. A slot is returned as a []*Class copy.
func (f *Factory) Property(name string) (any, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if v, ok := f.props[name]; ok {
		return v, true
	}

	if name == PropBaseClass {
		return f.base, true
	}

	if classes, ok := f.slots.Lookup(name); ok {
		return classes, true
	}

	return nil, false
}

// SetProperty stores v under name, shadowing a slot of the same name in Property.
func (f *Factory) SetProperty(name string, v any) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.props[name] = v
}

// Properties returns a copy of the explicit properties.
func (f *Factory) Properties() map[string]any {
	f.mu.RLock()
	defer f.mu.RUnlock()

	m := make(map[string]any, len(f.props))
	for name, v := range f.props {
		m[name] = v
	}
	return m
}

// Slot returns a copy of the classes under key.
func (f *Factory) Slot(key string) ([]*Class, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.slots.Lookup(key)
}

// Has reports whether a slot exists under key, empty or not.
func (f *Factory) Has(key string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.slots.Has(key)
}

// Keys returns the slot keys in ascending order.
func (f *Factory) Keys() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.slots.Keys()
}

// Stats counts slots, registered classes and instances built so far.
func (f *Factory) Stats() Stats {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return Stats{
		Slots:   len(f.slots.Keys()),
		Classes: f.slots.Size(),
		Built:   f.built.Load(),
	}
}
