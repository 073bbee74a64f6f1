package factory

import (
	"github.com/hnhuaxi/factory/singleton"
	"github.com/pkg/errors"
)

// Instances is GetInstance with every instance asserted to B.
func Instances[B any](f *Factory, key string, args ...any) ([]B, error) {
	instances, err := f.GetInstance(key, args)
	if err != nil {
		return nil, err
	}

	typed := make([]B, 0, len(instances))
	for i, instance := range instances {
		v, ok := instance.(B)
		if !ok {
			return nil, errors.Wrapf(ErrTypeMismatch, "instance %s[%d] is %T, not %s", key, i, instance, BaseOf[B]())
		}
		typed = append(typed, v)
	}

	return typed, nil
}

// forKey files process-wide factories apart from other singleton values of type B.
type forKey[B any] struct{}

// For returns the process-wide factory for base B. Options only apply to the call that
// creates it.
func For[B any](ops ...OptionFunc) *Factory {
	return singleton.Of[forKey[B]](func() *Factory {
		return New(BaseOf[B](), ops...)
	})
}

// ResetFor drops the process-wide factory for B.
func ResetFor[B any]() {
	singleton.Reset[forKey[B]]()
}
