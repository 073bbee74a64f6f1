package factory

import (
	"go.uber.org/zap"
)

type Option struct {
	Log        *zap.Logger
	Notifier   Notifier
	Properties map[string]any
}

type OptionFunc func(opt *Option)

func OptLogger(logger *zap.Logger) OptionFunc {
	return func(opt *Option) {
		opt.Log = logger
	}
}

// OptNotifier reports every registry change to n.
func OptNotifier(n Notifier) OptionFunc {
	return func(opt *Option) {
		opt.Notifier = n
	}
}

// OptProperties seeds the factory's properties. Repeated use adds keys; a later value
// replaces an earlier one under the same name as a whole.
func OptProperties(props map[string]any) OptionFunc {
	return func(opt *Option) {
		if opt.Properties == nil {
			opt.Properties = make(map[string]any, len(props))
		}
		for name, v := range props {
			opt.Properties[name] = v
		}
	}
}
