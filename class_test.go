package factory

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassNew(t *testing.T) {
	dog := newDogClass()

	assert.Equal(t, "Dog", dog.Name())
	assert.Equal(t, reflect.TypeOf(&Dog{}), dog.Type())
	assert.Equal(t, reflect.TypeOf(""), dog.ArgType())
	assert.Equal(t, "Dog(string)", dog.String())

	v, err := dog.New("Rex")
	assert.NoError(t, err)
	assert.Equal(t, &Dog{Name: "Rex"}, v)
}

func TestClassZeroArg(t *testing.T) {
	dog := newDogClass()

	v, err := dog.New(nil)
	assert.NoError(t, err)
	assert.Equal(t, &Dog{}, v)
}

func TestClassArgMismatch(t *testing.T) {
	dog := newDogClass()

	v, err := dog.New(3.14)
	assert.Nil(t, v)
	assert.True(t, CheckTypeMismatch(err))
	assert.Contains(t, err.Error(), "want string, got float64")
}

func TestClassInterfaceArg(t *testing.T) {
	type options struct {
		Name string
	}

	cls := NewClass(func(arg any) *Dog {
		if opts, ok := arg.(options); ok {
			return &Dog{Name: opts.Name}
		}
		return &Dog{}
	})

	v, err := cls.New(options{Name: "Rex"})
	assert.NoError(t, err)
	assert.Equal(t, &Dog{Name: "Rex"}, v)
}

func TestClassError(t *testing.T) {
	errNope := errors.New("nope")
	cls := NewClassE(func(int) (*Dog, error) { return nil, errNope })

	_, err := cls.New(1)
	assert.Same(t, errNope, err)
}

func TestClassUnnamedType(t *testing.T) {
	cls := NewClass(func(int) []string { return nil })

	assert.Equal(t, "[]string", cls.Name())
}
