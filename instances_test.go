package factory

import (
	"testing"

	"github.com/hnhuaxi/factory/singleton"
	"github.com/stretchr/testify/assert"
)

func TestInstancesTyped(t *testing.T) {
	f := New(BaseOf[Animal]())

	assert.NoError(t, f.RegisterAll("pets", newDogClass(), newCatClass()))

	pets, err := Instances[Animal](f, "pets", "Rex", "Tom")
	assert.NoError(t, err)
	assert.Len(t, pets, 2)
	assert.Equal(t, "Rex: woof", pets[0].Sound())
	assert.Equal(t, "Tom: meow", pets[1].Sound())
}

func TestInstancesMismatch(t *testing.T) {
	f := New(BaseOf[Animal]())

	assert.NoError(t, f.Register("pets", newDogClass()))

	cats, err := Instances[*Cat](f, "pets", "Rex")
	assert.Nil(t, cats)
	assert.True(t, CheckTypeMismatch(err))
}

func TestInstancesUnknownKey(t *testing.T) {
	f := New(BaseOf[Animal]())

	_, err := Instances[Animal](f, "pets")
	assert.True(t, CheckUnknownKey(err))
}

func TestFor(t *testing.T) {
	defer ResetFor[Animal]()

	f := For[Animal]()
	assert.Same(t, f, For[Animal]())
	assert.Equal(t, BaseOf[Animal](), f.BaseClass())

	assert.NoError(t, f.Register("pets", newDogClass()))
	assert.True(t, For[Animal]().Has("pets"))

	ResetFor[Animal]()
	assert.NotSame(t, f, For[Animal]())
	assert.False(t, For[Animal]().Has("pets"))
}

func TestForSeparateFromSingletonValues(t *testing.T) {
	defer singleton.Reset[*Dog]()
	defer ResetFor[*Dog]()

	rex := singleton.New(func() *Dog { return &Dog{Name: "Rex"} })

	var f *Factory
	assert.NotPanics(t, func() { f = For[*Dog]() })
	assert.Equal(t, BaseOf[*Dog](), f.BaseClass())
	assert.Same(t, rex, singleton.New(func() *Dog { return &Dog{} }))
}
