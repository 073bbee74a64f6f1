package singleton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type TestUser struct {
	ID       uint
	Username string
	Age      int
}

type Shape interface {
	Area() float64
}

func TestNew(t *testing.T) {
	var usr = New(func() *TestUser {
		return &TestUser{
			ID:       10,
			Username: "bob",
			Age:      18,
		}
	})
	usr1 := New(func() *TestUser {
		return &TestUser{
			ID:       11,
			Username: "alice",
		}
	})

	assert.Same(t, usr1, usr)
	assert.Equal(t, "bob", usr1.Username)
}

func TestOfInterfaceKey(t *testing.T) {
	defer Reset[Shape]()

	calls := 0
	ctor := func() *TestUser {
		calls++
		return &TestUser{Username: "shape"}
	}

	a := Of[Shape](ctor)
	b := Of[Shape](ctor)

	assert.Same(t, a, b)
	assert.Equal(t, 1, calls)
}

func TestReset(t *testing.T) {
	type key struct{}

	first := Of[key](func() *TestUser { return &TestUser{ID: 1} })
	Reset[key]()
	second := Of[key](func() *TestUser { return &TestUser{ID: 2} })

	assert.NotSame(t, first, second)
	assert.Equal(t, uint(2), second.ID)
	Reset[key]()
}
