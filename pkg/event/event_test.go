package event

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFireReachesNamedAndWildcardListeners(t *testing.T) {
	t.Cleanup(Flush)

	var got []string
	Listen("menu.created", func(name string, payload interface{}) {
		got = append(got, "named:"+payload.(string))
	})
	Listen(Wildcard, func(name string, payload interface{}) {
		got = append(got, "all:"+name)
	})

	Fire("menu.created", "m-1")
	Fire("restaurant.deleted", "r-1")

	assert.Equal(t, []string{"named:m-1", "all:menu.created", "all:restaurant.deleted"}, got)
}

func TestFireAsync(t *testing.T) {
	t.Cleanup(Flush)

	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		Listen("restaurant.updated", func(string, interface{}) { wg.Done() })
	}
	FireAsync("restaurant.updated", nil)

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("async listeners did not run")
	}
}

func TestFlush(t *testing.T) {
	called := false
	Listen("x", func(string, interface{}) { called = true })
	Flush()
	Fire("x", nil)
	assert.False(t, called)
}

func TestUnsubscribeRemovesOnlyThatListener(t *testing.T) {
	t.Cleanup(Flush)

	var got []string
	stopFirst := Listen("menu.updated", func(string, interface{}) { got = append(got, "first") })
	Listen("menu.updated", func(string, interface{}) { got = append(got, "second") })
	stopAll := Listen(Wildcard, func(string, interface{}) { got = append(got, "all") })

	stopFirst()
	stopFirst()
	stopAll()
	Fire("menu.updated", nil)

	assert.Equal(t, []string{"second"}, got)
}
