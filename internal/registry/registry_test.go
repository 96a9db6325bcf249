package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGet(t *testing.T) {
	s := New()
	s.Put("doc-1", "/output/a.pdf")

	path, ok := s.Get("doc-1")
	require.True(t, ok)
	assert.Equal(t, "/output/a.pdf", path)
}

func TestStore_GetMissing(t *testing.T) {
	s := New()

	_, ok := s.Get("nope")
	assert.False(t, ok)
}

func TestStore_PutOverwrites(t *testing.T) {
	s := New()
	s.Put("doc-1", "/output/a.pdf")
	s.Put("doc-1", "/output/b.pdf")

	path, ok := s.Get("doc-1")
	require.True(t, ok)
	assert.Equal(t, "/output/b.pdf", path)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Delete(t *testing.T) {
	s := New()
	s.Put("doc-1", "/output/a.pdf")

	s.Delete("doc-1")
	_, ok := s.Get("doc-1")
	assert.False(t, ok)

	// Deleting an absent id is a no-op.
	s.Delete("doc-1")
	assert.Equal(t, 0, s.Len())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("doc-%d", n)
			s.Put(id, "/output/"+id+".pdf")
			s.Get(id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
