package blobstore_test

import (
	"testing"
	"time"

	"github.com/jhoicas/gastos-admin/internal/infrastructure/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LiberaTrasAbrir(t *testing.T) {
	s := blobstore.New(50*time.Millisecond, time.Hour)
	t.Cleanup(s.Close)

	id := s.Put("gastos.pdf", "application/pdf", []byte("%PDF"))
	require.NotEmpty(t, id)

	doc, ok := s.Open(id)
	require.True(t, ok)
	assert.Equal(t, "gastos.pdf", doc.Filename)
	assert.Equal(t, []byte("%PDF"), doc.Content)

	_, ok = s.Open(id)
	assert.True(t, ok, "sigue disponible mientras el navegador termina de cargarlo")

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 10*time.Millisecond)
	_, ok = s.Open(id)
	assert.False(t, ok)
}

func TestStore_NoAbiertoExpiraPorVidaMaxima(t *testing.T) {
	s := blobstore.New(10*time.Millisecond, 60*time.Millisecond)
	t.Cleanup(s.Close)

	s.Put("a.pdf", "application/pdf", []byte("x"))
	assert.Equal(t, 1, s.Len())
	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestStore_IDsUnicosYDesconocido(t *testing.T) {
	s := blobstore.New(time.Minute, time.Minute)
	t.Cleanup(s.Close)

	a := s.Put("a.pdf", "application/pdf", nil)
	b := s.Put("b.pdf", "application/pdf", nil)
	assert.NotEqual(t, a, b)

	_, ok := s.Open("no-existe")
	assert.False(t, ok)
}

func TestStore_Close(t *testing.T) {
	s := blobstore.New(time.Minute, time.Minute)
	s.Put("a.pdf", "application/pdf", nil)
	s.Close()
	assert.Equal(t, 0, s.Len())
}
