// Package blobstore guarda en memoria los PDF generados hasta que el navegador los abre.
// Cada documento se libera DocumentTTL después de la primera apertura, o al cumplir
// la vida máxima si nunca se abre.
package blobstore

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Document contenido transitorio servido en /documents/:id.
type Document struct {
	ID          string
	Filename    string
	ContentType string
	Content     []byte
	CreatedAt   time.Time
}

type entry struct {
	doc    Document
	opened bool
	gen    int
	timer  *time.Timer
}

// Store almacén con liberación diferida.
type Store struct {
	mu          sync.Mutex
	docs        map[string]*entry
	ttl         time.Duration
	maxLifetime time.Duration
	closed      bool
}

// New construye el almacén. ttl corre desde la primera apertura; maxLifetime desde el alta.
func New(ttl, maxLifetime time.Duration) *Store {
	if maxLifetime < ttl {
		maxLifetime = ttl
	}
	return &Store{docs: make(map[string]*entry), ttl: ttl, maxLifetime: maxLifetime}
}

// Put guarda el documento y devuelve su id aleatorio.
func (s *Store) Put(filename, contentType string, content []byte) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return id
	}
	e := &entry{doc: Document{
		ID:          id,
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
		CreatedAt:   time.Now(),
	}}
	e.timer = time.AfterFunc(s.maxLifetime, func() { s.release(id, 0) })
	s.docs[id] = e
	return id
}

// Open devuelve el documento. La primera apertura programa la liberación tras ttl;
// las siguientes aperturas dentro de ese plazo siguen funcionando.
func (s *Store) Open(id string) (*Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.docs[id]
	if !ok {
		return nil, false
	}
	if !e.opened {
		e.opened = true
		e.gen++
		gen := e.gen
		e.timer.Stop()
		e.timer = time.AfterFunc(s.ttl, func() { s.release(id, gen) })
	}
	doc := e.doc
	return &doc, true
}

// Len cantidad de documentos retenidos.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

// Close libera todo y detiene los temporizadores.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.docs {
		e.timer.Stop()
		delete(s.docs, id)
	}
	s.closed = true
}

// release borra el documento si el temporizador que dispara sigue vigente.
func (s *Store) release(id string, gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.docs[id]; ok && e.gen == gen {
		delete(s.docs, id)
	}
}
