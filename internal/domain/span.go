package domain

import (
	"encoding/json"
	"sync"
	"time"
)

// Span times one named step, usually a single provider call.
type Span struct {
	Name    string    `json:"name"`
	startTs time.Time `json:"-"`
	Elapsed *int64    `json:"elapsed"`
	Outcome string    `json:"outcome,omitempty"`
}

func (s *Span) End(outcome string) {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
	s.Outcome = outcome
}

// Profile is simply a list of spans. Spans may be started from
// concurrent goroutines.
type Profile struct {
	mu      sync.Mutex
	Spans   []*Span
	startTs time.Time
	TotalMs *int64
}

func NewProfile() *Profile {
	return &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}
}

func (p *Profile) StartSpan(name string) *Span {
	s := &Span{
		Name:    name,
		startTs: time.Now(),
	}
	p.mu.Lock()
	p.Spans = append(p.Spans, s)
	p.mu.Unlock()
	return s
}

func (p *Profile) End() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.TotalMs == nil {
		t := time.Since(p.startTs).Milliseconds()
		p.TotalMs = &t
	}
}

func (p *Profile) ToJsonBytes() ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return json.Marshal(p.Spans)
}
