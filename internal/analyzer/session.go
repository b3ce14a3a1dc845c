package analyzer

import (
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Session owns the current Result for interactive frontends. Decodes
// never interleave writes: each Analyze claims a generation up front,
// runs outside the lock, and only publishes if no newer decode started
// in the meantime. A superseded result is dropped, never observed.
type Session struct {
	an  *Analyzer
	gen atomic.Uint64

	mu  sync.Mutex
	cur *Result
}

func NewSession(an *Analyzer) *Session {
	return &Session{an: an}
}

// Analyze decodes raw bytes and publishes the result unless a newer
// decode superseded this one. It returns the session's current result
// either way.
func (s *Session) Analyze(data []byte) *Result {
	return s.analyze(data, "", time.Time{})
}

// AnalyzeFile reads and decodes a save file. Read errors fold into the
// same empty-result outcome as decode errors.
func (s *Session) AnalyzeFile(path string) *Result {
	data, err := os.ReadFile(path)
	if err != nil {
		s.an.log.Warn().Err(err).Str("path", path).Msg("save read failed")
		data = nil
	}
	mod := time.Time{}
	if info, err := os.Stat(path); err == nil {
		mod = info.ModTime()
	}
	return s.analyze(data, path, mod)
}

// Current returns the last published result, nil before the first
// decode finishes.
func (s *Session) Current() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

func (s *Session) analyze(data []byte, path string, mod time.Time) *Result {
	gen := s.gen.Add(1)

	res := s.an.Analyze(data)
	res.SourcePath = path
	res.SourceTime = mod

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen.Load() {
		// A newer decode started; this result is stale.
		return s.cur
	}
	s.cur = res
	return res
}
