package pattern

import "sync"

// Memo generates a Static once and hands the same value to every caller for
// the rest of the process. All viewers share one layout.
type Memo struct {
	once   sync.Once
	build  func() *Static
	static *Static
}

// NewMemo returns a Memo that calls build on first use.
func NewMemo(build func() *Static) *Memo {
	return &Memo{build: build}
}

// Get returns the memoized Static, generating it if needed.
func (m *Memo) Get() *Static {
	m.once.Do(func() {
		m.static = m.build()
	})
	return m.static
}
