package universe

const defaultHistorySize = 5

// History remembers the hashes of recent generations to spot static
// boards and short cycles. It lives in memory only.
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps the last size hashes. Sizes below 3 use the default of 5.
func NewHistory(size int) *History {
	if size < 3 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Record adds the universe's current generation to the history
func (h *History) Record(u *Universe) {
	h.hashes = append(h.hashes, u.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether the current generation repeats one of the last
// three recorded ones, i.e. the board is static or cycling with period <= 3
func (h *History) IsStagnant(u *Universe) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := u.Hash()
	for _, prev := range h.hashes[len(h.hashes)-3:] {
		if prev == current {
			return true
		}
	}
	return false
}

// Len returns the number of recorded hashes
func (h *History) Len() int {
	return len(h.hashes)
}

// Clear forgets all recorded generations
func (h *History) Clear() {
	h.hashes = nil
}
