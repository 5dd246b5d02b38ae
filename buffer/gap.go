package buffer

import "fmt"

// Gap is a half-open byte range [Start, End) over physical storage.
type Gap struct {
	Start int
	End   int
}

func (g Gap) Len() int { return g.End - g.Start }

func (g Gap) contains(i int) bool { return i >= g.Start && i < g.End }

// GapStore owns the raw storage of a buffer and the gap inside it.
//
// Logical content is data[:gap.Start] followed by data[gap.End:]. Bytes inside
// the gap are zero and never read as content.
type GapStore struct {
	data []byte
	gap  Gap
}

// NewGapStore takes ownership of content. The gap starts empty at 0.
func NewGapStore(content []byte) *GapStore {
	return &GapStore{data: content}
}

func (s *GapStore) Gap() Gap { return s.gap }

func (s *GapStore) GapLen() int { return s.gap.Len() }

// Cap returns the physical storage length, gap included.
func (s *GapStore) Cap() int { return len(s.data) }

// Len returns the logical content length.
func (s *GapStore) Len() int { return len(s.data) - s.gap.Len() }

// Spans returns the content before and after the gap. Both alias storage.
func (s *GapStore) Spans() (before, after []byte) {
	return s.data[:s.gap.Start], s.data[s.gap.End:]
}

// Bytes returns a copy of the logical content.
func (s *GapStore) Bytes() []byte {
	before, after := s.Spans()
	out := make([]byte, 0, len(before)+len(after))
	out = append(out, before...)
	return append(out, after...)
}

// Physical maps a logical offset to its index in storage.
func (s *GapStore) Physical(offset int) int {
	if offset < 0 || offset > s.Len() {
		panic(fmt.Sprintf("buffer: logical offset %d out of range [0, %d]", offset, s.Len()))
	}
	if offset <= s.gap.Start {
		return offset
	}
	return offset + s.gap.Len()
}

// GapMove relocates the gap so the content boundary it sits on is target, a
// physical index. Moving left puts gap.Start at target; moving right puts
// gap.End at target. Targets on or inside the gap are no-ops.
func (s *GapStore) GapMove(target int) {
	if target < 0 || target > len(s.data) {
		panic(fmt.Sprintf("buffer: gap move target %d out of range [0, %d]", target, len(s.data)))
	}
	if s.gap.contains(target) || s.gap.End == target {
		return
	}

	n := s.gap.Len()
	if n == 0 {
		s.gap = Gap{Start: target, End: target}
		return
	}

	if target < s.gap.Start {
		s.chunkMove(Gap{Start: target, End: s.gap.Start}, s.gap.End)
		s.gap = Gap{Start: target, End: target + n}
		return
	}
	s.chunkMove(Gap{Start: s.gap.End, End: target}, s.gap.Start)
	s.gap = Gap{Start: target - n, End: target}
}

// GapResize grows or shrinks the gap to exactly size bytes. gap.Start stays
// fixed; the tail after the gap slides to make or release room.
func (s *GapStore) GapResize(size int) {
	if size < 0 {
		panic(fmt.Sprintf("buffer: negative gap size %d", size))
	}
	n := s.gap.Len()
	if size == n {
		return
	}

	oldLen := len(s.data)
	tail := Gap{Start: s.gap.End, End: oldLen}
	if size > n {
		s.data = append(s.data, make([]byte, size-n)...)
		s.chunkMove(tail, len(s.data))
	} else {
		s.chunkMove(tail, s.gap.Start+size)
		s.data = s.data[:oldLen-(n-size)]
	}
	s.gap.End = s.gap.Start + size
}

type direction uint8

const (
	lowToHigh direction = iota
	highToLow
)

// chunkMove slides the bytes of chunk so that they start at to (when to is
// left of the chunk) or end at to (when to is right of it). Every vacated
// source byte is zeroed.
func (s *GapStore) chunkMove(chunk Gap, to int) {
	if chunk.Len() <= 0 || to == chunk.Start || to == chunk.End {
		return
	}

	var dir direction
	var shift int
	switch {
	case to < chunk.Start:
		dir, shift = lowToHigh, to-chunk.Start
	case to > chunk.End:
		dir, shift = highToLow, to-chunk.End
	default:
		panic(fmt.Sprintf("buffer: chunk move target %d inside chunk [%d, %d)", to, chunk.Start, chunk.End))
	}
	if chunk.Start+shift < 0 || chunk.End+shift > len(s.data) {
		panic(fmt.Sprintf("buffer: chunk [%d, %d) shifted by %d leaves storage of %d bytes", chunk.Start, chunk.End, shift, len(s.data)))
	}

	// Copy order keeps every source byte intact until it has been read.
	switch dir {
	case lowToHigh:
		for i := chunk.Start; i < chunk.End; i++ {
			s.data[i+shift] = s.data[i]
			s.data[i] = 0
		}
	case highToLow:
		for i := chunk.End - 1; i >= chunk.Start; i-- {
			s.data[i+shift] = s.data[i]
			s.data[i] = 0
		}
	}
}

// write copies p into the gap at its start and consumes that much gap. The
// gap must already be large enough.
func (s *GapStore) write(p []byte) {
	if len(p) > s.gap.Len() {
		panic(fmt.Sprintf("buffer: write of %d bytes into gap of %d", len(p), s.gap.Len()))
	}
	copy(s.data[s.gap.Start:], p)
	s.gap.Start += len(p)
}
