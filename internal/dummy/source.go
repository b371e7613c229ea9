package dummy

import "io"

// Source replays the given fragments one per read call and reports io.EOF
// once they run out, imitating a peer that delivered the message in several
// TCP segments and then closed the connection. Used in tests only.
type Source struct {
	fragments [][]byte
	pointer   int
}

func NewSource(fragments ...[]byte) *Source {
	return &Source{fragments: fragments}
}

// Split cuts data into fragments of n bytes each (the last one may be
// shorter).
func Split(data []byte, n int) *Source {
	var fragments [][]byte
	for i := 0; i < len(data); i += n {
		end := i + n
		if end > len(data) {
			end = len(data)
		}

		fragments = append(fragments, data[i:end])
	}

	return NewSource(fragments...)
}

func (s *Source) Read(p []byte) (int, error) {
	if s.pointer == len(s.fragments) {
		return 0, io.EOF
	}

	fragment := s.fragments[s.pointer]
	n := copy(p, fragment)
	if n < len(fragment) {
		s.fragments[s.pointer] = fragment[n:]
	} else {
		s.pointer++
	}

	return n, nil
}
