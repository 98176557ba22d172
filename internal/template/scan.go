package template

// scanner is a byte cursor over the raw template. Feature and
// part-of-speech tokens are ASCII; offsets are byte offsets.
type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte { return s.src[s.pos] }

func (s *scanner) skipSpaces() {
	for !s.eof() {
		switch s.src[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

// until returns the text between the current position and the next
// occurrence of delim, along with the delimiter's offset. ok is false
// when the delimiter is missing.
func (s *scanner) until(delim byte) (body string, end int, ok bool) {
	for i := s.pos; i < len(s.src); i++ {
		if s.src[i] == delim {
			return s.src[s.pos:i], i, true
		}
	}
	return "", 0, false
}

// word consumes a bare token: letters, digits, underscores and the '*'
// wildcard marker. Stops at whitespace and structural punctuation.
func (s *scanner) word() string {
	start := s.pos
	for !s.eof() {
		c := s.src[s.pos]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' ||
			c == '(' || c == ')' || c == '{' || c == '}' || c == '@' || c == ':' {
			break
		}
		s.pos++
	}
	return s.src[start:s.pos]
}
