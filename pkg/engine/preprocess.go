package engine

// kwPrefix marks string literals that stood for :keywords in the source.
const kwPrefix = "__kw_"

// preprocessSource rewrites job script syntax into something zygomys reads:
//
//   - :name becomes the string "__kw_name", so builtins can tell keyword
//     arguments from positional ones without registering symbols.
//   - A hyphen between identifier characters becomes an underscore, since
//     zygomys reads it as subtraction (color-limits -> color_limits).
//   - ; comments become // comments.
//
// String literals and := are left untouched.
func preprocessSource(source string) string {
	s := &scanner{src: source, out: make([]byte, 0, len(source)+len(source)/4)}
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '"':
			s.quoted('"', true)
		case c == '`':
			s.quoted('`', false)
		case c == ';':
			s.comment()
		case c == ':' && s.peek(1) == '=':
			s.copy(2)
		case c == ':' && isLetter(s.peek(1)):
			s.keyword()
		case c == '-' && s.pos > 0 && isIdentChar(s.src[s.pos-1]) && isLetter(s.peek(1)):
			s.out = append(s.out, '_')
			s.pos++
		default:
			s.copy(1)
		}
	}
	return string(s.out)
}

type scanner struct {
	src string
	out []byte
	pos int
}

// peek returns the byte n positions ahead, or 0 past the end.
func (s *scanner) peek(n int) byte {
	if s.pos+n < len(s.src) {
		return s.src[s.pos+n]
	}
	return 0
}

func (s *scanner) copy(n int) {
	end := min(s.pos+n, len(s.src))
	s.out = append(s.out, s.src[s.pos:end]...)
	s.pos = end
}

// quoted copies a literal delimited by q, honouring backslash escapes when
// escapes is set. An unterminated literal runs to the end of the source and
// is left for zygomys to report.
func (s *scanner) quoted(q byte, escapes bool) {
	s.copy(1)
	for s.pos < len(s.src) && s.src[s.pos] != q {
		if escapes && s.src[s.pos] == '\\' {
			s.copy(2)
			continue
		}
		s.copy(1)
	}
	s.copy(1)
}

func (s *scanner) comment() {
	for s.pos < len(s.src) && s.src[s.pos] == ';' {
		s.pos++
	}
	s.out = append(s.out, '/', '/')
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.copy(1)
	}
}

func (s *scanner) keyword() {
	start := s.pos + 1
	end := start
	for end < len(s.src) && isKWChar(s.src[end]) {
		end++
	}
	s.out = append(s.out, '"')
	s.out = append(s.out, kwPrefix...)
	s.out = append(s.out, s.src[start:end]...)
	s.out = append(s.out, '"')
	s.pos = end
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isKWChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}
