package template

import "strconv"

// parseV2 parses the group notation. A group lists its lexical slots in
// parentheses, each optionally carrying brace-delimited overrides, and is
// followed by '@' with either an inline feature list or a back-reference
// to an earlier group:
//
//	(article noun adjective{*gender*})@{nominative:singular}
//	(pronoun{personal_strong})@$1
func parseV2(src string, start int) ([]Group, error) {
	s := scanner{src: src, pos: start}

	var groups []Group
	for {
		s.skipSpaces()
		if s.eof() {
			break
		}
		if s.peek() != '(' {
			return nil, &ParseError{Kind: UnexpectedToken, Offset: s.pos, Detail: "expected '('"}
		}
		open := s.pos
		s.pos++

		lexicals, err := s.parseLexicals(open)
		if err != nil {
			return nil, err
		}
		if len(lexicals) == 0 {
			return nil, &ParseError{Kind: UnexpectedToken, Offset: open, Detail: "empty group"}
		}

		g := Group{Index: len(groups) + 1, Lexicals: lexicals}
		if err := s.parseFeatureClause(&g); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	if len(groups) == 0 {
		return nil, &ParseError{Kind: UnexpectedToken, Offset: start, Detail: "empty template"}
	}
	return groups, nil
}

// parseLexicals consumes slot tokens up to the closing parenthesis.
// The scanner is positioned just after '(' on entry and just after ')'
// on return.
func (s *scanner) parseLexicals(open int) ([]LexicalSpec, error) {
	var lexicals []LexicalSpec
	for {
		s.skipSpaces()
		if s.eof() {
			return nil, &ParseError{Kind: UnclosedGroup, Offset: open, Detail: "missing ')'"}
		}
		if s.peek() == ')' {
			s.pos++
			return lexicals, nil
		}

		nameStart := s.pos
		name := s.word()
		if name == "" {
			return nil, &ParseError{Kind: UnexpectedToken, Offset: s.pos, Detail: "expected part-of-speech name"}
		}
		lex := LexicalSpec{Name: name, Offset: nameStart}

		if !s.eof() && s.peek() == '{' {
			brace := s.pos
			s.pos++
			body, end, ok := s.until('}')
			if !ok {
				return nil, &ParseError{Kind: UnclosedBrace, Offset: brace, Detail: "missing '}'"}
			}
			s.pos = end + 1
			lex.Overrides = splitFeatures(body, brace+1)
		}
		lexicals = append(lexicals, lex)
	}
}

// parseFeatureClause consumes the '@{...}' or '@$N' suffix of a group.
func (s *scanner) parseFeatureClause(g *Group) error {
	if s.eof() || s.peek() != '@' {
		return &ParseError{Kind: UnexpectedToken, Offset: s.pos, Detail: "expected '@' after group"}
	}
	s.pos++
	if s.eof() {
		return &ParseError{Kind: UnexpectedToken, Offset: s.pos, Detail: "expected feature list or reference after '@'"}
	}

	switch s.peek() {
	case '{':
		brace := s.pos
		s.pos++
		body, end, ok := s.until('}')
		if !ok {
			return &ParseError{Kind: UnclosedBrace, Offset: brace, Detail: "missing '}'"}
		}
		s.pos = end + 1
		g.Features = splitFeatures(body, brace+1)
		return nil
	case '$':
		s.pos++
		digStart := s.pos
		for !s.eof() && s.peek() >= '0' && s.peek() <= '9' {
			s.pos++
		}
		if s.pos == digStart {
			return &ParseError{Kind: UnexpectedToken, Offset: digStart, Detail: "expected group number after '$'"}
		}
		n, err := strconv.Atoi(s.src[digStart:s.pos])
		if err != nil || n < 1 {
			return &ParseError{Kind: UnexpectedToken, Offset: digStart, Detail: "invalid group reference"}
		}
		g.Ref = n
		return nil
	default:
		return &ParseError{Kind: UnexpectedToken, Offset: s.pos, Detail: "expected '{' or '$' after '@'"}
	}
}
