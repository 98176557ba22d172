package template

// parseV1 parses the bracket notation. Each bracket holds one lexical
// slot and becomes its own group:
//
//	[noun:accusative:singular] [verb:present:*number*]
func parseV1(src string, start int) ([]Group, error) {
	s := scanner{src: src, pos: start}

	var groups []Group
	for {
		s.skipSpaces()
		if s.eof() {
			break
		}
		if s.peek() != '[' {
			return nil, &ParseError{Kind: UnexpectedToken, Offset: s.pos, Detail: "expected '['"}
		}
		open := s.pos
		s.pos++

		body, end, ok := s.until(']')
		if !ok {
			return nil, &ParseError{Kind: UnclosedGroup, Offset: open, Detail: "missing ']'"}
		}
		s.pos = end + 1

		toks := splitFeatures(body, open+1)
		if len(toks) == 0 {
			return nil, &ParseError{Kind: UnexpectedToken, Offset: open, Detail: "empty group"}
		}

		groups = append(groups, Group{
			Index: len(groups) + 1,
			Lexicals: []LexicalSpec{{
				Name:   toks[0].Text,
				Offset: toks[0].Offset,
			}},
			Features: toks[1:],
		})
	}

	if len(groups) == 0 {
		return nil, &ParseError{Kind: UnexpectedToken, Offset: start, Detail: "empty template"}
	}
	return groups, nil
}
