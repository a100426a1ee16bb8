package reader

import (
	"strconv"

	"github.com/volsungdenichor/edn/value"
)

// Parse turns text into a single value.Value. Two or more top-level
// forms are wrapped into a synthetic (do form1 form2 ...) List; empty
// input yields Nil.
func Parse(text string) (value.Value, error) {
	tokens, err := tokenize(text)
	if err != nil {
		return value.Nil, err
	}

	p := &parser{tokens: tokens}
	var forms []value.Value
	for !p.eof() {
		v, err := p.readForm()
		if err != nil {
			return value.Nil, err
		}
		forms = append(forms, v)
	}

	switch len(forms) {
	case 0:
		return value.Nil, nil
	case 1:
		return forms[0], nil
	default:
		items := append([]value.Value{value.Symbol("do")}, forms...)
		return value.List(items), nil
	}
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) eof() bool { return p.pos >= len(p.tokens) }

func (p *parser) peek() (Token, bool) {
	if p.eof() {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (Token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

func (p *parser) lastLoc() Location {
	if p.pos > 0 {
		return p.tokens[p.pos-1].Loc
	}
	return Location{}
}

func (p *parser) readForm() (value.Value, error) {
	t, ok := p.next()
	if !ok {
		return value.Nil, errAt(ErrUnexpectedEnd, p.lastLoc(), "expected a form")
	}

	switch t.Kind {
	case QuoteTok:
		inner, err := p.readForm()
		if err != nil {
			return value.Nil, err
		}
		return value.Quoted(inner), nil

	case OpenParen:
		items, err := p.readUntil(CloseParen, "(", t.Loc)
		if err != nil {
			return value.Nil, err
		}
		return value.List(items), nil

	case OpenBracket:
		items, err := p.readUntil(CloseBracket, "[", t.Loc)
		if err != nil {
			return value.Nil, err
		}
		return value.Vector(items), nil

	case OpenBrace:
		items, err := p.readUntil(CloseBrace, "{", t.Loc)
		if err != nil {
			return value.Nil, err
		}
		return toMap(items, t.Loc)

	case CloseParen, CloseBracket, CloseBrace:
		return value.Nil, errAt(ErrStrayClose, t.Loc, "")

	case Hash:
		return p.readHash(t.Loc)

	default:
		return p.readAtom(t)
	}
}

func (p *parser) readHash(hashLoc Location) (value.Value, error) {
	next, ok := p.peek()
	if !ok {
		return value.Nil, errAt(ErrUnexpectedEnd, hashLoc, "expected '{' or a symbol after '#'")
	}

	if next.Kind == OpenBrace {
		p.next()
		items, err := p.readUntil(CloseBrace, "{", next.Loc)
		if err != nil {
			return value.Nil, err
		}
		return value.Set(items), nil
	}

	form, err := p.readForm()
	if err != nil {
		return value.Nil, err
	}
	tag, ok := form.AsSymbol()
	if !ok {
		return value.Nil, errAt(ErrBadHashForm, hashLoc, "")
	}
	if tag == "" {
		return value.Nil, errAt(ErrEmptyTag, hashLoc, "")
	}

	payload, err := p.readForm()
	if err != nil {
		return value.Nil, err
	}
	return value.Tagged(tag, payload), nil
}

func (p *parser) readUntil(close TokenKind, opener string, openLoc Location) ([]value.Value, error) {
	var items []value.Value
	for {
		t, ok := p.peek()
		if !ok {
			loc := openLoc
			return nil, &ReaderError{Kind: ErrUnterminatedCollection, Loc: p.lastLoc(), Opening: &loc}
		}
		if t.Kind == close {
			p.next()
			return items, nil
		}
		v, err := p.readForm()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

func toMap(items []value.Value, openLoc Location) (value.Value, error) {
	if len(items)%2 != 0 {
		return value.Nil, errAt(ErrOddMap, openLoc, "")
	}
	entries := make([]value.MapEntry, 0, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		entries = append(entries, value.MapEntry{Key: items[i], Value: items[i+1]})
	}
	return value.Map(entries), nil
}

func (p *parser) readAtom(t Token) (value.Value, error) {
	switch t.Kind {
	case QuotedString:
		return value.String(t.Text), nil

	case IntegerTok:
		n, err := strconv.ParseInt(t.Text, 10, 32)
		if err != nil {
			return value.Nil, errAt(ErrBadNumber, t.Loc, "'"+t.Text+"'")
		}
		return value.Int(int32(n)), nil

	case FloatTok:
		f, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return value.Nil, errAt(ErrBadNumber, t.Loc, "'"+t.Text+"'")
		}
		return value.Float(f), nil

	case CharacterTok:
		runes := []rune(t.Text)
		if len(runes) == 1 {
			return value.Char(runes[0]), nil
		}
		if r, ok := namedChars[t.Text]; ok {
			return value.Char(r), nil
		}
		return value.Nil, errAt(ErrBadCharacterName, t.Loc, t.Text)

	case KeywordTok:
		return value.Keyword(t.Text), nil

	case SymbolTok:
		switch t.Text {
		case "nil":
			return value.Nil, nil
		case "true":
			return value.Bool(true), nil
		case "false":
			return value.Bool(false), nil
		default:
			return value.Symbol(t.Text), nil
		}

	default:
		return value.Nil, errAt(ErrBadHashForm, t.Loc, "unexpected token '"+t.Text+"'")
	}
}
