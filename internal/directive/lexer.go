package directive

import (
	"go/scanner"
	"go/token"

	"github.com/cockroachdb/errors"
)

// item is one comma-separated entry of a directive block.
type item struct {
	key  string
	text string

	hasValue bool
	valueTok token.Token
	value    string

	hasArgs bool
	args    []arg
}

type arg struct {
	text  string
	ident bool
}

// lexer walks a directive block with go/scanner. Automatic semicolons are
// dropped, so a block reads the same whether it came from one line or many.
type lexer struct {
	src  string
	file *token.File
	s    scanner.Scanner
	errs scanner.ErrorList

	pos token.Pos
	tok token.Token
	lit string
}

func newLexer(src string) *lexer {
	l := &lexer{src: src}
	fset := token.NewFileSet()
	l.file = fset.AddFile("directive", fset.Base(), len(src))
	l.s.Init(l.file, []byte(src), func(pos token.Position, msg string) {
		l.errs.Add(pos, msg)
	}, 0)
	l.next()
	return l
}

func (l *lexer) next() {
	for {
		l.pos, l.tok, l.lit = l.s.Scan()
		if l.tok == token.SEMICOLON && l.lit == "\n" {
			continue
		}
		return
	}
}

func (l *lexer) offset() int {
	return l.file.Offset(l.pos)
}

// end returns the offset just past the current token.
func (l *lexer) end() int {
	if l.lit != "" {
		return l.offset() + len(l.lit)
	}
	return l.offset() + len(l.tok.String())
}

func (l *lexer) errorf(format string, args ...any) error {
	return errors.Newf("at offset %d of %q: "+format, append([]any{l.offset(), l.src}, args...)...)
}

// parseItems splits a directive block into items. It only checks the block's
// structure; which items are allowed is up to the caller.
func parseItems(src string) ([]item, error) {
	l := newLexer(src)
	var items []item
	for l.tok != token.EOF {
		it, err := l.parseItem()
		if err != nil {
			return nil, err
		}
		if len(l.errs) > 0 {
			return nil, errors.Wrapf(l.errs.Err(), "invalid directive %q", src)
		}
		items = append(items, it)

		switch l.tok {
		case token.COMMA:
			l.next()
			if l.tok == token.EOF {
				return nil, l.errorf("trailing comma")
			}
		case token.EOF:
		default:
			return nil, l.errorf("expected ',' after %q, found %s", it.key, l.tok)
		}
	}
	if len(l.errs) > 0 {
		return nil, errors.Wrapf(l.errs.Err(), "invalid directive %q", src)
	}
	return items, nil
}

func (l *lexer) parseItem() (item, error) {
	if l.tok != token.IDENT {
		return item{}, l.errorf("expected a directive name, found %s", l.tok)
	}
	start := l.offset()
	it := item{key: l.lit}
	stop := l.end()
	l.next()

	switch l.tok {
	case token.ASSIGN:
		l.next()
		switch l.tok {
		case token.STRING, token.INT, token.FLOAT, token.CHAR, token.IMAG:
		default:
			return item{}, l.errorf("value of %q must be a literal, found %s", it.key, l.tok)
		}
		it.hasValue = true
		it.valueTok = l.tok
		it.value = l.lit
		stop = l.end()
		l.next()

	case token.LPAREN:
		args, end, err := l.parseArgs()
		if err != nil {
			return item{}, err
		}
		it.hasArgs = true
		it.args = args
		stop = end
	}

	it.text = l.src[start:stop]
	return it, nil
}

// parseArgs reads a parenthesized argument list, starting at '('. Nested
// parentheses are kept inside a single argument.
func (l *lexer) parseArgs() ([]arg, int, error) {
	l.next()
	var args []arg
	if l.tok == token.RPAREN {
		end := l.end()
		l.next()
		return args, end, nil
	}

	for {
		start := l.offset()
		stop := start
		depth := 0
		tokens := 0
		identOnly := true
	scan:
		for {
			switch l.tok {
			case token.EOF:
				return nil, 0, l.errorf("unbalanced parentheses")
			case token.LPAREN:
				depth++
			case token.RPAREN:
				if depth == 0 {
					break scan
				}
				depth--
			case token.COMMA:
				if depth == 0 {
					break scan
				}
			}
			if l.tok != token.IDENT {
				identOnly = false
			}
			tokens++
			stop = l.end()
			l.next()
		}
		if tokens == 0 {
			return nil, 0, l.errorf("empty argument")
		}
		args = append(args, arg{text: l.src[start:stop], ident: identOnly && tokens == 1})

		if l.tok == token.RPAREN {
			end := l.end()
			l.next()
			return args, end, nil
		}
		// comma
		l.next()
	}
}
