package nbt

import (
	"strconv"
	"strings"
)

// Format renders tag in the game's stringified form (SNBT) on one line.
func Format(tag Tag) string {
	var sb strings.Builder
	p := printer{sb: &sb}
	p.tag(tag, 0)

	return sb.String()
}

// FormatIndent renders tag as SNBT with one entry per line, nesting each
// level by indent.
func FormatIndent(tag Tag, indent string) string {
	var sb strings.Builder
	p := printer{sb: &sb, indent: indent}
	p.tag(tag, 0)

	return sb.String()
}

type printer struct {
	sb     *strings.Builder
	indent string
}

func (p *printer) tag(tag Tag, level int) {
	switch v := tag.(type) {
	case Byte:
		p.sb.WriteString(strconv.FormatInt(int64(v), 10))
		p.sb.WriteByte('b')
	case Short:
		p.sb.WriteString(strconv.FormatInt(int64(v), 10))
		p.sb.WriteByte('s')
	case Int:
		p.sb.WriteString(strconv.FormatInt(int64(v), 10))
	case Long:
		p.sb.WriteString(strconv.FormatInt(int64(v), 10))
		p.sb.WriteByte('L')
	case Float:
		p.sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
		p.sb.WriteByte('f')
	case Double:
		p.sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 64))
		p.sb.WriteByte('d')
	case String:
		p.sb.WriteString(quote(string(v)))
	case ByteArray:
		p.sb.WriteString("[B;")
		for i, x := range v {
			if i > 0 {
				p.sb.WriteByte(',')
			}
			p.sb.WriteString(strconv.FormatInt(int64(int8(x)), 10)) //nolint:gosec
			p.sb.WriteByte('b')
		}
		p.sb.WriteByte(']')
	case IntArray:
		p.sb.WriteString("[I;")
		for i, x := range v {
			if i > 0 {
				p.sb.WriteByte(',')
			}
			p.sb.WriteString(strconv.FormatInt(int64(x), 10))
		}
		p.sb.WriteByte(']')
	case LongArray:
		p.sb.WriteString("[L;")
		for i, x := range v {
			if i > 0 {
				p.sb.WriteByte(',')
			}
			p.sb.WriteString(strconv.FormatInt(x, 10))
			p.sb.WriteByte('L')
		}
		p.sb.WriteByte(']')
	case *List:
		p.sb.WriteByte('[')
		for i, item := range v.items {
			p.sep(i, level+1)
			p.tag(item, level+1)
		}
		p.close(len(v.items), level, ']')
	case *Compound:
		p.sb.WriteByte('{')
		for i, key := range v.keys {
			p.sep(i, level+1)
			p.sb.WriteString(quoteKey(key))
			p.sb.WriteByte(':')
			if p.indent != "" {
				p.sb.WriteByte(' ')
			}
			p.tag(v.vals[i], level+1)
		}
		p.close(len(v.keys), level, '}')
	case nil:
		p.sb.WriteString("null")
	}
}

func (p *printer) sep(i, level int) {
	if i > 0 {
		p.sb.WriteByte(',')
	}
	if p.indent != "" {
		p.sb.WriteByte('\n')
		p.sb.WriteString(strings.Repeat(p.indent, level))
	}
}

func (p *printer) close(n, level int, end byte) {
	if p.indent != "" && n > 0 {
		p.sb.WriteByte('\n')
		p.sb.WriteString(strings.Repeat(p.indent, level))
	}
	p.sb.WriteByte(end)
}

func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')

	return sb.String()
}

// quoteKey leaves keys made of [A-Za-z0-9._+-] bare, as the game does.
func quoteKey(key string) string {
	if key == "" {
		return `""`
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		bare := c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
			c == '.' || c == '_' || c == '+' || c == '-'
		if !bare {
			return quote(key)
		}
	}

	return key
}
