package compiler

import (
	"fmt"
	"strings"
)

const header = `/**
 * This module was automatically generated by ` + "`shapegen`" + `
 */
import * as t from "ts-interface-checker";
// tslint:disable:object-literal-key-quotes
`

// Print renders a compiled module as a TypeScript source file for
// ts-interface-checker.
func Print(m *Module) string {
	p := &tsPrinter{}
	p.printModule(m)
	return p.sb.String()
}

type tsPrinter struct {
	sb     strings.Builder
	indent int
}

func (p *tsPrinter) line(format string, args ...any) {
	p.writeIndent()
	fmt.Fprintf(&p.sb, format, args...)
	p.sb.WriteByte('\n')
}

func (p *tsPrinter) blank() {
	p.sb.WriteByte('\n')
}

func (p *tsPrinter) writeIndent() {
	for range p.indent {
		p.sb.WriteString("  ")
	}
}

func (p *tsPrinter) printModule(m *Module) {
	p.sb.WriteString(header)
	p.blank()

	for _, e := range m.Exports {
		p.line("export const %s = %s;", e.Name, p.exprStr(e.Expr))
		p.blank()
	}

	if len(m.Exports) == 0 {
		p.line("const exportedTypeSuite: t.ITypeSuite = {};")
	} else {
		p.line("const exportedTypeSuite: t.ITypeSuite = {")
		p.indent++
		for _, e := range m.Exports {
			p.line("%s,", e.Name)
		}
		p.indent--
		p.line("};")
	}
	p.line("export default exportedTypeSuite;")
}

func (p *tsPrinter) exprStr(e Expr) string {
	switch ex := e.(type) {
	case Ref:
		return jsQuote(ex.Name)
	case Opt:
		return "t.opt(" + p.exprStr(ex.Inner) + ")"
	case Param:
		if ex.Optional {
			return fmt.Sprintf("t.param(%s, %s, true)", jsQuote(ex.Name), p.exprStr(ex.Type))
		}
		return fmt.Sprintf("t.param(%s, %s)", jsQuote(ex.Name), p.exprStr(ex.Type))
	case Func:
		args := []string{p.exprStr(ex.Result)}
		for _, param := range ex.Params {
			args = append(args, p.exprStr(param))
		}
		return "t.func(" + strings.Join(args, ", ") + ")"
	case Iface:
		return p.ifaceStr(ex)
	case Array:
		return "t.array(" + p.exprStr(ex.Elem) + ")"
	case Tuple:
		return "t.tuple(" + p.listStr(ex.Elems) + ")"
	case Union:
		return "t.union(" + p.listStr(ex.Members) + ")"
	case Literal:
		return "t.lit(" + ex.Raw + ")"
	}
	return fmt.Sprintf("/* unknown expression %T */", e)
}

func (p *tsPrinter) listStr(es []Expr) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = p.exprStr(e)
	}
	return strings.Join(parts, ", ")
}

// ifaceStr renders the members one per line, each indented one level
// deeper than the line the iface starts on.
func (p *tsPrinter) ifaceStr(i Iface) string {
	var sb strings.Builder
	sb.WriteString("t.iface([" + p.listStr(i.Extends) + "], {")
	if len(i.Members) == 0 {
		sb.WriteString("})")
		return sb.String()
	}
	sb.WriteByte('\n')
	p.indent++
	for _, m := range i.Members {
		for range p.indent {
			sb.WriteString("  ")
		}
		sb.WriteString(jsQuote(m.Name) + ": " + p.exprStr(m.Type) + ",\n")
	}
	p.indent--
	for range p.indent {
		sb.WriteString("  ")
	}
	sb.WriteString("})")
	return sb.String()
}

// jsQuote returns s as a double-quoted JavaScript string literal.
func jsQuote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
