package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/rubiojr/shapegen/ast"
)

// lowerer turns the grammar tree into ast nodes. src is the original
// source; comment blanking keeps offsets identical, so raw node text is
// sliced from it.
type lowerer struct {
	src string
}

func position(p lexer.Position) ast.Position {
	return ast.Position{Filename: p.Filename, Offset: p.Offset, Line: p.Line, Column: p.Column}
}

// base slices the raw text between two grammar positions. A node that
// starts with an NLBracket token begins at a line break; the position is
// moved past the leading whitespace so it points at the first real byte.
func (l *lowerer) base(start, end lexer.Position) ast.Base {
	pos := position(start)
	s, e := start.Offset, end.Offset
	if e > len(l.src) {
		e = len(l.src)
	}
	if s < 0 || s >= e {
		return ast.Base{Start: pos}
	}
	raw := l.src[s:e]
	trimmed := strings.TrimLeft(raw, " \t\r\n\f\v")
	if skipped := raw[:len(raw)-len(trimmed)]; skipped != "" {
		pos.Offset += len(skipped)
		if nl := strings.LastIndexByte(skipped, '\n'); nl >= 0 {
			pos.Line += strings.Count(skipped, "\n")
			pos.Column = len(skipped) - nl
		} else {
			pos.Column += len(skipped)
		}
	}
	return ast.Base{Start: pos, Source: strings.TrimRight(trimmed, " \t\r\n\f\v")}
}

func (l *lowerer) file(name string, f *fileNode) *ast.SourceFile {
	sf := &ast.SourceFile{
		Base:     ast.Base{Start: ast.Position{Filename: name, Line: 1, Column: 1}, Source: l.src},
		FileName: name,
	}
	for _, s := range f.Statements {
		if n := l.statement(s); n != nil {
			sf.Statements = append(sf.Statements, n)
		}
	}
	return sf
}

func (l *lowerer) statement(s *statementNode) ast.Node {
	mods := modifiers(s.Modifiers)
	b := l.base(s.Pos, s.EndPos)
	switch {
	case s.Interface != nil:
		n := s.Interface
		decl := &ast.InterfaceDeclaration{
			Base:           b,
			Modifiers:      mods,
			Name:           l.ident(n.Name),
			TypeParameters: l.typeParams(n.TypeParams),
			Members:        l.members(n.Members),
		}
		for _, h := range n.Extends {
			decl.Heritage = append(decl.Heritage, &ast.ExpressionWithTypeArguments{
				Base:          l.base(h.Pos, h.EndPos),
				Expression:    l.entity(h.Name),
				TypeArguments: l.types(h.Args),
			})
		}
		return decl
	case s.Alias != nil:
		n := s.Alias
		return &ast.TypeAliasDeclaration{
			Base:           b,
			Modifiers:      mods,
			Name:           l.ident(n.Name),
			TypeParameters: l.typeParams(n.TypeParams),
			Type:           l.typ(n.Type),
		}
	case s.Opaque != nil:
		kind, lead := statementKind(mods, s.Opaque)
		return &ast.Statement{Base: b, Modifiers: mods, Keyword: kind, Leading: lead}
	}
	return nil
}

func modifiers(words []string) ast.Modifiers {
	var m ast.Modifiers
	for _, w := range words {
		switch w {
		case "export":
			m.Export = true
		case "default":
			m.Default = true
		case "declare":
			m.Declare = true
		}
	}
	return m
}

// statementKind classifies an opaque statement by its leading token.
func statementKind(mods ast.Modifiers, o *opaqueNode) (ast.Kind, string) {
	lead := o.Head.Token
	if o.Head.Group != nil {
		lead = strings.TrimSpace(o.Head.Group.Open)
	}
	var next string
	if len(o.Tail) > 0 {
		next = o.Tail[0].Token
	}

	switch lead {
	case "enum":
		return ast.KindEnumDeclaration, lead
	case "class", "abstract":
		return ast.KindClassDeclaration, lead
	case "function", "async":
		return ast.KindFunctionDeclaration, lead
	case "const":
		if next == "enum" {
			return ast.KindEnumDeclaration, lead
		}
		return ast.KindVariableStatement, lead
	case "let", "var", "using":
		return ast.KindVariableStatement, lead
	case "import":
		return ast.KindImportDeclaration, lead
	case "namespace", "module", "global":
		return ast.KindModuleDeclaration, lead
	case "{", "*":
		if mods.Export {
			return ast.KindExportDeclaration, lead
		}
	case "=":
		if mods.Export {
			return ast.KindExportAssignment, lead
		}
	}
	if mods.Export && mods.Default {
		return ast.KindExportAssignment, lead
	}
	return ast.KindExpressionStatement, lead
}

func (l *lowerer) ident(i *identNode) *ast.Identifier {
	if i == nil {
		return nil
	}
	return &ast.Identifier{Base: l.base(i.Pos, i.EndPos), Name: i.Name}
}

// entity lowers a dotted name into nested QualifiedName nodes.
func (l *lowerer) entity(e *entityNode) ast.Node {
	var n ast.Node = l.ident(e.Parts[0])
	for _, part := range e.Parts[1:] {
		n = &ast.QualifiedName{
			Base:  l.base(e.Parts[0].Pos, part.EndPos),
			Left:  n,
			Right: l.ident(part),
		}
	}
	return n
}

func (l *lowerer) typeParams(ps []*typeParamNode) []*ast.TypeParameter {
	var out []*ast.TypeParameter
	for _, p := range ps {
		out = append(out, &ast.TypeParameter{
			Base:       l.base(p.Pos, p.EndPos),
			Name:       l.ident(p.Name),
			Constraint: l.typ(p.Constraint),
			Default:    l.typ(p.Default),
		})
	}
	return out
}

func (l *lowerer) params(ps []*paramNode) []*ast.Parameter {
	var out []*ast.Parameter
	for _, p := range ps {
		out = append(out, &ast.Parameter{
			Base:     l.base(p.Pos, p.EndPos),
			Name:     l.binding(p.Name),
			Type:     l.typ(p.Type),
			Optional: p.Optional,
			Rest:     p.Rest,
		})
	}
	return out
}

func (l *lowerer) binding(b *bindingNode) ast.Node {
	base := l.base(b.Pos, b.EndPos)
	switch {
	case b.Object:
		return &ast.BindingPattern{Base: base}
	case b.Array:
		return &ast.BindingPattern{Base: base, Array: true}
	}
	return &ast.Identifier{Base: base, Name: b.Ident}
}

func (l *lowerer) members(ms []*memberNode) []ast.Node {
	var out []ast.Node
	for _, m := range ms {
		out = append(out, l.member(m))
	}
	return out
}

func (l *lowerer) member(m *memberNode) ast.Node {
	switch {
	case m.Index != nil:
		n := m.Index
		return &ast.IndexSignature{
			Base:       l.base(n.Pos, n.EndPos),
			Parameters: l.params(n.Params),
			Type:       l.typ(n.Type),
			Readonly:   n.Readonly,
		}
	case m.Call != nil:
		n := m.Call
		return &ast.CallSignature{
			Base:           l.base(n.Pos, n.EndPos),
			TypeParameters: l.typeParams(n.TypeParams),
			Parameters:     l.params(n.Params),
			Type:           l.returnType(n.Return),
			Construct:      n.New,
		}
	case m.Accessor != nil:
		n := m.Accessor
		return &ast.AccessorSignature{
			Base:       l.base(n.Pos, n.EndPos),
			Name:       l.propName(n.Name),
			Parameters: l.params(n.Params),
			Type:       l.returnType(n.Return),
			Setter:     n.Keyword == "set",
		}
	case m.Method != nil:
		n := m.Method
		return &ast.MethodSignature{
			Base:           l.base(n.Pos, n.EndPos),
			Name:           l.propName(n.Name),
			TypeParameters: l.typeParams(n.TypeParams),
			Parameters:     l.params(n.Params),
			Type:           l.returnType(n.Return),
			Optional:       n.Optional,
		}
	}
	n := m.Property
	return &ast.PropertySignature{
		Base:     l.base(n.Pos, n.EndPos),
		Name:     l.propName(n.Name),
		Type:     l.typ(n.Type),
		Optional: n.Optional,
		Readonly: n.Readonly,
	}
}

func (l *lowerer) propName(p *propNameNode) ast.Node {
	b := l.base(p.Pos, p.EndPos)
	switch {
	case p.Computed:
		expr := strings.TrimSpace(b.Source)
		expr = strings.TrimPrefix(expr, "[")
		expr = strings.TrimSuffix(expr, "]")
		return &ast.ComputedPropertyName{Base: b, Expression: strings.TrimSpace(expr)}
	case p.String != "":
		return &ast.StringLiteral{Base: b, Value: unquote(p.String)}
	case p.Number != "":
		return &ast.NumericLiteral{Base: b, Value: p.Number}
	}
	return &ast.Identifier{Base: b, Name: p.Ident}
}

func (l *lowerer) returnType(r *returnNode) ast.Node {
	if r == nil {
		return nil
	}
	if p := r.Predicate; p != nil {
		return &ast.TypePredicate{
			Base:          l.base(p.Pos, p.EndPos),
			Asserts:       p.Asserts,
			ParameterName: l.ident(p.Param),
			Type:          l.typ(p.Type),
		}
	}
	return l.typ(r.Type)
}

func (l *lowerer) types(ts []*typeNode) []ast.Node {
	var out []ast.Node
	for _, t := range ts {
		out = append(out, l.typ(t))
	}
	return out
}

func (l *lowerer) typ(t *typeNode) ast.Node {
	if t == nil {
		return nil
	}
	check := l.union(t.Check)
	if t.Extends == nil {
		return check
	}
	return &ast.ConditionalType{
		Base:        l.base(t.Pos, t.EndPos),
		CheckType:   check,
		ExtendsType: l.union(t.Extends),
		TrueType:    l.typ(t.True),
		FalseType:   l.typ(t.False),
	}
}

// union collapses a single member unless it was written with a leading
// bar, which still yields a one-member union.
func (l *lowerer) union(u *unionNode) ast.Node {
	if len(u.Types) == 1 && !u.Leading {
		return l.intersection(u.Types[0])
	}
	n := &ast.UnionType{Base: l.base(u.Pos, u.EndPos)}
	for _, t := range u.Types {
		n.Types = append(n.Types, l.intersection(t))
	}
	return n
}

func (l *lowerer) intersection(in *intersectionNode) ast.Node {
	if len(in.Types) == 1 && !in.Leading {
		return l.operator(in.Types[0])
	}
	n := &ast.IntersectionType{Base: l.base(in.Pos, in.EndPos)}
	for _, t := range in.Types {
		n.Types = append(n.Types, l.operator(t))
	}
	return n
}

func (l *lowerer) operator(o *operatorNode) ast.Node {
	switch {
	case o.Operand != nil:
		return &ast.TypeOperator{
			Base:     l.base(o.Pos, o.EndPos),
			Operator: o.Operator,
			Type:     l.operator(o.Operand),
		}
	case o.Infer != nil:
		n := o.Infer
		return &ast.InferType{
			Base: l.base(n.Pos, n.EndPos),
			TypeParameter: &ast.TypeParameter{
				Base:       l.base(n.Name.Pos, n.EndPos),
				Name:       l.ident(n.Name),
				Constraint: l.typ(n.Constraint),
			},
		}
	}
	return l.postfix(o.Postfix)
}

func (l *lowerer) postfix(p *postfixNode) ast.Node {
	n := l.primary(p.Primary)
	for _, s := range p.Suffixes {
		b := l.base(p.Pos, s.EndPos)
		if s.Index == nil {
			n = &ast.ArrayType{Base: b, ElementType: n}
			continue
		}
		n = &ast.IndexedAccessType{Base: b, ObjectType: n, IndexType: l.typ(s.Index)}
	}
	return n
}

func (l *lowerer) primary(p *primaryNode) ast.Node {
	b := l.base(p.Pos, p.EndPos)
	switch {
	case p.Function != nil:
		f := p.Function
		return &ast.FunctionType{
			Base:           b,
			TypeParameters: l.typeParams(f.TypeParams),
			Parameters:     l.params(f.Params),
			Type:           l.returnType(f.Return),
			Constructor:    f.New,
		}
	case p.Paren != nil:
		return &ast.ParenthesizedType{Base: b, Type: l.typ(p.Paren)}
	case p.Mapped != nil:
		m := p.Mapped
		return &ast.MappedType{
			Base:          b,
			ReadonlyToken: m.Readonly,
			TypeParameter: &ast.TypeParameter{
				Base:       l.base(m.Param.Pos, m.Constraint.EndPos),
				Name:       l.ident(m.Param),
				Constraint: l.typ(m.Constraint),
			},
			NameType:      l.typ(m.As),
			QuestionToken: m.Question,
			Type:          l.typ(m.Type),
		}
	case p.Object != nil:
		return &ast.TypeLiteral{Base: b, Members: l.members(p.Object.Members)}
	case p.Tuple != nil:
		n := &ast.TupleType{Base: b}
		for _, e := range p.Tuple.Elements {
			n.Elements = append(n.Elements, l.tupleElement(e))
		}
		return n
	case p.Query != nil:
		return &ast.TypeQuery{Base: b, ExprName: l.entity(p.Query)}
	case p.Literal != nil:
		if t := p.Literal.Template; t != "" && strings.Contains(t, "${") {
			return &ast.TemplateLiteralType{Base: b}
		}
		return &ast.LiteralType{Base: b}
	}
	return l.reference(p.Reference)
}

// reference resolves bare keyword names such as `string` or `this` to
// Keyword nodes; everything else is a TypeReference.
func (l *lowerer) reference(r *referenceNode) ast.Node {
	b := l.base(r.Pos, r.EndPos)
	if len(r.Args) == 0 && len(r.Name.Parts) == 1 {
		if k, ok := ast.KeywordKind(r.Name.Parts[0].Name); ok {
			return &ast.Keyword{Base: b, Keyword: k}
		}
	}
	return &ast.TypeReference{
		Base:          b,
		TypeName:      l.entity(r.Name),
		TypeArguments: l.types(r.Args),
	}
}

func (l *lowerer) tupleElement(e *tupleElemNode) ast.Node {
	b := l.base(e.Pos, e.EndPos)
	typ := l.typ(e.Type)
	if e.Label != nil {
		return &ast.NamedTupleMember{
			Base:     b,
			Name:     l.ident(e.Label),
			Type:     typ,
			Optional: e.LabelOptional || e.Optional,
			Rest:     e.Rest,
		}
	}
	if e.Optional {
		typ = &ast.OptionalType{Base: b, Type: typ}
	}
	if e.Rest {
		typ = &ast.RestType{Base: b, Type: typ}
	}
	return typ
}
