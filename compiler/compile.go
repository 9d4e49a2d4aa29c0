package compiler

import "github.com/rubiojr/shapegen/ast"

// primitives maps keyword kinds to the names ts-interface-checker knows as
// built-in types.
var primitives = map[ast.Kind]string{
	ast.KindAnyKeyword:       "any",
	ast.KindNumberKeyword:    "number",
	ast.KindObjectKeyword:    "object",
	ast.KindBooleanKeyword:   "boolean",
	ast.KindStringKeyword:    "string",
	ast.KindSymbolKeyword:    "symbol",
	ast.KindThisType:         "this",
	ast.KindVoidKeyword:      "void",
	ast.KindUndefinedKeyword: "undefined",
	ast.KindNullKeyword:      "null",
	ast.KindNeverKeyword:     "never",
}

// nodeCompiler holds the state of one file's compilation.
type nodeCompiler struct {
	resolver SymbolResolver
	wrapper  string
	manifest Manifest
	skipped  int
}

func (c *nodeCompiler) file(f *ast.SourceFile) error {
	for _, stmt := range f.Statements {
		var (
			name string
			e    Expr
			err  error
		)
		switch stmt.Kind() {
		case ast.KindInterfaceDeclaration:
			name, e, err = c.interfaceDecl(stmt.(*ast.InterfaceDeclaration))
		case ast.KindTypeAliasDeclaration:
			name, e, err = c.aliasDecl(stmt.(*ast.TypeAliasDeclaration))
		default:
			c.skipped++
			continue
		}
		if err != nil {
			return err
		}
		if err := c.manifest.Add(name, e, stmt.Pos()); err != nil {
			return err
		}
	}
	return nil
}

func (c *nodeCompiler) interfaceDecl(d *ast.InterfaceDeclaration) (string, Expr, error) {
	extends := make([]Expr, 0, len(d.Heritage))
	for _, h := range d.Heritage {
		e, err := c.expr(h)
		if err != nil {
			return "", nil, err
		}
		extends = append(extends, e)
	}
	members, err := c.members(d.Members)
	if err != nil {
		return "", nil, err
	}
	return resolveName(c.resolver, d.Name), Iface{Extends: extends, Members: members}, nil
}

func (c *nodeCompiler) aliasDecl(d *ast.TypeAliasDeclaration) (string, Expr, error) {
	e, err := c.expr(d.Type)
	if err != nil {
		return "", nil, err
	}
	return resolveName(c.resolver, d.Name), e, nil
}

func (c *nodeCompiler) members(nodes []ast.Node) ([]Member, error) {
	members := make([]Member, 0, len(nodes))
	for _, n := range nodes {
		m, err := c.member(n)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

func (c *nodeCompiler) member(n ast.Node) (Member, error) {
	switch n.Kind() {
	case ast.KindPropertySignature:
		p := n.(*ast.PropertySignature)
		t, err := c.typeOrAny(p.Type)
		if err != nil {
			return Member{}, err
		}
		if p.Optional {
			t = Opt{Inner: t}
		}
		return Member{Name: resolveName(c.resolver, p.Name), Type: t}, nil
	case ast.KindMethodSignature:
		m := n.(*ast.MethodSignature)
		fn, err := c.function(m.Parameters, m.Type)
		if err != nil {
			return Member{}, err
		}
		return Member{Name: resolveName(c.resolver, m.Name), Type: fn}, nil
	}
	return Member{}, unsupported(n)
}

func (c *nodeCompiler) function(params []*ast.Parameter, result ast.Node) (Func, error) {
	ret, err := c.typeOrAny(result)
	if err != nil {
		return Func{}, err
	}
	fn := Func{Result: ret, Params: make([]Param, 0, len(params))}
	for _, p := range params {
		param, err := c.param(p)
		if err != nil {
			return Func{}, err
		}
		fn.Params = append(fn.Params, param)
	}
	return fn, nil
}

func (c *nodeCompiler) param(p *ast.Parameter) (Param, error) {
	t, err := c.typeOrAny(p.Type)
	if err != nil {
		return Param{}, err
	}
	return Param{Name: resolveName(c.resolver, p.Name), Type: t, Optional: p.Optional}, nil
}

func (c *nodeCompiler) typeOrAny(n ast.Node) (Expr, error) {
	if n == nil {
		return refAny, nil
	}
	return c.expr(n)
}

// expr compiles a node found below the top level. Every kind is listed so
// that a newly added kind shows up here rather than in a silent default.
func (c *nodeCompiler) expr(n ast.Node) (Expr, error) {
	switch k := n.Kind(); k {
	case ast.KindIdentifier:
		return Ref{Name: n.(*ast.Identifier).Name}, nil

	case ast.KindQualifiedName:
		return Ref{Name: entityName(n)}, nil

	case ast.KindParameter:
		return c.param(n.(*ast.Parameter))

	case ast.KindTypeReference:
		ref := n.(*ast.TypeReference)
		switch {
		case len(ref.TypeArguments) == 0:
			return c.expr(ref.TypeName)
		case len(ref.TypeArguments) == 1 && c.wrapper != "" && entityName(ref.TypeName) == c.wrapper:
			return c.expr(ref.TypeArguments[0])
		}
		return nil, &UnsupportedFeatureError{Pos: n.Pos(), Text: n.Text()}

	case ast.KindFunctionType:
		fn := n.(*ast.FunctionType)
		return c.function(fn.Parameters, fn.Type)

	case ast.KindTypeLiteral:
		members, err := c.members(n.(*ast.TypeLiteral).Members)
		if err != nil {
			return nil, err
		}
		return Iface{Extends: []Expr{}, Members: members}, nil

	case ast.KindArrayType:
		elem, err := c.expr(n.(*ast.ArrayType).ElementType)
		if err != nil {
			return nil, err
		}
		return Array{Elem: elem}, nil

	case ast.KindTupleType:
		elems, err := c.list(n.(*ast.TupleType).Elements)
		if err != nil {
			return nil, err
		}
		return Tuple{Elems: elems}, nil

	case ast.KindUnionType:
		members, err := c.list(n.(*ast.UnionType).Types)
		if err != nil {
			return nil, err
		}
		return Union{Members: members}, nil

	case ast.KindLiteralType:
		return Literal{Raw: n.Text()}, nil

	case ast.KindExpressionWithTypeArguments:
		return c.expr(n.(*ast.ExpressionWithTypeArguments).Expression)

	case ast.KindParenthesizedType:
		return c.expr(n.(*ast.ParenthesizedType).Type)

	case ast.KindAnyKeyword, ast.KindNumberKeyword, ast.KindObjectKeyword,
		ast.KindBooleanKeyword, ast.KindStringKeyword, ast.KindSymbolKeyword,
		ast.KindThisType, ast.KindVoidKeyword, ast.KindUndefinedKeyword,
		ast.KindNullKeyword, ast.KindNeverKeyword:
		return Ref{Name: primitives[k]}, nil

	case ast.KindInvalid, ast.KindSourceFile,
		ast.KindStringLiteral, ast.KindNumericLiteral, ast.KindComputedPropertyName,
		ast.KindObjectBindingPattern, ast.KindArrayBindingPattern,
		ast.KindPropertySignature, ast.KindMethodSignature, ast.KindIndexSignature,
		ast.KindCallSignature, ast.KindConstructSignature,
		ast.KindGetAccessor, ast.KindSetAccessor, ast.KindTypeParameter,
		ast.KindConstructorType, ast.KindNamedTupleMember, ast.KindOptionalType,
		ast.KindRestType, ast.KindIntersectionType, ast.KindTemplateLiteralType,
		ast.KindTypeOperator, ast.KindIndexedAccessType, ast.KindTypeQuery,
		ast.KindMappedType, ast.KindConditionalType, ast.KindInferType,
		ast.KindTypePredicate, ast.KindUnknownKeyword, ast.KindBigIntKeyword,
		ast.KindInterfaceDeclaration, ast.KindTypeAliasDeclaration,
		ast.KindEnumDeclaration, ast.KindClassDeclaration, ast.KindFunctionDeclaration,
		ast.KindVariableStatement, ast.KindImportDeclaration, ast.KindExportDeclaration,
		ast.KindExportAssignment, ast.KindModuleDeclaration, ast.KindExpressionStatement:
		return nil, unsupported(n)
	}
	return nil, unsupported(n)
}

func (c *nodeCompiler) list(nodes []ast.Node) ([]Expr, error) {
	out := make([]Expr, 0, len(nodes))
	for _, n := range nodes {
		e, err := c.expr(n)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func unsupported(n ast.Node) error {
	return &UnsupportedNodeError{Kind: n.Kind(), Pos: n.Pos(), Text: n.Text()}
}

// entityName spells a type name as dotted identifiers, ignoring any
// whitespace or comments in the source.
func entityName(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Identifier:
		return v.Name
	case *ast.QualifiedName:
		return entityName(v.Left) + "." + v.Right.Name
	}
	return n.Text()
}
