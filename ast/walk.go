package ast

// Inspect traverses the tree rooted at n in depth-first source order,
// calling fn for every node. If fn returns false the children of that
// node are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, fn)
	}
}

// Children returns the direct child nodes of n in source order. Nil
// optional children are omitted.
func Children(n Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, c := range nodes {
			if c != nil && !isNilNode(c) {
				out = append(out, c)
			}
		}
	}

	switch nd := n.(type) {
	case *SourceFile:
		add(nd.Statements...)
	case *QualifiedName:
		add(nd.Left, nd.Right)
	case *Parameter:
		add(nd.Name, nd.Type)
	case *PropertySignature:
		add(nd.Name, nd.Type)
	case *MethodSignature:
		add(nd.Name)
		add(typeParams(nd.TypeParameters)...)
		add(params(nd.Parameters)...)
		add(nd.Type)
	case *IndexSignature:
		add(params(nd.Parameters)...)
		add(nd.Type)
	case *CallSignature:
		add(typeParams(nd.TypeParameters)...)
		add(params(nd.Parameters)...)
		add(nd.Type)
	case *AccessorSignature:
		add(nd.Name)
		add(params(nd.Parameters)...)
		add(nd.Type)
	case *TypeParameter:
		add(nd.Name, nd.Constraint, nd.Default)
	case *TypeReference:
		add(nd.TypeName)
		add(nd.TypeArguments...)
	case *FunctionType:
		add(typeParams(nd.TypeParameters)...)
		add(params(nd.Parameters)...)
		add(nd.Type)
	case *TypeLiteral:
		add(nd.Members...)
	case *ArrayType:
		add(nd.ElementType)
	case *TupleType:
		add(nd.Elements...)
	case *NamedTupleMember:
		add(nd.Name, nd.Type)
	case *OptionalType:
		add(nd.Type)
	case *RestType:
		add(nd.Type)
	case *UnionType:
		add(nd.Types...)
	case *IntersectionType:
		add(nd.Types...)
	case *TypeOperator:
		add(nd.Type)
	case *IndexedAccessType:
		add(nd.ObjectType, nd.IndexType)
	case *TypeQuery:
		add(nd.ExprName)
	case *ParenthesizedType:
		add(nd.Type)
	case *MappedType:
		add(nd.TypeParameter, nd.NameType, nd.Type)
	case *ConditionalType:
		add(nd.CheckType, nd.ExtendsType, nd.TrueType, nd.FalseType)
	case *InferType:
		add(nd.TypeParameter)
	case *TypePredicate:
		add(nd.ParameterName, nd.Type)
	case *InterfaceDeclaration:
		add(nd.Name)
		add(typeParams(nd.TypeParameters)...)
		for _, h := range nd.Heritage {
			add(h)
		}
		add(nd.Members...)
	case *TypeAliasDeclaration:
		add(nd.Name)
		add(typeParams(nd.TypeParameters)...)
		add(nd.Type)
	case *ExpressionWithTypeArguments:
		add(nd.Expression)
		add(nd.TypeArguments...)
	}
	return out
}

func params(ps []*Parameter) []Node {
	out := make([]Node, len(ps))
	for i, p := range ps {
		out[i] = p
	}
	return out
}

func typeParams(ps []*TypeParameter) []Node {
	out := make([]Node, len(ps))
	for i, p := range ps {
		out[i] = p
	}
	return out
}

// isNilNode catches typed nil pointers stored in a Node interface.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case *Identifier:
		return v == nil
	case *TypeParameter:
		return v == nil
	case *Parameter:
		return v == nil
	case *ExpressionWithTypeArguments:
		return v == nil
	}
	return false
}
