package ast

import "fmt"

// Node is the interface for all declaration-tree nodes.
type Node interface {
	Kind() Kind
	Pos() Position
	Text() string
}

// Position is a location in a source file.
type Position struct {
	Filename string
	Offset   int // byte offset, 0-based
	Line     int // 1-based
	Column   int // 1-based
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Base provides the position and raw source text shared by all nodes.
type Base struct {
	Start  Position
	Source string // exact source text of the node
}

func (b Base) Pos() Position { return b.Start }
func (b Base) Text() string  { return b.Source }

// SourceFile is the root node: one whole declaration file.
type SourceFile struct {
	Base
	FileName   string
	Statements []Node
}

func (*SourceFile) Kind() Kind { return KindSourceFile }

// Identifier is a plain name, used both as a type name and as a
// declaration name.
type Identifier struct {
	Base
	Name string
}

func (*Identifier) Kind() Kind { return KindIdentifier }

// QualifiedName is a dotted name such as ns.Type.
type QualifiedName struct {
	Base
	Left  Node // *Identifier or *QualifiedName
	Right *Identifier
}

func (*QualifiedName) Kind() Kind { return KindQualifiedName }

// StringLiteral is a quoted property name. Value holds the unquoted form.
type StringLiteral struct {
	Base
	Value string
}

func (*StringLiteral) Kind() Kind { return KindStringLiteral }

// NumericLiteral is a numeric property name, kept as written.
type NumericLiteral struct {
	Base
	Value string
}

func (*NumericLiteral) Kind() Kind { return KindNumericLiteral }

// ComputedPropertyName is a bracketed name such as [Symbol.iterator].
type ComputedPropertyName struct {
	Base
	Expression string
}

func (*ComputedPropertyName) Kind() Kind { return KindComputedPropertyName }

// BindingPattern is a destructured parameter name ({a, b} or [a, b]).
type BindingPattern struct {
	Base
	Array bool
}

func (b *BindingPattern) Kind() Kind {
	if b.Array {
		return KindArrayBindingPattern
	}
	return KindObjectBindingPattern
}

// Parameter is one parameter of a method, function type or signature.
type Parameter struct {
	Base
	Name     Node // *Identifier or *BindingPattern
	Type     Node // nil when untyped
	Optional bool
	Rest     bool
}

func (*Parameter) Kind() Kind { return KindParameter }

// PropertySignature is `name?: Type` inside an interface or type literal.
type PropertySignature struct {
	Base
	Name     Node // *Identifier, *StringLiteral, *NumericLiteral or *ComputedPropertyName
	Type     Node // nil when untyped
	Optional bool
	Readonly bool
}

func (*PropertySignature) Kind() Kind { return KindPropertySignature }

// MethodSignature is `name(params): Type` inside an interface or type literal.
type MethodSignature struct {
	Base
	Name           Node
	TypeParameters []*TypeParameter
	Parameters     []*Parameter
	Type           Node // nil when the return type is omitted
	Optional       bool
}

func (*MethodSignature) Kind() Kind { return KindMethodSignature }

// IndexSignature is `[key: K]: V`.
type IndexSignature struct {
	Base
	Parameters []*Parameter
	Type       Node
	Readonly   bool
}

func (*IndexSignature) Kind() Kind { return KindIndexSignature }

// CallSignature is `(params): Type`, or `new (params): Type` when
// Construct is set.
type CallSignature struct {
	Base
	TypeParameters []*TypeParameter
	Parameters     []*Parameter
	Type           Node
	Construct      bool
}

func (c *CallSignature) Kind() Kind {
	if c.Construct {
		return KindConstructSignature
	}
	return KindCallSignature
}

// AccessorSignature is `get name(): T` or `set name(v: T)`.
type AccessorSignature struct {
	Base
	Name       Node
	Parameters []*Parameter
	Type       Node
	Setter     bool
}

func (a *AccessorSignature) Kind() Kind {
	if a.Setter {
		return KindSetAccessor
	}
	return KindGetAccessor
}

// TypeParameter is one entry of a `<T extends C = D>` list.
type TypeParameter struct {
	Base
	Name       *Identifier
	Constraint Node
	Default    Node
}

func (*TypeParameter) Kind() Kind { return KindTypeParameter }

// TypeReference names a declared type, optionally with type arguments.
type TypeReference struct {
	Base
	TypeName      Node // *Identifier or *QualifiedName
	TypeArguments []Node
}

func (*TypeReference) Kind() Kind { return KindTypeReference }

// FunctionType is `(params) => Type`, or `new (params) => Type` when
// Constructor is set.
type FunctionType struct {
	Base
	TypeParameters []*TypeParameter
	Parameters     []*Parameter
	Type           Node
	Constructor    bool
}

func (f *FunctionType) Kind() Kind {
	if f.Constructor {
		return KindConstructorType
	}
	return KindFunctionType
}

// TypeLiteral is an anonymous object type `{ ... }`.
type TypeLiteral struct {
	Base
	Members []Node
}

func (*TypeLiteral) Kind() Kind { return KindTypeLiteral }

// ArrayType is `T[]`.
type ArrayType struct {
	Base
	ElementType Node
}

func (*ArrayType) Kind() Kind { return KindArrayType }

// TupleType is `[A, B, ...]`.
type TupleType struct {
	Base
	Elements []Node
}

func (*TupleType) Kind() Kind { return KindTupleType }

// NamedTupleMember is a labelled tuple element `name?: T`.
type NamedTupleMember struct {
	Base
	Name     *Identifier
	Type     Node
	Optional bool
	Rest     bool
}

func (*NamedTupleMember) Kind() Kind { return KindNamedTupleMember }

// OptionalType is a tuple element `T?`.
type OptionalType struct {
	Base
	Type Node
}

func (*OptionalType) Kind() Kind { return KindOptionalType }

// RestType is a tuple element `...T`.
type RestType struct {
	Base
	Type Node
}

func (*RestType) Kind() Kind { return KindRestType }

// UnionType is `A | B | ...`.
type UnionType struct {
	Base
	Types []Node
}

func (*UnionType) Kind() Kind { return KindUnionType }

// IntersectionType is `A & B & ...`.
type IntersectionType struct {
	Base
	Types []Node
}

func (*IntersectionType) Kind() Kind { return KindIntersectionType }

// LiteralType is a string, numeric or boolean literal used as a type.
// Its raw spelling is available through Text.
type LiteralType struct {
	Base
}

func (*LiteralType) Kind() Kind { return KindLiteralType }

// TemplateLiteralType is a template string type with substitutions.
type TemplateLiteralType struct {
	Base
}

func (*TemplateLiteralType) Kind() Kind { return KindTemplateLiteralType }

// TypeOperator is `keyof T`, `unique symbol` or `readonly T[]`.
type TypeOperator struct {
	Base
	Operator string
	Type     Node
}

func (*TypeOperator) Kind() Kind { return KindTypeOperator }

// IndexedAccessType is `T[K]`.
type IndexedAccessType struct {
	Base
	ObjectType Node
	IndexType  Node
}

func (*IndexedAccessType) Kind() Kind { return KindIndexedAccessType }

// TypeQuery is `typeof value`.
type TypeQuery struct {
	Base
	ExprName Node
}

func (*TypeQuery) Kind() Kind { return KindTypeQuery }

// ParenthesizedType is `(T)`.
type ParenthesizedType struct {
	Base
	Type Node
}

func (*ParenthesizedType) Kind() Kind { return KindParenthesizedType }

// MappedType is `{ [K in C as N]?: T }`. The modifier fields hold the
// modifier as written ("", "readonly", "-readonly", "?", "+?"...).
type MappedType struct {
	Base
	ReadonlyToken string
	TypeParameter *TypeParameter
	NameType      Node
	QuestionToken string
	Type          Node
}

func (*MappedType) Kind() Kind { return KindMappedType }

// ConditionalType is `C extends E ? T : F`.
type ConditionalType struct {
	Base
	CheckType   Node
	ExtendsType Node
	TrueType    Node
	FalseType   Node
}

func (*ConditionalType) Kind() Kind { return KindConditionalType }

// InferType is `infer T` inside a conditional type's extends clause.
type InferType struct {
	Base
	TypeParameter *TypeParameter
}

func (*InferType) Kind() Kind { return KindInferType }

// TypePredicate is a return type of the form `x is T` or `asserts x`.
type TypePredicate struct {
	Base
	Asserts       bool
	ParameterName *Identifier
	Type          Node
}

func (*TypePredicate) Kind() Kind { return KindTypePredicate }

// Keyword is a primitive keyword type such as `string` or `this`.
type Keyword struct {
	Base
	Keyword Kind
}

func (k *Keyword) Kind() Kind { return k.Keyword }

// Modifiers are the declaration keywords preceding a statement.
type Modifiers struct {
	Export  bool
	Default bool
	Declare bool
}

// InterfaceDeclaration is `interface Name<T> extends A, B { ... }`.
type InterfaceDeclaration struct {
	Base
	Modifiers
	Name           *Identifier
	TypeParameters []*TypeParameter
	Heritage       []*ExpressionWithTypeArguments
	Members        []Node
}

func (*InterfaceDeclaration) Kind() Kind { return KindInterfaceDeclaration }

// TypeAliasDeclaration is `type Name<T> = Type`.
type TypeAliasDeclaration struct {
	Base
	Modifiers
	Name           *Identifier
	TypeParameters []*TypeParameter
	Type           Node
}

func (*TypeAliasDeclaration) Kind() Kind { return KindTypeAliasDeclaration }

// ExpressionWithTypeArguments is one entry of an interface's extends list.
type ExpressionWithTypeArguments struct {
	Base
	Expression    Node // *Identifier or *QualifiedName
	TypeArguments []Node
}

func (*ExpressionWithTypeArguments) Kind() Kind { return KindExpressionWithTypeArguments }

// Statement is a value-level declaration or statement the parser keeps
// only as raw text (enums, classes, functions, variables, imports...).
type Statement struct {
	Base
	Modifiers
	Keyword Kind
	Leading string // leading keyword as written, e.g. "enum"
}

func (s *Statement) Kind() Kind { return s.Keyword }
