package ast

// Kind identifies the syntactic shape of a Node. The set is closed: the
// parser never produces a node whose kind is not listed here.
type Kind int

const (
	KindInvalid Kind = iota

	// Container
	KindSourceFile

	// Names
	KindIdentifier
	KindQualifiedName
	KindStringLiteral
	KindNumericLiteral
	KindComputedPropertyName
	KindObjectBindingPattern
	KindArrayBindingPattern

	// Members and parameters
	KindParameter
	KindPropertySignature
	KindMethodSignature
	KindIndexSignature
	KindCallSignature
	KindConstructSignature
	KindGetAccessor
	KindSetAccessor
	KindTypeParameter

	// Type expressions
	KindTypeReference
	KindFunctionType
	KindConstructorType
	KindTypeLiteral
	KindArrayType
	KindTupleType
	KindNamedTupleMember
	KindOptionalType
	KindRestType
	KindUnionType
	KindIntersectionType
	KindLiteralType
	KindTemplateLiteralType
	KindTypeOperator
	KindIndexedAccessType
	KindTypeQuery
	KindParenthesizedType
	KindMappedType
	KindConditionalType
	KindInferType
	KindTypePredicate

	// Keywords
	KindAnyKeyword
	KindNumberKeyword
	KindObjectKeyword
	KindBooleanKeyword
	KindStringKeyword
	KindSymbolKeyword
	KindThisType
	KindVoidKeyword
	KindUndefinedKeyword
	KindNullKeyword
	KindNeverKeyword
	KindUnknownKeyword
	KindBigIntKeyword

	// Type declarations
	KindInterfaceDeclaration
	KindTypeAliasDeclaration
	KindExpressionWithTypeArguments

	// Value-level statements
	KindEnumDeclaration
	KindClassDeclaration
	KindFunctionDeclaration
	KindVariableStatement
	KindImportDeclaration
	KindExportDeclaration
	KindExportAssignment
	KindModuleDeclaration
	KindExpressionStatement

	// KindTotal is the number of kinds defined.
	KindTotal = int(iota)
)

var kindNames = [...]string{
	KindInvalid:                     "Invalid",
	KindSourceFile:                  "SourceFile",
	KindIdentifier:                  "Identifier",
	KindQualifiedName:               "QualifiedName",
	KindStringLiteral:               "StringLiteral",
	KindNumericLiteral:              "NumericLiteral",
	KindComputedPropertyName:        "ComputedPropertyName",
	KindObjectBindingPattern:        "ObjectBindingPattern",
	KindArrayBindingPattern:         "ArrayBindingPattern",
	KindParameter:                   "Parameter",
	KindPropertySignature:           "PropertySignature",
	KindMethodSignature:             "MethodSignature",
	KindIndexSignature:              "IndexSignature",
	KindCallSignature:               "CallSignature",
	KindConstructSignature:          "ConstructSignature",
	KindGetAccessor:                 "GetAccessor",
	KindSetAccessor:                 "SetAccessor",
	KindTypeParameter:               "TypeParameter",
	KindTypeReference:               "TypeReference",
	KindFunctionType:                "FunctionType",
	KindConstructorType:             "ConstructorType",
	KindTypeLiteral:                 "TypeLiteral",
	KindArrayType:                   "ArrayType",
	KindTupleType:                   "TupleType",
	KindNamedTupleMember:            "NamedTupleMember",
	KindOptionalType:                "OptionalType",
	KindRestType:                    "RestType",
	KindUnionType:                   "UnionType",
	KindIntersectionType:            "IntersectionType",
	KindLiteralType:                 "LiteralType",
	KindTemplateLiteralType:         "TemplateLiteralType",
	KindTypeOperator:                "TypeOperator",
	KindIndexedAccessType:           "IndexedAccessType",
	KindTypeQuery:                   "TypeQuery",
	KindParenthesizedType:           "ParenthesizedType",
	KindMappedType:                  "MappedType",
	KindConditionalType:             "ConditionalType",
	KindInferType:                   "InferType",
	KindTypePredicate:               "TypePredicate",
	KindAnyKeyword:                  "AnyKeyword",
	KindNumberKeyword:               "NumberKeyword",
	KindObjectKeyword:               "ObjectKeyword",
	KindBooleanKeyword:              "BooleanKeyword",
	KindStringKeyword:               "StringKeyword",
	KindSymbolKeyword:               "SymbolKeyword",
	KindThisType:                    "ThisType",
	KindVoidKeyword:                 "VoidKeyword",
	KindUndefinedKeyword:            "UndefinedKeyword",
	KindNullKeyword:                 "NullKeyword",
	KindNeverKeyword:                "NeverKeyword",
	KindUnknownKeyword:              "UnknownKeyword",
	KindBigIntKeyword:               "BigIntKeyword",
	KindInterfaceDeclaration:        "InterfaceDeclaration",
	KindTypeAliasDeclaration:        "TypeAliasDeclaration",
	KindExpressionWithTypeArguments: "ExpressionWithTypeArguments",
	KindEnumDeclaration:             "EnumDeclaration",
	KindClassDeclaration:            "ClassDeclaration",
	KindFunctionDeclaration:         "FunctionDeclaration",
	KindVariableStatement:           "VariableStatement",
	KindImportDeclaration:           "ImportDeclaration",
	KindExportDeclaration:           "ExportDeclaration",
	KindExportAssignment:            "ExportAssignment",
	KindModuleDeclaration:           "ModuleDeclaration",
	KindExpressionStatement:         "ExpressionStatement",
}

// String returns the kind name, e.g. "PropertySignature".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) || kindNames[k] == "" {
		return "Invalid"
	}
	return kindNames[k]
}

// keywords maps the spelling of a keyword type to its kind.
var keywords = map[string]Kind{
	"any":       KindAnyKeyword,
	"number":    KindNumberKeyword,
	"object":    KindObjectKeyword,
	"boolean":   KindBooleanKeyword,
	"string":    KindStringKeyword,
	"symbol":    KindSymbolKeyword,
	"this":      KindThisType,
	"void":      KindVoidKeyword,
	"undefined": KindUndefinedKeyword,
	"null":      KindNullKeyword,
	"never":     KindNeverKeyword,
	"unknown":   KindUnknownKeyword,
	"bigint":    KindBigIntKeyword,
}

// KeywordKind reports the keyword kind spelled by word, if any.
func KeywordKind(word string) (Kind, bool) {
	k, ok := keywords[word]
	return k, ok
}

// IsKeyword reports whether k is one of the keyword type kinds.
func (k Kind) IsKeyword() bool {
	return k >= KindAnyKeyword && k <= KindBigIntKeyword
}

// IsStatement reports whether k is a value-level statement kind.
func (k Kind) IsStatement() bool {
	return k >= KindEnumDeclaration && k <= KindExpressionStatement
}
