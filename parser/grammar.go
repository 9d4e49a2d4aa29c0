package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// declLexer tokenizes comment-free declaration source. NLBracket is a `[`
// preceded by a line break: it may open a member, tuple or binding pattern
// but never continues an array or indexed-access type.
var declLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(?:\\.|[^"\\\n])*"|'(?:\\.|[^'\\\n])*'`},
	{Name: "Template", Pattern: "`(?:\\\\.|[^`\\\\])*`"},
	{Name: "Number", Pattern: `(?:0[xX][0-9a-fA-F_]+|0[bB][01_]+|0[oO][0-7_]+|(?:\d[\d_]*)?\.?\d[\d_]*(?:[eE][+-]?\d+)?)n?`},
	{Name: "Ident", Pattern: `[\p{L}_$][\p{L}\p{N}_$]*`},
	{Name: "NLBracket", Pattern: `\r?\n\s*\[`},
	{Name: "Punct", Pattern: `\.\.\.|=>|[-+*/%&|^!~?:;,.<>=(){}\[\]@#]`},
	{Name: "Whitespace", Pattern: `[ \t\r\f\v]+|\n`},
})

var declParser = participle.MustBuild[fileNode](
	participle.Lexer(declLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(participle.MaxLookahead),
)

// The grammar structs below mirror the surface syntax. Every struct that
// lowers to an ast node records Pos and EndPos so the raw source text can
// be sliced out afterwards.

type fileNode struct {
	Statements []*statementNode `@@*`
}

type statementNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Modifiers []string       `@( "export" | "declare" | "default" )*`
	Interface *interfaceNode `( @@`
	Alias     *aliasNode     `| @@`
	Opaque    *opaqueNode    `| @@`
	Empty     bool           `| @";" )`
}

type interfaceNode struct {
	Name       *identNode       `"interface" @@`
	TypeParams []*typeParamNode `( "<" @@ ( "," @@ )* ","? ">" )?`
	Extends    []*heritageNode  `( "extends" @@ ( "," @@ )* )?`
	Members    []*memberNode    `"{" @@* "}"`
}

type aliasNode struct {
	Name       *identNode       `"type" @@`
	TypeParams []*typeParamNode `( "<" @@ ( "," @@ )* ","? ">" )?`
	Type       *typeNode        `"=" @@ ";"?`
}

// opaqueNode is any other statement, kept as a run of balanced tokens. It
// ends at a semicolon or at the keyword that starts the next statement.
type opaqueNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Head *itemNode   `(?! "interface" Ident | "type" Ident ( "=" | "<" ) ) @@`
	Tail []*itemNode `( (?! "export" | "declare" | "interface" Ident | "type" Ident ( "=" | "<" ) | "enum" | "class" | "function" | "const" | "let" | "var" | "import" | "namespace" | "module" ) @@ )*`
	Semi bool        `@";"?`
}

type itemNode struct {
	Group *groupNode `  @@`
	Token string     `| @~( "{" | "}" | "(" | ")" | "[" | "]" | NLBracket | ";" )`
}

type groupNode struct {
	Open  string       `@( "{" | "(" | "[" | NLBracket )`
	Items []*innerNode `@@*`
	Close string       `@( "}" | ")" | "]" )`
}

type innerNode struct {
	Group *groupNode `  @@`
	Token string     `| @~( "{" | "}" | "(" | ")" | "[" | "]" | NLBracket )`
}

type identNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name string `@Ident`
}

type entityNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Parts []*identNode `@@ ( "." @@ )*`
}

type heritageNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name *entityNode `@@`
	Args []*typeNode `( "<" @@ ( "," @@ )* ">" )?`
}

type typeParamNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name       *identNode `( ( "in" | "out" | "const" ) (?= Ident ) )* @@`
	Constraint *typeNode  `( "extends" @@ )?`
	Default    *typeNode  `( "=" @@ )?`
}

type memberNode struct {
	Index     *indexSigNode `( @@`
	Call      *callSigNode  `| @@`
	Accessor  *accessorNode `| @@`
	Method    *methodNode   `| @@`
	Property  *propertyNode `| @@ ) ( ";" | "," )?`
}

type indexSigNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Readonly bool         `@"readonly"?`
	Params   []*paramNode `( "[" | NLBracket ) (?= Ident ":" ) @@ ( "," @@ )* "]"`
	Type     *typeNode    `":" @@`
}

type callSigNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	New        bool             `@"new"?`
	TypeParams []*typeParamNode `( "<" @@ ( "," @@ )* ","? ">" )?`
	Params     []*paramNode     `"(" ( @@ ( "," @@ )* ","? )? ")"`
	Return     *returnNode      `( ":" @@ )?`
}

type accessorNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Keyword string        `@( "get" | "set" ) (?! "?" | ":" | "(" | "<" | ";" | "," | "}" )`
	Name    *propNameNode `@@`
	Params  []*paramNode  `"(" ( @@ ( "," @@ )* ","? )? ")"`
	Return  *returnNode   `( ":" @@ )?`
}

type methodNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name       *propNameNode    `@@`
	Optional   bool             `@"?"?`
	TypeParams []*typeParamNode `( "<" @@ ( "," @@ )* ","? ">" )?`
	Params     []*paramNode     `"(" ( @@ ( "," @@ )* ","? )? ")"`
	Return     *returnNode      `( ":" @@ )?`
}

type propertyNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Readonly bool          `( @"readonly" (?! "?" | ":" | "(" | "<" | ";" | "," | "}" ) )?`
	Name     *propNameNode `@@`
	Optional bool          `@"?"?`
	Type     *typeNode     `( ":" @@ )?`
}

type propNameNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Ident    string       `  @Ident`
	String   string       `| @String`
	Number   string       `| @Number`
	Computed bool         `| @( "[" | NLBracket )`
	Expr     []*innerNode `  @@* "]"`
}

type paramNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Rest     bool         `@"..."?`
	Name     *bindingNode `@@`
	Optional bool         `@"?"?`
	Type     *typeNode    `( ":" @@ )?`
}

type bindingNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Ident       string       `  @Ident`
	Object      bool         `| @"{"`
	ObjectItems []*innerNode `  @@* "}"`
	Array       bool         `| @( "[" | NLBracket )`
	ArrayItems  []*innerNode `  @@* "]"`
}

type returnNode struct {
	Predicate *predicateNode `  @@`
	Type      *typeNode      `| @@`
}

type predicateNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Asserts bool       `(?= "asserts" Ident | Ident "is" ) @"asserts"?`
	Param   *identNode `@@`
	Type    *typeNode  `( "is" @@ )?`
}

// typeNode is the conditional level; a plain type has no Extends.
type typeNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Check   *unionNode `@@`
	Extends *unionNode `( "extends" @@`
	True    *typeNode  `  "?" @@`
	False   *typeNode  `  ":" @@ )?`
}

type unionNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Leading bool                `@"|"?`
	Types   []*intersectionNode `@@ ( "|" @@ )*`
}

type intersectionNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Leading bool            `@"&"?`
	Types   []*operatorNode `@@ ( "&" @@ )*`
}

type operatorNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Operator string        `( @( "keyof" | "unique" | "readonly" )`
	Operand  *operatorNode `  @@`
	Infer    *inferNode    `| @@`
	Postfix  *postfixNode  `| @@ )`
}

type inferNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name       *identNode `"infer" @@`
	Constraint *typeNode  `( "extends" @@ )?`
}

type postfixNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Primary  *primaryNode  `@@`
	Suffixes []*suffixNode `@@*`
}

// suffixNode is `[]` (array) or `[K]` (indexed access). A `[` on a new
// line is an NLBracket token and never matches here.
type suffixNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Open  bool      `@"["`
	Index *typeNode `@@? "]"`
}

type primaryNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Function  *functionTypeNode `  @@`
	Paren     *typeNode         `| "(" @@ ")"`
	Mapped    *mappedTypeNode   `| @@`
	Object    *objectTypeNode   `| @@`
	Tuple     *tupleNode        `| @@`
	Query     *entityNode       `| "typeof" @@`
	Literal   *literalNode      `| @@`
	Reference *referenceNode    `| @@`
}

type functionTypeNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	New        bool             `( "abstract"? @"new" )?`
	TypeParams []*typeParamNode `( "<" @@ ( "," @@ )* ","? ">" )?`
	Params     []*paramNode     `"(" ( @@ ( "," @@ )* ","? )? ")"`
	Return     *returnNode      `"=>" @@`
}

type mappedTypeNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Readonly   string     `"{" ( @( "+" | "-" )? @"readonly" )?`
	Param      *identNode `( "[" | NLBracket ) @@ "in"`
	Constraint *typeNode  `@@`
	As         *typeNode  `( "as" @@ )? "]"`
	Question   string     `( @( "+" | "-" )? @"?" )?`
	Type       *typeNode  `( ":" @@ )? ";"? "}"`
}

type objectTypeNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Open    bool          `@"{"`
	Members []*memberNode `@@* "}"`
}

type tupleNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Open     bool             `@( "[" | NLBracket )`
	Elements []*tupleElemNode `( @@ ( "," @@ )* ","? )? "]"`
}

type tupleElemNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Rest          bool       `@"..."?`
	Label         *identNode `( @@`
	LabelOptional bool       `  @"?"? ":" )?`
	Type          *typeNode  `@@`
	Optional      bool       `@"?"?`
}

type literalNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	String   string `  @String`
	Template string `| @Template`
	Number   string `| @"-"? @Number`
	Bool     string `| @( "true" | "false" )`
}

type referenceNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name *entityNode `@@`
	Args []*typeNode `( "<" @@ ( "," @@ )* ">" )?`
}
