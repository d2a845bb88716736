package expr

// ExpressionType identifies the specific operation type.
type ExpressionType string

const (
	// Comparison operators
	TypeCompareEqual              ExpressionType = "COMPARE_EQUAL"
	TypeCompareNotEqual           ExpressionType = "COMPARE_NOTEQUAL"
	TypeCompareLessThan           ExpressionType = "COMPARE_LESSTHAN"
	TypeCompareGreaterThan        ExpressionType = "COMPARE_GREATERTHAN"
	TypeCompareLessThanOrEqual    ExpressionType = "COMPARE_LESSTHANOREQUALTO"
	TypeCompareGreaterThanOrEqual ExpressionType = "COMPARE_GREATERTHANOREQUALTO"
	TypeCompareLike               ExpressionType = "COMPARE_LIKE"
	TypeCompareNotLike            ExpressionType = "COMPARE_NOT_LIKE"
	TypeCompareILike              ExpressionType = "COMPARE_ILIKE"
	TypeCompareNotILike           ExpressionType = "COMPARE_NOT_ILIKE"
	TypeCompareIn                 ExpressionType = "COMPARE_IN"
	TypeCompareNotIn              ExpressionType = "COMPARE_NOT_IN"
	TypeCompareInSubquery         ExpressionType = "COMPARE_IN_SUBQUERY"
	TypeCompareBetween            ExpressionType = "COMPARE_BETWEEN"

	// Conjunction operators
	TypeConjunctionAnd ExpressionType = "CONJUNCTION_AND"
	TypeConjunctionOr  ExpressionType = "CONJUNCTION_OR"

	// Value types
	TypeColumnRef      ExpressionType = "COLUMN_REF"
	TypeValueParameter ExpressionType = "VALUE_PARAMETER"
	TypeValueRaw       ExpressionType = "VALUE_RAW"

	// Other
	TypeFunction ExpressionType = "FUNCTION"
	TypeSelect   ExpressionType = "SELECT"
	TypeIdentity ExpressionType = "IDENTITY"
)

// Expression is the interface implemented by all predicate expression types.
// Use type assertions or type switches to access specific expression data.
type Expression interface {
	// Type returns the specific expression type (e.g., COMPARE_EQUAL, CONJUNCTION_AND).
	Type() ExpressionType

	// expressionMarker is a marker method to prevent external implementation.
	expressionMarker()
}

// BaseExpression contains common fields for all expression types.
type BaseExpression struct {
	ExprType ExpressionType
}

// Type returns the expression type.
func (b *BaseExpression) Type() ExpressionType { return b.ExprType }

func (b *BaseExpression) expressionMarker() {}

// ColumnRefExpression references a column by name.
// Qualified names ("Articles.title") are split on dots when rendered.
type ColumnRefExpression struct {
	BaseExpression
	Name string
}

// ParameterExpression is a value rendered as a bound parameter.
// BindType is the type hint used by the Binder to coerce the value
// ("integer", "uuid", "date", "string", ...).
type ParameterExpression struct {
	BaseExpression
	Value    any
	BindType string
}

// RawExpression is a literal SQL fragment rendered verbatim.
type RawExpression struct {
	BaseExpression
	SQL string
}

// ComparisonExpression represents binary comparisons (=, !=, <, >, <=, >=, LIKE, ILIKE).
type ComparisonExpression struct {
	BaseExpression
	Left  Expression
	Right Expression
}

// InExpression represents IN / NOT IN against a value list.
type InExpression struct {
	BaseExpression
	Left   Expression
	Values []Expression
}

// SubqueryExpression represents "left IN (SELECT ...)".
type SubqueryExpression struct {
	BaseExpression
	Left  Expression
	Query *SelectExpression
}

// BetweenExpression represents BETWEEN lower AND upper (inclusive).
type BetweenExpression struct {
	BaseExpression
	Input Expression
	Lower Expression
	Upper Expression
}

// ConjunctionExpression represents AND/OR with multiple children.
type ConjunctionExpression struct {
	BaseExpression
	Children []Expression
}

// FunctionExpression represents a function call.
// Separator joins the arguments; it defaults to ", " and is " AS " for CAST
// and " FROM " for EXTRACT.
type FunctionExpression struct {
	BaseExpression
	Name      string
	Children  []Expression
	Separator string
}

// SelectExpression is a single-table sub-query.
type SelectExpression struct {
	BaseExpression
	Columns []Expression
	Table   string
	Alias   string
	Where   Expression
}

// IdentityExpression leaves a query unchanged. It renders to nothing
// and is dropped from conjunctions.
type IdentityExpression struct {
	BaseExpression
}

// Source is a table a query or sub-query selects from.
type Source interface {
	// TableName returns the physical table name.
	TableName() string

	// Alias returns the alias used to qualify columns.
	Alias() string

	// PrimaryKey returns the primary key column name.
	PrimaryKey() string
}
