package expr

// Column returns a reference to the named column.
func Column(name string) *ColumnRefExpression {
	return &ColumnRefExpression{
		BaseExpression: BaseExpression{ExprType: TypeColumnRef},
		Name:           name,
	}
}

// Param returns a bound parameter with a type hint.
func Param(v any, bindType string) *ParameterExpression {
	return &ParameterExpression{
		BaseExpression: BaseExpression{ExprType: TypeValueParameter},
		Value:          v,
		BindType:       bindType,
	}
}

// Raw returns a literal SQL fragment.
func Raw(sql string) *RawExpression {
	return &RawExpression{
		BaseExpression: BaseExpression{ExprType: TypeValueRaw},
		SQL:            sql,
	}
}

// Compare builds a binary comparison of the given type.
func Compare(t ExpressionType, left, right Expression) *ComparisonExpression {
	return &ComparisonExpression{
		BaseExpression: BaseExpression{ExprType: t},
		Left:           left,
		Right:          right,
	}
}

// Eq builds left = right.
func Eq(left, right Expression) *ComparisonExpression {
	return Compare(TypeCompareEqual, left, right)
}

// In builds left IN (values...), binding every value with bindType.
func In(left Expression, values []any, bindType string) *InExpression {
	return inList(TypeCompareIn, left, values, bindType)
}

// NotIn builds left NOT IN (values...).
func NotIn(left Expression, values []any, bindType string) *InExpression {
	return inList(TypeCompareNotIn, left, values, bindType)
}

func inList(t ExpressionType, left Expression, values []any, bindType string) *InExpression {
	params := make([]Expression, 0, len(values))
	for _, v := range values {
		if e, ok := v.(Expression); ok {
			params = append(params, e)
			continue
		}
		params = append(params, Param(v, bindType))
	}
	return &InExpression{
		BaseExpression: BaseExpression{ExprType: t},
		Left:           left,
		Values:         params,
	}
}

// InSubquery builds left IN (SELECT ...).
func InSubquery(left Expression, query *SelectExpression) *SubqueryExpression {
	return &SubqueryExpression{
		BaseExpression: BaseExpression{ExprType: TypeCompareInSubquery},
		Left:           left,
		Query:          query,
	}
}

// Between builds input BETWEEN lower AND upper.
func Between(input, lower, upper Expression) *BetweenExpression {
	return &BetweenExpression{
		BaseExpression: BaseExpression{ExprType: TypeCompareBetween},
		Input:          input,
		Lower:          lower,
		Upper:          upper,
	}
}

// And combines children with AND. Nil children are dropped.
func And(children ...Expression) *ConjunctionExpression {
	return conjunction(TypeConjunctionAnd, children)
}

// Or combines children with OR. Nil children are dropped.
func Or(children ...Expression) *ConjunctionExpression {
	return conjunction(TypeConjunctionOr, children)
}

func conjunction(t ExpressionType, children []Expression) *ConjunctionExpression {
	kept := make([]Expression, 0, len(children))
	for _, c := range children {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return &ConjunctionExpression{
		BaseExpression: BaseExpression{ExprType: t},
		Children:       kept,
	}
}

// Identity returns the no-op predicate.
func Identity() *IdentityExpression {
	return &IdentityExpression{BaseExpression: BaseExpression{ExprType: TypeIdentity}}
}

// IsIdentity reports whether e contributes nothing to a WHERE clause.
func IsIdentity(e Expression) bool {
	if e == nil {
		return true
	}
	switch ex := e.(type) {
	case *IdentityExpression:
		return true
	case *ConjunctionExpression:
		for _, c := range ex.Children {
			if !IsIdentity(c) {
				return false
			}
		}
		return true
	}
	return false
}

// SelectFrom builds "SELECT Alias.pk FROM table Alias WHERE where" for src.
func SelectFrom(src Source, where Expression) *SelectExpression {
	pk := src.PrimaryKey()
	if src.Alias() != "" {
		pk = src.Alias() + "." + pk
	}
	return &SelectExpression{
		BaseExpression: BaseExpression{ExprType: TypeSelect},
		Columns:        []Expression{Column(pk)},
		Table:          src.TableName(),
		Alias:          src.Alias(),
		Where:          where,
	}
}
