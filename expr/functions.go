package expr

import "strconv"

// Function builds a plain function call NAME(args...).
func Function(name string, args ...Expression) *FunctionExpression {
	return &FunctionExpression{
		BaseExpression: BaseExpression{ExprType: TypeFunction},
		Name:           name,
		Children:       args,
		Separator:      ", ",
	}
}

// CurrentDate returns the CURRENT_DATE keyword.
func CurrentDate() *RawExpression {
	return Raw("CURRENT_DATE")
}

// Date truncates e to its date part: DATE(e).
func Date(e Expression) *FunctionExpression {
	return Function("DATE", e)
}

// DateAdd shifts e by amount units: DATE_ADD(e, INTERVAL amount UNIT).
func DateAdd(e Expression, amount int, unit string) *FunctionExpression {
	return Function("DATE_ADD", e, Raw("INTERVAL "+strconv.Itoa(amount)+" "+unit))
}

// Extract returns EXTRACT(part FROM e).
func Extract(part string, e Expression) *FunctionExpression {
	f := Function("EXTRACT", Raw(part), e)
	f.Separator = " FROM "
	return f
}

// Cast returns CAST(e AS typeName).
func Cast(e Expression, typeName string) *FunctionExpression {
	f := Function("CAST", e, Raw(typeName))
	f.Separator = " AS "
	return f
}

// Concat returns CONCAT(args...).
func Concat(args ...Expression) *FunctionExpression {
	return Function("CONCAT", args...)
}

// YearWeek returns the year and week number of e concatenated as text.
func YearWeek(e Expression) *FunctionExpression {
	return Concat(
		Cast(Extract("YEAR", e), "varchar"),
		Cast(Extract("WEEK", e), "varchar"),
	)
}
