package expr

// Query accumulates WHERE predicates for a select over one source.
// Predicates added with Where are combined with AND.
type Query struct {
	source Source
	where  []Expression
}

// NewQuery creates a query selecting every column of src.
func NewQuery(src Source) *Query {
	return &Query{source: src}
}

// Source returns the table the query selects from.
func (q *Query) Source() Source { return q.source }

// Where appends predicates. Nil and identity predicates are ignored.
func (q *Query) Where(preds ...Expression) *Query {
	for _, p := range preds {
		if IsIdentity(p) {
			continue
		}
		q.where = append(q.where, p)
	}
	return q
}

// Conditions returns the accumulated predicates combined with AND,
// or nil when none were added.
func (q *Query) Conditions() Expression {
	switch len(q.where) {
	case 0:
		return nil
	case 1:
		return q.where[0]
	default:
		return And(q.where...)
	}
}

// Select returns the query as a select expression.
func (q *Query) Select() *SelectExpression {
	s := &SelectExpression{
		BaseExpression: BaseExpression{ExprType: TypeSelect},
		Where:          q.Conditions(),
	}
	if q.source != nil {
		s.Table = q.source.TableName()
		s.Alias = q.source.Alias()
	}
	return s
}

// SQL renders the full SELECT statement with enc.
func (q *Query) SQL(enc Encoder) Statement {
	return enc.Encode(q.Select())
}
