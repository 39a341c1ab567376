package good

import (
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/AntonStoeckl/solid-principles-go/ocp"
)

const (
	dialectPostgres = "postgres"
	colName         = "name"
	colColor        = "color"
	colSize         = "size"
)

var (
	// ErrSpecificationNotExpressible is returned when a specification has no SQL rendering.
	ErrSpecificationNotExpressible = errors.New("specification is not expressible as sql")

	// ErrBuildingQueryFailed is returned when goqu fails to render the statement.
	ErrBuildingQueryFailed = errors.New("building query failed")
)

// ExpressibleAsSQL is implemented by specifications that can be evaluated by a database.
// It is a second, optional capability next to Specification; the filter never needs it.
type ExpressibleAsSQL interface {
	SQLExpression() (exp.Expression, error)
}

func (s ColorSpecification) SQLExpression() (exp.Expression, error) {
	return goqu.C(colColor).Eq(string(s)), nil
}

func (s SizeSpecification) SQLExpression() (exp.Expression, error) {
	return goqu.C(colSize).Eq(string(s)), nil
}

func (s NameSpecification) SQLExpression() (exp.Expression, error) {
	return goqu.C(colName).Eq(string(s)), nil
}

func (s AndSpecification[T]) SQLExpression() (exp.Expression, error) {
	expressions, err := toSQLExpressions(s.first, s.second)
	if err != nil {
		return nil, err
	}

	return goqu.And(expressions...), nil
}

func (s AllOfSpecification[T]) SQLExpression() (exp.Expression, error) {
	expressions, err := toSQLExpressions(s.specs...)
	if err != nil {
		return nil, err
	}

	return goqu.And(expressions...), nil
}

func (s AnyOfSpecification[T]) SQLExpression() (exp.Expression, error) {
	expressions, err := toSQLExpressions(s.specs...)
	if err != nil {
		return nil, err
	}

	return goqu.Or(expressions...), nil
}

func toSQLExpressions[T any](specs ...Specification[T]) ([]exp.Expression, error) {
	expressions := make([]exp.Expression, 0, len(specs))

	for _, spec := range specs {
		expressible, ok := spec.(ExpressibleAsSQL)
		if !ok {
			return nil, errors.Join(ErrSpecificationNotExpressible, fmt.Errorf("type %T", spec))
		}

		expression, err := expressible.SQLExpression()
		if err != nil {
			return nil, err
		}

		expressions = append(expressions, expression)
	}

	return expressions, nil
}

// BuildSelectQuery renders a SELECT over a products table restricted by spec.
func BuildSelectQuery(tableName string, spec Specification[ocp.Product]) (string, error) {
	expressions, err := toSQLExpressions(spec)
	if err != nil {
		return "", err
	}

	selectStmt := goqu.Dialect(dialectPostgres).
		From(tableName).
		Select(colName, colColor, colSize).
		Where(expressions...)

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}
