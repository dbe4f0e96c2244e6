package store

import (
	"github.com/Masterminds/squirrel"
)

const itemTable = "item"

var itemColumns = []string{"id", "name", "price", "company", "remarks"}

func buildSelectItemByIDQuery(b squirrel.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(itemColumns...).
		From(itemTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// buildSelectItemsQuery selects every item, or only those of company when
// company is non-nil.
func buildSelectItemsQuery(b squirrel.StatementBuilderType, company *string) (string, []any, error) {
	query := b.Select(itemColumns...).From(itemTable)
	if company != nil {
		query = query.Where(squirrel.Eq{"company": *company})
	}

	return query.OrderBy("id").ToSql()
}

func buildInsertItemQuery(b squirrel.StatementBuilderType, name string, price int64, company, remarks string) (string, []any, error) {
	return b.Insert(itemTable).
		Columns("name", "price", "company", "remarks").
		Values(name, price, company, remarks).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateItemQuery(b squirrel.StatementBuilderType, id int64, name string, price int64, company, remarks string) (string, []any, error) {
	return b.Update(itemTable).
		Set("name", name).
		Set("price", price).
		Set("company", company).
		Set("remarks", remarks).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

func buildDeleteItemQuery(b squirrel.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(itemTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}
