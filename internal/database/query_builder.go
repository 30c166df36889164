package database

import (
	"fmt"
	"strings"

	"github.com/jmnayar/PRT/internal/models"
)

// ProjectQuery builds the filtered project listings used by the intake and
// release views: delivery month, product substring and status set.
type ProjectQuery struct {
	columns string
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func NewProjectQuery() *ProjectQuery {
	return &ProjectQuery{columns: projectColumns, orderBy: "id ASC"}
}

func (q *ProjectQuery) Where(filter string, args ...interface{}) *ProjectQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *ProjectQuery) WhereMonth(month string) *ProjectQuery {
	return q.Where("delivery_month = ?", month)
}

func (q *ProjectQuery) WhereProductLike(product string) *ProjectQuery {
	return q.Where("product LIKE ?", "%"+product+"%")
}

func (q *ProjectQuery) WhereStatusIn(statuses ...models.ProjectStatus) *ProjectQuery {
	if len(statuses) == 0 {
		return q
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(statuses)), ",")
	args := make([]interface{}, len(statuses))
	for i, st := range statuses {
		args[i] = string(st)
	}
	return q.Where("status IN ("+placeholders+")", args...)
}

func (q *ProjectQuery) OrderBy(orderBy string) *ProjectQuery {
	q.orderBy = orderBy
	return q
}

func (q *ProjectQuery) Limit(limit int) *ProjectQuery {
	q.limit = limit
	return q
}

func (q *ProjectQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM projects", q.columns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
