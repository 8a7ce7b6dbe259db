package dhis2

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query describes one metadata list request: field selection, filters,
// ordering and paging. A zero Page disables paging (`paging=false`), which
// DHIS2 interprets as "return everything".
type Query struct {
	Fields   string
	Filters  []string
	Order    string
	Page     int
	PageSize int
}

// Filter renders a DHIS2 filter expression, e.g. Filter("id", "in", ids...).
func Filter(property, operator string, values ...string) string {
	switch operator {
	case "in":
		return fmt.Sprintf("%s:in:[%s]", property, strings.Join(values, ","))
	default:
		return fmt.Sprintf("%s:%s:%s", property, operator, strings.Join(values, ","))
	}
}

// Values renders the query as URL parameters.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Fields != "" {
		values.Set("fields", q.Fields)
	}
	for _, f := range q.Filters {
		values.Add("filter", f)
	}
	if q.Order != "" {
		values.Set("order", q.Order)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
		values.Set("pageSize", strconv.Itoa(q.PageSize))
	} else {
		values.Set("paging", "false")
	}
	return values
}
