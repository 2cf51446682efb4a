package store

import (
	"fmt"
	"strings"

	"github.com/finprime/finprime-backend/internal/dto"
)

// whereBuilder accumulates SQL conditions with auto-numbered placeholders so
// the count, summary and page queries can share one argument list.
type whereBuilder struct {
	conds []string
	args  []any
}

// arg registers v and returns its placeholder, e.g. "$3".
func (b *whereBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *whereBuilder) add(format string, vals ...any) {
	placeholders := make([]any, len(vals))
	for i, v := range vals {
		placeholders[i] = b.arg(v)
	}
	b.conds = append(b.conds, fmt.Sprintf(format, placeholders...))
}

func (b *whereBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// buildTransactionWhere translates a normalized query into a WHERE clause
// scoped to one user. Nil fields are omitted; From is inclusive and To is
// exclusive, matching the half-open month interval the service computes.
func buildTransactionWhere(userID int64, q dto.TransactionQuery) *whereBuilder {
	b := &whereBuilder{}
	b.add("user_id = %s", userID)

	if q.Type != nil {
		b.add("type = %s", string(*q.Type))
	}
	if q.Category != nil {
		b.add("category = %s", *q.Category)
	}
	if q.Search != nil {
		p := b.arg("%" + *q.Search + "%")
		b.conds = append(b.conds, fmt.Sprintf("(name ILIKE %s OR notes ILIKE %s)", p, p))
	}
	if q.From != nil {
		b.add("occurred_at >= %s", *q.From)
	}
	if q.To != nil {
		b.add("occurred_at < %s", *q.To)
	}
	return b
}
