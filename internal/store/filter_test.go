package store

import (
	"testing"
	"time"

	"github.com/finprime/finprime-backend/internal/dto"
	"github.com/finprime/finprime-backend/internal/models"
	"github.com/finprime/finprime-backend/pkg/helpers"
)

func TestBuildTransactionWhere_UserOnly(t *testing.T) {
	b := buildTransactionWhere(7, dto.TransactionQuery{})

	if got, want := b.clause(), " WHERE user_id = $1"; got != want {
		t.Errorf("clause = %q, want %q", got, want)
	}
	if len(b.args) != 1 || b.args[0] != int64(7) {
		t.Errorf("args = %v, want [7]", b.args)
	}
}

func TestBuildTransactionWhere_AllFilters(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	txType := models.TransactionExpense

	b := buildTransactionWhere(1, dto.TransactionQuery{
		Type:     &txType,
		Category: helpers.Ptr("Groceries"),
		Search:   helpers.Ptr("coffee"),
		From:     &from,
		To:       &to,
	})

	want := " WHERE user_id = $1 AND type = $2 AND category = $3" +
		" AND (name ILIKE $4 OR notes ILIKE $4) AND occurred_at >= $5 AND occurred_at < $6"
	if got := b.clause(); got != want {
		t.Errorf("clause = %q, want %q", got, want)
	}
	if len(b.args) != 6 {
		t.Fatalf("len(args) = %d, want 6", len(b.args))
	}
	if b.args[3] != "%coffee%" {
		t.Errorf("search arg = %v, want %%coffee%%", b.args[3])
	}
}

func TestBuildTransactionWhere_SearchSharesPlaceholder(t *testing.T) {
	b := buildTransactionWhere(1, dto.TransactionQuery{Search: helpers.Ptr("rent")})

	// Name and notes match against the same bound value.
	if got, want := b.clause(), " WHERE user_id = $1 AND (name ILIKE $2 OR notes ILIKE $2)"; got != want {
		t.Errorf("clause = %q, want %q", got, want)
	}
	if len(b.args) != 2 {
		t.Errorf("len(args) = %d, want 2", len(b.args))
	}
}
