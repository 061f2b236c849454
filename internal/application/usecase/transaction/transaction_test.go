package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter/adaptertest"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

func intPtr(v int) *int { return &v }

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func timePtr(t time.Time) *time.Time { return &t }

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func seededTransactions() *adaptertest.MemoryTransactionRepository {
	return adaptertest.NewMemoryTransactionRepository(
		entity.NewTransaction(decimal.NewFromInt(-40), day(2024, 3, 2), "groceries", entity.CategoryFood),
		entity.NewTransaction(decimal.NewFromInt(-1200), day(2024, 3, 1), "rent", entity.CategoryRent),
		entity.NewTransaction(decimal.NewFromInt(-300), day(2024, 2, 14), "flight", entity.CategoryTravel),
		entity.NewTransaction(decimal.NewFromInt(25), day(2024, 4, 1), "refund", entity.CategoryOther),
	)
}

func TestCreateTransaction_Validation(t *testing.T) {
	date := timePtr(day(2024, 3, 5))

	tests := []struct {
		name     string
		input    CreateTransactionInput
		wantCode domainerror.TransactionErrorCode
	}{
		{"missing amount", CreateTransactionInput{Date: date, Description: "x", Category: "FOOD"}, domainerror.ErrCodeMissingTransactionFields},
		{"missing date", CreateTransactionInput{Amount: decPtr("-5"), Description: "x", Category: "FOOD"}, domainerror.ErrCodeMissingTransactionFields},
		{"blank description", CreateTransactionInput{Amount: decPtr("-5"), Date: date, Description: "   ", Category: "FOOD"}, domainerror.ErrCodeMissingTransactionFields},
		{"zero amount", CreateTransactionInput{Amount: decPtr("0"), Date: date, Description: "x", Category: "FOOD"}, domainerror.ErrCodeInvalidTransactionAmount},
		{"amount with three decimal places", CreateTransactionInput{Amount: decPtr("-10.005"), Date: date, Description: "x", Category: "FOOD"}, domainerror.ErrCodeInvalidTransactionAmount},
		{"amount too large", CreateTransactionInput{Amount: decPtr("1e13"), Date: date, Description: "x", Category: "FOOD"}, domainerror.ErrCodeInvalidTransactionAmount},
		{"multi-byte description too long", CreateTransactionInput{Amount: decPtr("-5"), Date: date, Description: strings.Repeat("é", 256), Category: "FOOD"}, domainerror.ErrCodeDescriptionTooLong},
		{"description too long", CreateTransactionInput{Amount: decPtr("-5"), Date: date, Description: strings.Repeat("a", 256), Category: "FOOD"}, domainerror.ErrCodeDescriptionTooLong},
		{"missing category", CreateTransactionInput{Amount: decPtr("-5"), Date: date, Description: "x"}, domainerror.ErrCodeInvalidTransactionCategory},
		{"unknown category", CreateTransactionInput{Amount: decPtr("-5"), Date: date, Description: "x", Category: "SHOES"}, domainerror.ErrCodeInvalidTransactionCategory},
		{"lower case category", CreateTransactionInput{Amount: decPtr("-5"), Date: date, Description: "x", Category: "food"}, domainerror.ErrCodeInvalidTransactionCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := adaptertest.NewMemoryTransactionRepository()

			_, err := NewCreateTransactionUseCase(repo).Execute(context.Background(), tt.input)

			var txnErr *domainerror.TransactionError
			if !errors.As(err, &txnErr) {
				t.Fatalf("expected TransactionError, got %v", err)
			}
			if txnErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, txnErr.Code)
			}
			if !txnErr.IsValidation() {
				t.Error("expected a validation error")
			}
			if repo.Created != 0 {
				t.Error("expected nothing to be persisted")
			}
		})
	}
}

func TestCreateTransaction_Success(t *testing.T) {
	repo := adaptertest.NewMemoryTransactionRepository()
	local := time.Date(2024, 3, 5, 9, 30, 0, 0, time.FixedZone("BRT", -3*3600))

	out, err := NewCreateTransactionUseCase(repo).Execute(context.Background(), CreateTransactionInput{
		Amount:      decPtr("-12.34"),
		Date:        &local,
		Description: "  lunch  ",
		Category:    "FOOD",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	txn := out.Transaction
	if txn.ID.String() == "" || repo.Created != 1 {
		t.Fatal("expected transaction to be persisted with an id")
	}
	if txn.Description != "lunch" {
		t.Errorf("expected trimmed description, got %q", txn.Description)
	}
	if txn.Date.Location() != time.UTC || !txn.Date.Equal(local) {
		t.Errorf("expected the same instant in UTC, got %v", txn.Date)
	}
	if !txn.Amount.Equal(decimal.RequireFromString("-12.34")) {
		t.Errorf("expected amount -12.34, got %s", txn.Amount)
	}
}

func TestCreateTransaction_DescriptionLengthCountsCharacters(t *testing.T) {
	tests := []struct {
		name        string
		description string
	}{
		{"accented", strings.Repeat("é", 200)},
		{"accented at limit", strings.Repeat("é", MaxDescriptionLength)},
		{"emoji", strings.Repeat("🍕", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := adaptertest.NewMemoryTransactionRepository()

			out, err := NewCreateTransactionUseCase(repo).Execute(context.Background(), CreateTransactionInput{
				Amount:      decPtr("-5"),
				Date:        timePtr(day(2024, 3, 5)),
				Description: tt.description,
				Category:    "FOOD",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Transaction.Description != tt.description || repo.Created != 1 {
				t.Error("expected the description to be persisted unchanged")
			}
		})
	}
}

func TestCreateTransaction_StoreFailure(t *testing.T) {
	repo := adaptertest.NewMemoryTransactionRepository()
	repo.Err = errors.New("connection reset")

	_, err := NewCreateTransactionUseCase(repo).Execute(context.Background(), CreateTransactionInput{
		Amount: decPtr("-1"), Date: timePtr(day(2024, 3, 5)), Description: "x", Category: "OTHER",
	})

	var txnErr *domainerror.TransactionError
	if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTransactionPersistence {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if txnErr.IsValidation() {
		t.Error("persistence error must not be a validation error")
	}
}

func TestListTransactions_Filtering(t *testing.T) {
	tests := []struct {
		name      string
		input     ListTransactionsInput
		wantKey   string
		wantDescs []string
	}{
		{
			name:      "month filter is half-open",
			input:     ListTransactionsInput{Month: intPtr(3), Year: intPtr(2024)},
			wantKey:   "transactions:2024:3",
			wantDescs: []string{"groceries", "rent"},
		},
		{
			name:      "no filter returns everything newest first",
			input:     ListTransactionsInput{},
			wantKey:   "transactions:all:all",
			wantDescs: []string{"refund", "groceries", "rent", "flight"},
		},
		{
			name:      "partial filter is ignored",
			input:     ListTransactionsInput{Month: intPtr(3)},
			wantKey:   "transactions:all:all",
			wantDescs: []string{"refund", "groceries", "rent", "flight"},
		},
		{
			name:      "invalid month is ignored",
			input:     ListTransactionsInput{Month: intPtr(13), Year: intPtr(2024)},
			wantKey:   "transactions:all:all",
			wantDescs: []string{"refund", "groceries", "rent", "flight"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := adaptertest.NewMemoryCache()
			out, err := NewListTransactionsUseCase(seededTransactions(), cache, 300*time.Second).Execute(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := descriptionsOf(out.Transactions); strings.Join(got, ",") != strings.Join(tt.wantDescs, ",") {
				t.Errorf("expected %v, got %v", tt.wantDescs, got)
			}
			if !cache.Has(tt.wantKey) {
				t.Errorf("expected result cached under %s", tt.wantKey)
			}
			if cache.TTLs[tt.wantKey] != 300*time.Second {
				t.Errorf("expected 300s TTL, got %v", cache.TTLs[tt.wantKey])
			}
		})
	}
}

func TestListTransactions_SecondCallHitsCache(t *testing.T) {
	repo := seededTransactions()
	uc := NewListTransactionsUseCase(repo, adaptertest.NewMemoryCache(), time.Minute)
	ctx := context.Background()
	input := ListTransactionsInput{Month: intPtr(3), Year: intPtr(2024)}

	first, err := uc.Execute(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Execute(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.Reads != 1 {
		t.Errorf("expected a single store read, got %d", repo.Reads)
	}
	if first.FromCache || !second.FromCache {
		t.Error("expected miss then hit")
	}
	if strings.Join(descriptionsOf(first.Transactions), ",") != strings.Join(descriptionsOf(second.Transactions), ",") {
		t.Error("expected identical payloads")
	}
	for i := range first.Transactions {
		if !first.Transactions[i].Amount.Equal(second.Transactions[i].Amount) || !first.Transactions[i].Date.Equal(second.Transactions[i].Date) {
			t.Errorf("cached transaction %d differs from stored one", i)
		}
	}
}

func TestListTransactions_WritesDoNotInvalidate(t *testing.T) {
	repo := seededTransactions()
	cache := adaptertest.NewMemoryCache()
	list := NewListTransactionsUseCase(repo, cache, time.Minute)
	ctx := context.Background()
	input := ListTransactionsInput{Month: intPtr(3), Year: intPtr(2024)}

	if _, err := list.Execute(ctx, input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := NewCreateTransactionUseCase(repo).Execute(ctx, CreateTransactionInput{
		Amount: decPtr("-9"), Date: timePtr(day(2024, 3, 20)), Description: "snack", Category: "FOOD",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := list.Execute(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Transactions) != 2 {
		t.Errorf("expected stale cached list of 2, got %d", len(out.Transactions))
	}
}

func TestListTransactions_CacheDownServesStore(t *testing.T) {
	cache := adaptertest.NewMemoryCache()
	cache.Down = true

	out, err := NewListTransactionsUseCase(seededTransactions(), cache, time.Minute).Execute(context.Background(), ListTransactionsInput{})
	if err != nil {
		t.Fatalf("cache failure must not fail the read: %v", err)
	}
	if len(out.Transactions) != 4 || out.FromCache {
		t.Errorf("expected 4 transactions from the store, got %d", len(out.Transactions))
	}
}

func TestListTransactions_Sorting(t *testing.T) {
	uc := NewListTransactionsUseCase(seededTransactions(), adaptertest.NewMemoryCache(), time.Minute)

	out, err := uc.Execute(context.Background(), ListTransactionsInput{SortField: "amount", SortDirection: "asc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "rent,flight,groceries,refund"
	if got := strings.Join(descriptionsOf(out.Transactions), ","); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	out, err = uc.Execute(context.Background(), ListTransactionsInput{SortField: "notes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = "refund,groceries,rent,flight"
	if got := strings.Join(descriptionsOf(out.Transactions), ","); got != want {
		t.Errorf("expected store order for unknown field, got %s", got)
	}
}

func TestListTransactions_StoreFailure(t *testing.T) {
	repo := seededTransactions()
	repo.Err = errors.New("timeout")

	_, err := NewListTransactionsUseCase(repo, adaptertest.NewMemoryCache(), time.Minute).Execute(context.Background(), ListTransactionsInput{})

	var txnErr *domainerror.TransactionError
	if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTransactionPersistence {
		t.Fatalf("expected persistence error, got %v", err)
	}
}

func TestTransactionSnapshot_CorruptIsMiss(t *testing.T) {
	repo := seededTransactions()
	cache := adaptertest.NewMemoryCache()
	cache.Put("transactions:all:all", []byte(`{"v":1,"transactions":[{"category":"SHOES"}]}`))

	out, err := NewListTransactionsUseCase(repo, cache, time.Minute).Execute(context.Background(), ListTransactionsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FromCache || repo.Reads != 1 {
		t.Error("expected undecodable snapshot to fall through to the store")
	}
}

func descriptionsOf(txns []*entity.Transaction) []string {
	out := make([]string, len(txns))
	for i, txn := range txns {
		out[i] = txn.Description
	}
	return out
}
