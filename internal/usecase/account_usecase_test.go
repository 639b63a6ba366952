package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Paprikas/double-double/internal/domain"
	"github.com/Paprikas/double-double/internal/usecase"
	"github.com/Paprikas/double-double/internal/usecase/mocks"
)

func TestAccountUseCase_CreateAccount(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateAccountInput
		setupMocks  func(*mocks.MockAccountRepository)
		expectError error
	}{
		{
			name: "successful account creation",
			input: usecase.CreateAccountInput{
				Name:   "Cash",
				Number: "11",
				Kind:   domain.Asset,
			},
			setupMocks: func(repo *mocks.MockAccountRepository) {},
		},
		{
			name: "contra account creation",
			input: usecase.CreateAccountInput{
				Name:   "Drawing",
				Number: "32",
				Kind:   domain.Equity,
				Contra: true,
			},
			setupMocks: func(repo *mocks.MockAccountRepository) {},
		},
		{
			name: "missing name",
			input: usecase.CreateAccountInput{
				Number: "11",
				Kind:   domain.Asset,
			},
			setupMocks:  func(repo *mocks.MockAccountRepository) {},
			expectError: domain.ErrMissingAccountName,
		},
		{
			name: "invalid kind",
			input: usecase.CreateAccountInput{
				Name:   "Cash",
				Number: "11",
				Kind:   "banana",
			},
			setupMocks:  func(repo *mocks.MockAccountRepository) {},
			expectError: domain.ErrInvalidKind,
		},
		{
			name: "duplicate name rejected by storage",
			input: usecase.CreateAccountInput{
				Name:   "Cash",
				Number: "11",
				Kind:   domain.Asset,
			},
			setupMocks: func(repo *mocks.MockAccountRepository) {
				repo.CreateFunc = func(ctx context.Context, account *domain.Account) error {
					return domain.ErrAccountExists
				}
			},
			expectError: domain.ErrAccountExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAccountRepository()
			tt.setupMocks(repo)

			uc := usecase.NewAccountUseCase(repo, mocks.NewMockIDGenerator())
			account, err := uc.CreateAccount(context.Background(), tt.input)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Errorf("CreateAccount() error = %v, want %v", err, tt.expectError)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if account.Name != tt.input.Name {
				t.Errorf("expected name %q, got %q", tt.input.Name, account.Name)
			}
			if account.Contra != tt.input.Contra {
				t.Errorf("expected contra %v, got %v", tt.input.Contra, account.Contra)
			}
			if account.ID == "" {
				t.Error("expected generated ID")
			}
		})
	}
}

func TestAccountUseCase_ResolveAccount(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockAccountRepository()
	uc := usecase.NewAccountUseCase(repo, mocks.NewMockIDGenerator())

	// "12" is both the name of one account and the number of another;
	// resolution must prefer the exact name match.
	cash, err := uc.CreateAccount(ctx, usecase.CreateAccountInput{Name: "Cash", Number: "11", Kind: domain.Asset})
	if err != nil {
		t.Fatalf("create cash: %v", err)
	}
	loan, err := uc.CreateAccount(ctx, usecase.CreateAccountInput{Name: "Loan", Number: "12", Kind: domain.Liability})
	if err != nil {
		t.Fatalf("create loan: %v", err)
	}
	odd, err := uc.CreateAccount(ctx, usecase.CreateAccountInput{Name: "12", Number: "99", Kind: domain.Expense})
	if err != nil {
		t.Fatalf("create odd: %v", err)
	}

	tests := []struct {
		name         string
		nameOrNumber string
		wantID       string
		wantErr      error
	}{
		{"by name", "Cash", cash.ID, nil},
		{"by number", "11", cash.ID, nil},
		{"name wins over number", "12", odd.ID, nil},
		{"number when no name matches", "12-none", "", domain.ErrAccountNotFound},
		{"unknown reference", "Slush Fund", "", domain.ErrAccountNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := uc.ResolveAccount(ctx, tt.nameOrNumber)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ResolveAccount() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if account.ID != tt.wantID {
				t.Errorf("ResolveAccount() = %s, want %s", account.ID, tt.wantID)
			}
		})
	}

	_ = loan
}

func TestAccountUseCase_RenameAccount(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockAccountRepository()
	uc := usecase.NewAccountUseCase(repo, mocks.NewMockIDGenerator())

	cash, err := uc.CreateAccount(ctx, usecase.CreateAccountInput{Name: "Cash", Number: "11", Kind: domain.Asset})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uc.CreateAccount(ctx, usecase.CreateAccountInput{Name: "Loan", Number: "12", Kind: domain.Liability}); err != nil {
		t.Fatalf("create: %v", err)
	}

	renamed, err := uc.RenameAccount(ctx, cash.ID, "Petty Cash", "11")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.Name != "Petty Cash" {
		t.Errorf("expected renamed account, got %q", renamed.Name)
	}

	// Renaming onto an existing name must preserve uniqueness.
	if _, err := uc.RenameAccount(ctx, cash.ID, "Loan", "11"); !errors.Is(err, domain.ErrAccountExists) {
		t.Errorf("expected ErrAccountExists, got %v", err)
	}
}
