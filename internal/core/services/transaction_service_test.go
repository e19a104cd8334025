package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/FranzoniLeo/financial-control/internal/apperrors"
	"github.com/FranzoniLeo/financial-control/internal/core/domain"
	portssvc "github.com/FranzoniLeo/financial-control/internal/core/ports/services"
	"github.com/FranzoniLeo/financial-control/internal/core/services"
	"github.com/FranzoniLeo/financial-control/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo        *MockTransactionRepository
	mockWalletRepo     *MockWalletRepository
	mockInvestmentRepo *MockInvestmentRepository
	service            portssvc.TransactionSvc
	userID             string
	wallet             *domain.Wallet
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockWalletRepo = new(MockWalletRepository)
	suite.mockInvestmentRepo = new(MockInvestmentRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockWalletRepo, suite.mockInvestmentRepo)
	suite.userID = uuid.NewString()
	suite.wallet = &domain.Wallet{WalletID: uuid.NewString(), UserID: suite.userID, Name: "Main"}
}

func (suite *TransactionServiceTestSuite) expectOwnedWallet() {
	suite.mockWalletRepo.On("FindWalletByID", mock.Anything, suite.wallet.WalletID).
		Return(suite.wallet, nil).Once()
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DirectWalletEntry() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount: decimal.RequireFromString("100.50"),
		Type:   "deposit",
		Date:   "2024-03-10",
	}

	suite.expectOwnedWallet()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.WalletID == suite.wallet.WalletID &&
			t.InvestmentID == "" &&
			t.Type == domain.Deposit &&
			t.Date.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.wallet.WalletID, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(txn.BelongsToWallet())
	suite.False(txn.BelongsToInvestment())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// A nested transaction carries only the investment ID; the wallet is reached
// through the investment, never stored twice.
func (suite *TransactionServiceTestSuite) TestCreateTransaction_NestedUnderInvestment() {
	ctx := context.Background()
	investment := &domain.Investment{InvestmentID: uuid.NewString(), WalletID: suite.wallet.WalletID, Name: "Index Fund"}
	req := dto.CreateTransactionRequest{
		Amount:       decimal.RequireFromString("250.00"),
		Type:         "deposit",
		Date:         "2024-03-10",
		InvestmentID: &investment.InvestmentID,
	}

	suite.expectOwnedWallet()
	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, investment.InvestmentID).
		Return(investment, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.InvestmentID == investment.InvestmentID && t.WalletID == ""
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.wallet.WalletID, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(txn.BelongsToInvestment())
	suite.False(txn.BelongsToWallet())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvestmentFromOtherWallet() {
	ctx := context.Background()
	foreign := &domain.Investment{InvestmentID: uuid.NewString(), WalletID: uuid.NewString()}
	req := dto.CreateTransactionRequest{
		Amount:       decimal.RequireFromString("10.00"),
		Type:         "deposit",
		Date:         "2024-03-10",
		InvestmentID: &foreign.InvestmentID,
	}

	suite.expectOwnedWallet()
	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, foreign.InvestmentID).
		Return(foreign, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.wallet.WalletID, suite.userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txn)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ReportsAllFieldFailures() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount: decimal.RequireFromString("-3.141"),
		Type:   "deposit",
		Date:   "10/03/2024",
	}

	suite.expectOwnedWallet()

	txn, err := suite.service.CreateTransaction(ctx, suite.wallet.WalletID, suite.userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)

	var verrs apperrors.ValidationErrors
	suite.Require().ErrorAs(err, &verrs)
	// negative amount, three decimal places, bad date format
	suite.Len(verrs, 3)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_OtherUsersWallet() {
	ctx := context.Background()
	foreignWallet := &domain.Wallet{WalletID: uuid.NewString(), UserID: uuid.NewString()}
	req := dto.CreateTransactionRequest{
		Amount: decimal.RequireFromString("10.00"),
		Type:   "deposit",
	}

	suite.mockWalletRepo.On("FindWalletByID", ctx, foreignWallet.WalletID).
		Return(foreignWallet, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, foreignWallet.WalletID, suite.userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txn)
}

func (suite *TransactionServiceTestSuite) TestGetTransaction_ResolvesThroughInvestmentChain() {
	ctx := context.Background()
	investment := &domain.Investment{InvestmentID: uuid.NewString(), WalletID: suite.wallet.WalletID}
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		InvestmentID:  investment.InvestmentID,
		Amount:        decimal.RequireFromString("50.00"),
		Type:          domain.Deposit,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, investment.InvestmentID).
		Return(investment, nil).Once()
	suite.expectOwnedWallet()

	got, err := suite.service.GetTransactionByID(ctx, txn.TransactionID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(txn.TransactionID, got.TransactionID)
}

// Another user's transaction resolves to not-found, indistinguishable from a
// transaction that does not exist at all.
func (suite *TransactionServiceTestSuite) TestGetTransaction_OtherOwnerIsNotFound() {
	ctx := context.Background()
	foreignWallet := &domain.Wallet{WalletID: uuid.NewString(), UserID: uuid.NewString()}
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		WalletID:      foreignWallet.WalletID,
		Type:          domain.Deposit,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockWalletRepo.On("FindWalletByID", ctx, foreignWallet.WalletID).
		Return(foreignWallet, nil).Once()

	got, err := suite.service.GetTransactionByID(ctx, txn.TransactionID, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(got)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_AllOrNothing() {
	ctx := context.Background()
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		WalletID:      suite.wallet.WalletID,
		Amount:        decimal.RequireFromString("10.00"),
		Type:          domain.Deposit,
	}
	req := dto.UpdateTransactionRequest{
		Amount: decimal.RequireFromString("20.00"),
		Type:   "withdrawal",
		Date:   "not-a-date",
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.expectOwnedWallet()

	got, err := suite.service.UpdateTransaction(ctx, txn.TransactionID, suite.userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(got)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListUserTransactions_TypeFilter() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{TransactionID: "1", WalletID: suite.wallet.WalletID, Type: domain.Deposit, Amount: decimal.New(1, 0)},
		{TransactionID: "2", WalletID: suite.wallet.WalletID, Type: domain.Withdrawal, Amount: decimal.New(2, 0)},
		{TransactionID: "3", InvestmentID: uuid.NewString(), Type: domain.Deposit, Amount: decimal.New(3, 0)},
	}

	suite.mockTxnRepo.On("ListTransactionsByUserID", ctx, suite.userID).Return(txns, nil).Times(3)

	deposits, err := suite.service.ListUserTransactions(ctx, suite.userID, "deposit")
	suite.Require().NoError(err)
	suite.Len(deposits, 2)

	all, err := suite.service.ListUserTransactions(ctx, suite.userID, "")
	suite.Require().NoError(err)
	suite.Len(all, 3)

	// Unknown type narrows to nothing rather than failing.
	none, err := suite.service.ListUserTransactions(ctx, suite.userID, "transfer")
	suite.Require().NoError(err)
	suite.Empty(none)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
