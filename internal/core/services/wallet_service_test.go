package services_test

import (
	"context"
	"strings"
	"testing"

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

type WalletServiceTestSuite struct {
	suite.Suite
	mockWalletRepo *MockWalletRepository
	mockTxnRepo    *MockTransactionRepository
	service        portssvc.WalletSvc
	userID         string
}

func (suite *WalletServiceTestSuite) SetupTest() {
	suite.mockWalletRepo = new(MockWalletRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewWalletService(suite.mockWalletRepo, suite.mockTxnRepo)
	suite.userID = uuid.NewString()
}

func (suite *WalletServiceTestSuite) ownedWallet(name string) *domain.Wallet {
	return &domain.Wallet{
		WalletID: uuid.NewString(),
		UserID:   suite.userID,
		Name:     name,
	}
}

func (suite *WalletServiceTestSuite) TestCreateWallet_Success() {
	ctx := context.Background()
	req := dto.CreateWalletRequest{Name: "Emergency Fund"}

	suite.mockWalletRepo.On("FindWalletByUserIDAndName", ctx, suite.userID, req.Name).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockWalletRepo.On("SaveWallet", ctx, mock.MatchedBy(func(w domain.Wallet) bool {
		return w.Name == req.Name && w.UserID == suite.userID && w.WalletID != ""
	})).Return(nil).Once()

	wallet, err := suite.service.CreateWallet(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(wallet)
	suite.Equal(req.Name, wallet.Name)
	suite.Equal(suite.userID, wallet.UserID)
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestCreateWallet_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateWalletRequest{Name: "Savings"}
	existing := suite.ownedWallet("Savings")

	suite.mockWalletRepo.On("FindWalletByUserIDAndName", ctx, suite.userID, req.Name).
		Return(existing, nil).Once()

	wallet, err := suite.service.CreateWallet(ctx, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(wallet)
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "SaveWallet", mock.Anything, mock.Anything)
}

func (suite *WalletServiceTestSuite) TestGetWalletByID_OtherOwnerIsNotFound() {
	ctx := context.Background()
	foreign := &domain.Wallet{WalletID: uuid.NewString(), UserID: uuid.NewString(), Name: "Theirs"}

	suite.mockWalletRepo.On("FindWalletByID", ctx, foreign.WalletID).Return(foreign, nil).Once()

	wallet, err := suite.service.GetWalletByID(ctx, foreign.WalletID, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(wallet)
}

func (suite *WalletServiceTestSuite) TestRenameWallet_Success() {
	ctx := context.Background()
	wallet := suite.ownedWallet("Old Name")
	req := dto.RenameWalletRequest{Name: "New Name"}

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.WalletID).Return(wallet, nil).Once()
	suite.mockWalletRepo.On("FindWalletByUserIDAndName", ctx, suite.userID, req.Name).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockWalletRepo.On("UpdateWallet", ctx, mock.MatchedBy(func(w domain.Wallet) bool {
		return w.WalletID == wallet.WalletID && w.Name == req.Name
	})).Return(nil).Once()

	renamed, err := suite.service.RenameWallet(ctx, wallet.WalletID, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal("New Name", renamed.Name)
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestRenameWallet_ConflictWithOtherWallet() {
	ctx := context.Background()
	wallet := suite.ownedWallet("Checking")
	conflicting := suite.ownedWallet("Savings")
	req := dto.RenameWalletRequest{Name: "Savings"}

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.WalletID).Return(wallet, nil).Once()
	suite.mockWalletRepo.On("FindWalletByUserIDAndName", ctx, suite.userID, req.Name).
		Return(conflicting, nil).Once()

	renamed, err := suite.service.RenameWallet(ctx, wallet.WalletID, suite.userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(renamed)
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "UpdateWallet", mock.Anything, mock.Anything)
}

// Renaming to the wallet's own current name is a no-op, not a conflict.
func (suite *WalletServiceTestSuite) TestRenameWallet_SameNameNoConflict() {
	ctx := context.Background()
	wallet := suite.ownedWallet("Savings")
	req := dto.RenameWalletRequest{Name: "Savings"}

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.WalletID).Return(wallet, nil).Once()
	suite.mockWalletRepo.On("FindWalletByUserIDAndName", ctx, suite.userID, req.Name).
		Return(wallet, nil).Once()
	suite.mockWalletRepo.On("UpdateWallet", ctx, mock.Anything).Return(nil).Once()

	renamed, err := suite.service.RenameWallet(ctx, wallet.WalletID, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal("Savings", renamed.Name)
}

// Name uniqueness is case-sensitive: "savings" does not collide with "Savings".
func (suite *WalletServiceTestSuite) TestRenameWallet_CaseSensitiveNames() {
	ctx := context.Background()
	wallet := suite.ownedWallet("Checking")
	req := dto.RenameWalletRequest{Name: "savings"}

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.WalletID).Return(wallet, nil).Once()
	suite.mockWalletRepo.On("FindWalletByUserIDAndName", ctx, suite.userID, "savings").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockWalletRepo.On("UpdateWallet", ctx, mock.Anything).Return(nil).Once()

	renamed, err := suite.service.RenameWallet(ctx, wallet.WalletID, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal("savings", renamed.Name)
}

func (suite *WalletServiceTestSuite) TestRenameWallet_CollectsAllValidationFailures() {
	ctx := context.Background()
	wallet := suite.ownedWallet("Checking")
	// 101 spaces is blank after trimming and over the length cap, so both
	// rules fail and both failures come back in one error.
	bad := strings.Repeat(" ", domain.MaxWalletNameLength+1)

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.WalletID).Return(wallet, nil).Once()

	_, err := suite.service.RenameWallet(ctx, wallet.WalletID, suite.userID, dto.RenameWalletRequest{Name: bad})
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	var verrs apperrors.ValidationErrors
	suite.Require().ErrorAs(err, &verrs)
	suite.Len(verrs, 2)
	suite.Equal("name", verrs[0].Field)
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "UpdateWallet", mock.Anything, mock.Anything)
}

func (suite *WalletServiceTestSuite) TestDeleteWallet_Cascades() {
	ctx := context.Background()
	wallet := suite.ownedWallet("Doomed")

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.WalletID).Return(wallet, nil).Once()
	suite.mockWalletRepo.On("DeleteWalletCascade", ctx, wallet.WalletID).Return(nil).Once()

	err := suite.service.DeleteWallet(ctx, wallet.WalletID, suite.userID)

	suite.Require().NoError(err)
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestDeleteWallet_OtherOwnerIsNotFound() {
	ctx := context.Background()
	foreign := &domain.Wallet{WalletID: uuid.NewString(), UserID: uuid.NewString()}

	suite.mockWalletRepo.On("FindWalletByID", ctx, foreign.WalletID).Return(foreign, nil).Once()

	err := suite.service.DeleteWallet(ctx, foreign.WalletID, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "DeleteWalletCascade", mock.Anything, mock.Anything)
}

func (suite *WalletServiceTestSuite) TestGetWalletBalance_DirectTransactionsOnly() {
	ctx := context.Background()
	wallet := suite.ownedWallet("Main")
	txns := []domain.Transaction{
		{WalletID: wallet.WalletID, Type: domain.Deposit, Amount: decimal.RequireFromString("100.00")},
		{WalletID: wallet.WalletID, Type: domain.Withdrawal, Amount: decimal.RequireFromString("40.25")},
		{WalletID: wallet.WalletID, Type: domain.Dividend, Amount: decimal.RequireFromString("5.75")},
	}

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.WalletID).Return(wallet, nil).Once()
	suite.mockTxnRepo.On("ListAllTransactionsByWalletID", ctx, wallet.WalletID).Return(txns, nil).Once()

	balance, err := suite.service.GetWalletBalance(ctx, wallet.WalletID, suite.userID)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.RequireFromString("65.50")), "got %s", balance)
}

func TestWalletServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}
