package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/school_fund_ledger/internal/apperrors"
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	"github.com/SscSPs/school_fund_ledger/internal/dto"
	"github.com/SscSPs/school_fund_ledger/internal/handlers"
	"github.com/SscSPs/school_fund_ledger/internal/middleware"
	"github.com/SscSPs/school_fund_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testIssuer = "school-fund-ledger"
	accountant = "u-acc"
	director   = "u-dir"
)

var handlerNow = time.Date(2025, time.October, 15, 10, 30, 0, 0, time.UTC)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	jwtSecret     string
	mockLedger    *MockLedgerService
	mockIdentity  *MockIdentityService
	mockBalance   *MockBalanceService
	mockStats     *MockStatsService
	mockReporting *MockReportingService
	mockCategory  *MockCategoryService
}

func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	signed, err := utils.GenerateJWT(userID, suite.jwtSecret, testIssuer, time.Now(), time.Hour)
	suite.Require().NoError(err)
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockLedger = new(MockLedgerService)
	suite.mockIdentity = new(MockIdentityService)
	suite.mockBalance = new(MockBalanceService)
	suite.mockStats = new(MockStatsService)
	suite.mockReporting = new(MockReportingService)
	suite.mockCategory = new(MockCategoryService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret, testIssuer))
	handlers.RegisterLedgerRoutes(v1, suite.mockLedger, suite.mockIdentity)
	handlers.RegisterReportingRoutes(v1, suite.mockBalance, suite.mockStats, suite.mockReporting, func() time.Time { return handlerNow })
	handlers.RegisterAllocationCategoryRoutes(v1, suite.mockCategory, suite.mockIdentity)
}

func (suite *HandlerTestSuite) do(method, path, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func decodeBody(suite *HandlerTestSuite, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func (suite *HandlerTestSuite) TestCreateEntry_Success() {
	tuition := domain.IncomeTuition
	entry := &domain.LedgerEntry{
		EntryID:      "e-1",
		Date:         time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC),
		Direction:    domain.DirectionIn,
		Amount:       decimal.NewFromInt(300),
		Description:  "Frais de scolarité",
		IncomeKind:   &tuition,
		FundSource:   domain.FundSourceTuition,
		SchoolYearID: "sy-2025",
		RecordedBy:   domain.Actor{UserID: accountant, DisplayName: "Awa Diop"},
	}
	suite.mockLedger.On("CreateEntry", mock.Anything,
		mock.MatchedBy(func(req dto.CreateLedgerEntryRequest) bool {
			return req.Direction == domain.DirectionIn && req.Amount.Equal(decimal.NewFromInt(300)) && req.Date == "2025-10-15"
		}), accountant).Return(entry, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/entries", accountant, map[string]any{
		"date":        "2025-10-15",
		"direction":   "in",
		"amount":      300,
		"description": "Frais de scolarité",
	})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(suite, w)
	suite.Equal(true, body["success"])
	data := body["data"].(map[string]any)
	suite.Equal("e-1", data["entryID"])
	suite.Equal("2025-10-15", data["date"])
	suite.Equal("tuition", data["fundSource"])
	suite.Equal("Entrée", data["directionLabel"])
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateEntry_InvalidDirection() {
	w := suite.do(http.MethodPost, "/api/v1/entries", accountant, map[string]any{
		"date":      "2025-10-15",
		"direction": "sideways",
		"amount":    10,
	})

	suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
	body := decodeBody(suite, w)
	suite.Equal(false, body["success"])
	suite.Equal("direction", body["field"])
	suite.mockLedger.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateEntry_InsufficientBalance() {
	suite.mockLedger.On("CreateEntry", mock.Anything, mock.AnythingOfType("dto.CreateLedgerEntryRequest"), accountant).
		Return(nil, &apperrors.InsufficientBalanceError{
			Source:      string(domain.FundSourceTuition),
			SourceLabel: domain.FundSourceTuition.DisplayName(),
			Available:   decimal.NewFromInt(100),
			Requested:   decimal.NewFromInt(150),
		}).Once()

	w := suite.do(http.MethodPost, "/api/v1/entries", accountant, map[string]any{
		"date":      "2025-10-15",
		"direction": "out",
		"amount":    150,
		"category":  "Salaires",
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code, w.Body.String())
	body := decodeBody(suite, w)
	suite.Equal(false, body["success"])
	suite.Equal("tuition", body["source"])
	suite.Equal("100", body["available"])
	suite.Equal("150", body["requested"])
	suite.Contains(body["message"], "insufficient balance")
}

func (suite *HandlerTestSuite) TestCreateEntry_FieldError() {
	suite.mockLedger.On("CreateEntry", mock.Anything, mock.Anything, accountant).
		Return(nil, apperrors.NewFieldError("amount", "must be greater than zero")).Once()

	w := suite.do(http.MethodPost, "/api/v1/entries", accountant, map[string]any{
		"date":      "2025-10-15",
		"direction": "in",
		"amount":    0,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("amount", decodeBody(suite, w)["field"])
}

func (suite *HandlerTestSuite) TestMissingToken() {
	w := suite.do(http.MethodGet, "/api/v1/balances", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockBalance.AssertNotCalled(suite.T(), "GetBalances", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetEntry_NotFound() {
	suite.mockLedger.On("GetEntry", mock.Anything, "missing").
		Return(nil, fmt.Errorf("entry missing: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/entries/missing", accountant, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteEntry_Success() {
	suite.mockLedger.On("DeleteEntry", mock.Anything, "e-1", accountant).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/entries/e-1", accountant, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestPurgeDeletedEntry_Forbidden() {
	suite.mockIdentity.On("ResolveUser", mock.Anything, accountant).
		Return(&domain.User{UserID: accountant, DisplayName: "Awa Diop", Role: domain.RoleAccountant}, nil).Once()
	suite.mockLedger.On("PurgeDeletedEntry", mock.Anything, "d-1", domain.RoleAccountant).
		Return(fmt.Errorf("%w: only a director or an admin may purge deleted entries", apperrors.ErrForbidden)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/deleted-entries/d-1", accountant, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal(false, decodeBody(suite, w)["success"])
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestPurgeDeletedEntry_Director() {
	suite.mockIdentity.On("ResolveUser", mock.Anything, director).
		Return(&domain.User{UserID: director, DisplayName: "Moussa Fall", Role: domain.RoleDirector}, nil).Once()
	suite.mockLedger.On("PurgeDeletedEntry", mock.Anything, "d-1", domain.RoleDirector).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/deleted-entries/d-1", director, nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestListDeletedEntries_RejectsOversizedPage() {
	w := suite.do(http.MethodGet, "/api/v1/deleted-entries?limit=500", accountant, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("limit", decodeBody(suite, w)["field"])
}

func (suite *HandlerTestSuite) TestListDeletedEntries_PassesQuery() {
	suite.mockLedger.On("ListDeletedEntries", mock.Anything, 20, 10, "cantine").
		Return(&dto.ListDeletedEntriesResponse{Entries: []dto.DeletedEntryResponse{}, Offset: 20, Limit: 10}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/deleted-entries?offset=20&limit=10&search=cantine", accountant, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetBalances() {
	suite.mockBalance.On("GetBalances", mock.Anything, "sy-2025").Return(&domain.FundBalances{
		SchoolYearID: "sy-2025",
		Tuition:      decimal.NewFromInt(300),
		Total:        decimal.NewFromInt(300),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/balances?schoolYearID=sy-2025", accountant, nil)

	suite.Equal(http.StatusOK, w.Code)
	data := decodeBody(suite, w)["data"].(map[string]any)
	suite.Equal("300", data["tuition"])
	suite.Equal("300", data["total"])
}

func (suite *HandlerTestSuite) TestAllocationReport_DefaultsToCurrentMonth() {
	sameDay := func(want time.Time) any {
		return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
	}
	suite.mockReporting.On("GetAllocationReport", mock.Anything,
		sameDay(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)),
		sameDay(time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC)),
	).Return(&domain.AllocationReport{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/allocation", accountant, nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestAllocationReport_InvalidDate() {
	w := suite.do(http.MethodGet, "/api/v1/reports/allocation?from=15/10/2025", accountant, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("from", decodeBody(suite, w)["field"])
}

func (suite *HandlerTestSuite) TestListFundSources() {
	w := suite.do(http.MethodGet, "/api/v1/fund-sources", accountant, nil)

	suite.Equal(http.StatusOK, w.Code)
	data := decodeBody(suite, w)["data"].([]any)
	suite.Len(data, len(domain.FundSources()))
}

func (suite *HandlerTestSuite) TestCreateCategory_Duplicate() {
	user := &domain.User{UserID: director, DisplayName: "Moussa Fall", Role: domain.RoleDirector}
	suite.mockIdentity.On("ResolveUser", mock.Anything, director).Return(user, nil).Once()
	suite.mockCategory.On("CreateCategory", mock.Anything, mock.AnythingOfType("dto.CreateAllocationCategoryRequest"), *user).
		Return(nil, fmt.Errorf("%w: category salaires already exists", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/allocation-categories", director, map[string]any{
		"name":       "salaires",
		"percentage": 40,
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockCategory.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestStats_InternalError() {
	suite.mockStats.On("GetStats", mock.Anything).
		Return(nil, apperrors.NewAppError(500, "failed to list entries", fmt.Errorf("connection reset"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/stats", accountant, nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to compute statistics", decodeBody(suite, w)["message"])
}

func (suite *HandlerTestSuite) TestWrongIssuerIsRejected() {
	signed, err := utils.GenerateJWT(accountant, suite.jwtSecret, "someone-else", time.Now(), time.Hour)
	suite.Require().NoError(err)

	req, err := http.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
