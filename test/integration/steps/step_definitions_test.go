//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/application/usecase/budget"
	"github.com/budget-tracker/backend/internal/application/usecase/health"
	"github.com/budget-tracker/backend/internal/application/usecase/insight"
	"github.com/budget-tracker/backend/internal/application/usecase/trend"
	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/infra/server/router"
	"github.com/budget-tracker/backend/internal/integration/adapters"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-tracker/backend/internal/integration/persistence"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
	"github.com/budget-tracker/backend/test/integration/mock"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
	testJWTIssuer = "budget-tracker"
)

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	accessToken     string
	currentUserID   uuid.UUID
	userIDs         map[string]uuid.UUID
	categoryIDs     map[string]uuid.UUID
	currentBudgetID uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testClock *mock.Clock
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	if testClock == nil {
		testClock = mock.NewClock()
	}

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"budgets":      &model.BudgetModel{},
			"transactions": &model.TransactionModel{},
			"accounts":     &model.AccountModel{},
			"categories":   &model.CategoryModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// Auth setup steps
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Data setup steps
	ctx.Given(`^a category "([^"]*)" exists$`, test.aCategoryExists)
	ctx.Given(`^(\d+) active accounts? exists?$`, test.activeAccountsExist)
	ctx.Given(`^a budget "([^"]*)" of "([^"]*)" exists for the current month$`, test.aBudgetExistsForCurrentMonth)
	ctx.Given(`^a budget "([^"]*)" of "([^"]*)" exists for the current month in category "([^"]*)"$`, test.aBudgetExistsForCurrentMonthInCategory)
	ctx.Given(`^a budget "([^"]*)" of "([^"]*)" exists from "([^"]*)" to "([^"]*)"$`, test.aBudgetExistsInWindow)
	ctx.Given(`^an expense of "([^"]*)" on "([^"]*)" exists$`, test.anExpenseExists)
	ctx.Given(`^an expense of "([^"]*)" on "([^"]*)" exists in category "([^"]*)"$`, test.anExpenseExistsInCategory)
	ctx.Given(`^an income of "([^"]*)" on "([^"]*)" exists$`, test.anIncomeExists)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.userIDs = make(map[string]uuid.UUID)
	t.categoryIDs = make(map[string]uuid.UUID)
	t.currentBudgetID = uuid.Nil
	testClock.Set(time.Now().UTC())

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			budgetRepo := persistence.NewBudgetRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			accountRepo := persistence.NewAccountRepository(testDB.DbConn)

			// Create adapters/services
			tokenService := adapters.NewTokenService(testJWTSecret, testJWTIssuer)
			summaryCache := adapters.NewRedisSummaryCache(mock.NewRedis(), time.Minute)

			// Create budget use cases
			spendUseCase := budget.NewComputeSpendingUseCase(transactionRepo)
			listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
			createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
			updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
			deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
			currentBudgetsUseCase := budget.NewGetCurrentBudgetsUseCase(budgetRepo, spendUseCase, testClock)
			alertsUseCase := budget.NewGetBudgetAlertsUseCase(currentBudgetsUseCase)
			duplicateBudgetUseCase := budget.NewDuplicateBudgetUseCase(budgetRepo, testClock)
			recurringBudgetsUseCase := budget.NewCreateRecurringBudgetsUseCase(budgetRepo, testClock)
			fromPreviousMonthUseCase := budget.NewCreateFromPreviousMonthUseCase(budgetRepo, testClock)

			// Create dashboard use cases
			healthScoreUseCase := health.NewGetHealthScoreUseCase(
				currentBudgetsUseCase,
				transactionRepo,
				accountRepo,
				summaryCache,
				testClock,
			)
			trendsUseCase := trend.NewGetBudgetTrendsUseCase(budgetRepo, spendUseCase, testClock)
			insightsUseCase := insight.NewGetInsightsUseCase(currentBudgetsUseCase, transactionRepo, testClock)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			budgetController := controller.NewBudgetController(
				listBudgetsUseCase,
				createBudgetUseCase,
				updateBudgetUseCase,
				deleteBudgetUseCase,
				currentBudgetsUseCase,
				alertsUseCase,
				duplicateBudgetUseCase,
				recurringBudgetsUseCase,
				fromPreviousMonthUseCase,
			)

			dashboardController := controller.NewDashboardController(
				healthScoreUseCase,
				trendsUseCase,
				insightsUseCase,
			)

			// Create middleware
			dashboardRateLimiter := middleware.NewRateLimiterWithConfig(1000, time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				budgetController,
				dashboardController,
				dashboardRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) todayIs(date string) error {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	testClock.Set(parsed)
	return nil
}

func (t *testContext) iAmLoggedInAs(email string) error {
	userID, ok := t.userIDs[email]
	if !ok {
		userID = uuid.New()
		t.userIDs[email] = userID
	}
	t.currentUserID = userID

	tokenService := adapters.NewTokenService(testJWTSecret, testJWTIssuer)
	token, err := tokenService.GenerateAccessToken(context.Background(), userID, email)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = token
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) aCategoryExists(name string) error {
	categoryID := uuid.New()
	t.categoryIDs[name] = categoryID

	now := testClock.Now()
	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		UserID:    t.currentUserID,
		Name:      name,
		Color:     "#6366F1",
		Icon:      "tag",
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(categoryModel).Error
}

func (t *testContext) activeAccountsExist(count int) error {
	now := testClock.Now()
	for i := 0; i < count; i++ {
		accountModel := &model.AccountModel{
			ID:             uuid.New(),
			UserID:         t.currentUserID,
			Name:           fmt.Sprintf("Account %d", i+1),
			Type:           "checking",
			IncludeInTotal: true,
			IsActive:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := t.db.DbConn.Create(accountModel).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) aBudgetExistsForCurrentMonth(name, amount string) error {
	start, end := budget.MonthWindow(testClock.Now())
	return t.createBudget(name, amount, start, end, entity.AllCategories())
}

func (t *testContext) aBudgetExistsForCurrentMonthInCategory(name, amount, categoryName string) error {
	categoryID, ok := t.categoryIDs[categoryName]
	if !ok {
		return fmt.Errorf("category %q has not been created", categoryName)
	}
	start, end := budget.MonthWindow(testClock.Now())
	return t.createBudget(name, amount, start, end, entity.SpecificCategories([]uuid.UUID{categoryID}))
}

func (t *testContext) aBudgetExistsInWindow(name, amount, startDate, endDate string) error {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	return t.createBudget(name, amount, start, end, entity.AllCategories())
}

func (t *testContext) createBudget(name, amount string, start, end time.Time, scope entity.CategoryScope) error {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	b := entity.NewBudget(
		t.currentUserID, name, "",
		parsed,
		entity.BudgetPeriodMonth,
		start, end,
		scope,
		80, true,
	)
	t.currentBudgetID = b.ID

	return t.db.DbConn.Create(model.BudgetFromEntity(b)).Error
}

func (t *testContext) anExpenseExists(amount, date string) error {
	return t.createTransaction(amount, date, entity.TransactionTypeExpense, nil)
}

func (t *testContext) anExpenseExistsInCategory(amount, date, categoryName string) error {
	categoryID, ok := t.categoryIDs[categoryName]
	if !ok {
		return fmt.Errorf("category %q has not been created", categoryName)
	}
	return t.createTransaction(amount, date, entity.TransactionTypeExpense, &categoryID)
}

func (t *testContext) anIncomeExists(amount, date string) error {
	return t.createTransaction(amount, date, entity.TransactionTypeIncome, nil)
}

func (t *testContext) createTransaction(amount, date string, txType entity.TransactionType, categoryID *uuid.UUID) error {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	now := testClock.Now()
	transactionModel := &model.TransactionModel{
		ID:          uuid.New(),
		UserID:      t.currentUserID,
		Date:        parsedDate,
		Description: fmt.Sprintf("%s of %s", txType, amount),
		Amount:      parsed,
		Type:        string(txType),
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{budget_id}}", t.currentBudgetID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	for name, id := range t.categoryIDs {
		content = strings.ReplaceAll(content, fmt.Sprintf("{{category_id:%s}}", name), id.String())
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture the budget ID from create and duplicate responses.
	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.currentBudgetID = id
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entityModel).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
	if result.Error != nil {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entityModel).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
