// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/infra/dependency"
	"github.com/budget-tracker/backend/internal/integration/cache"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/validator"
	"github.com/budget-tracker/backend/internal/integration/persistence"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
	"github.com/budget-tracker/backend/test/integration/mock"
)

type testContext struct {
	client   *http.Client
	headers  map[string]string
	response *response
	db       *mock.Db
	redis    *mock.Redis
	timeMock *mock.Time
}

type response struct {
	status  int
	headers http.Header
	body    any
}

var (
	serverInit sync.Once
	server     *httptest.Server
	cfg        *config.Config
	timeMock   = mock.NewTime()
)

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})

	ctx.AfterSuite(func() {
		if server != nil {
			server.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"budgets":      &model.BudgetModel{},
			"transactions": &model.TransactionModel{},
		}),
		redis:    mock.NewRedis(),
		timeMock: timeMock,
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)

	// Data setup steps
	ctx.Given(`^the following transactions exist:$`, test.theFollowingTransactionsExist)
	ctx.Given(`^the following budgets exist:$`, test.theFollowingBudgetsExist)

	// Cache steps
	ctx.Given(`^the cache is unavailable$`, test.theCacheIsUnavailable)
	ctx.When(`^the cached entries expire$`, test.theCachedEntriesExpire)
	ctx.Then(`^the cache should contain the key "([^"]*)"$`, test.theCacheShouldContainTheKey)
	ctx.Then(`^the cache should not contain the key "([^"]*)"$`, test.theCacheShouldNotContainTheKey)

	// Header steps
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response header "([^"]*)" should be "([^"]*)"$`, test.theResponseHeaderShouldBe)
	ctx.Then(`^the response should be a list of (\d+) items$`, test.theResponseShouldBeAListOfItems)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.timeMock.Reset()

	if err := t.redis.Clear(); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		validator.Register()

		cfg = &config.Config{
			Server: config.ServerConfig{Environment: "test"},
			Cache:  config.CacheConfig{TTL: 300 * time.Second},
			RateLimit: config.RateLimitConfig{
				MaxWrites: 1000,
				Window:    time.Minute,
			},
		}

		redisCache := cache.NewRedisCacheFromClient(t.redis.Client)
		injector := dependency.NewInjectorWithClock(cfg, t.db.DbConn, redisCache, t.db.HealthCheck, t.timeMock.Now)
		server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	})
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) theCurrentTimeIs(value string) error {
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	t.timeMock.SetCurrentTime(now)
	return nil
}

func (t *testContext) theFollowingTransactionsExist(table *godog.Table) error {
	repo := persistence.NewTransactionRepository(t.db.DbConn)
	for _, row := range tableRows(table) {
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", row["amount"], err)
		}
		date, err := time.Parse("2006-01-02", row["date"])
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", row["date"], err)
		}
		txn := entity.NewTransaction(amount, date, row["description"], entity.Category(row["category"]))
		if err := repo.Create(context.Background(), txn); err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) theFollowingBudgetsExist(table *godog.Table) error {
	repo := persistence.NewBudgetRepository(t.db.DbConn)
	for _, row := range tableRows(table) {
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", row["amount"], err)
		}
		month, err := strconv.Atoi(row["month"])
		if err != nil {
			return err
		}
		year, err := strconv.Atoi(row["year"])
		if err != nil {
			return err
		}
		budget := entity.NewBudget(entity.Category(row["category"]), amount, month, year)
		if err := repo.Create(context.Background(), budget); err != nil {
			return err
		}
	}
	return nil
}

// tableRows maps each data row by the header row's cell values.
func tableRows(table *godog.Table) []map[string]string {
	if len(table.Rows) == 0 {
		return nil
	}
	header := table.Rows[0].Cells
	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		values := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			values[header[i].Value] = cell.Value
		}
		rows = append(rows, values)
	}
	return rows
}

func (t *testContext) theCacheIsUnavailable() error {
	t.redis.Break()
	return nil
}

func (t *testContext) theCachedEntriesExpire() error {
	t.redis.Server.FastForward(cfg.Cache.TTL + time.Second)
	return nil
}

func (t *testContext) theCacheShouldContainTheKey(key string) error {
	if !t.redis.Server.Exists(key) {
		return fmt.Errorf("expected cache key %q, have %v", key, t.redis.Server.Keys())
	}
	return nil
}

func (t *testContext) theCacheShouldNotContainTheKey(key string) error {
	if t.redis.Server.Exists(key) {
		return fmt.Errorf("expected cache key %q to be absent", key)
	}
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(body.Content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	if server == nil {
		return errors.New("the API server is not running")
	}

	req, err := http.NewRequest(method, server.URL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
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

	t.response = &response{
		status:  resp.StatusCode,
		headers: resp.Header,
	}

	var parsed any
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = parsed
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

func (t *testContext) theResponseHeaderShouldBe(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if actual := t.response.headers.Get(header); actual != expected {
		return fmt.Errorf("header %q expected %q, got %q", header, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseShouldBeAListOfItems(count int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	items, ok := t.response.body.([]any)
	if !ok {
		return fmt.Errorf("response is not a JSON array: %v", t.response.body)
	}
	if len(items) != count {
		return fmt.Errorf("expected %d items, got %d: %v", count, len(items), items)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value, ok := getFieldValue(t.response.body, field)
	if !ok {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
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
	if _, ok := getFieldValue(t.response.body, field); !ok {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	modelValue, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(modelValue).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}
	if err := query.Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

// getFieldValue walks a dot separated path; numeric segments index into arrays.
func getFieldValue(object any, dotSeparatedField string) (any, bool) {
	current := object
	for _, part := range strings.Split(dotSeparatedField, ".") {
		switch v := current.(type) {
		case map[string]any:
			next, ok := v[part]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(v) {
				return nil, false
			}
			current = v[index]
		default:
			return nil, false
		}
	}
	return current, true
}
