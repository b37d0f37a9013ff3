package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopassist/internal/domain/entity"
	"shopassist/internal/domain/repository"
	"shopassist/internal/usecase"
)

const extractionJSON = `{"intent": "product_price", "product_name": "kiwi", "category": "", "rating_threshold": 0, "rating_direction": ""}`

type stubCatalog struct {
	products []entity.Product
	err      error
}

func (c *stubCatalog) Products(_ context.Context) ([]entity.Product, error) {
	return c.products, c.err
}

type stubGenerator struct {
	responses []string
	calls     int
}

func (g *stubGenerator) Generate(_ context.Context, _, _ string, _ float64) (string, error) {
	i := g.calls
	g.calls++
	if i < len(g.responses) {
		return g.responses[i], nil
	}
	return "", entity.ErrModelRequestFailed
}

func newTestApp(catalog repository.Catalog, gen repository.TextGenerator, defaultKey string) *fiber.App {
	factory := repository.TextGeneratorFactory(func(string) repository.TextGenerator { return gen })
	orch := usecase.NewOrchestrator(catalog, nil, factory, defaultKey)

	app := fiber.New()
	SetupRouter(app, NewChatHandler(orch))
	return app
}

func postChat(t *testing.T, app *fiber.App, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestHandleChat_EmptyMessageRejected(t *testing.T) {
	app := newTestApp(&stubCatalog{}, &stubGenerator{}, "key")

	status, _ := postChat(t, app, `{"message": "  "}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandleChat_MissingCredential(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	app := newTestApp(&stubCatalog{}, &stubGenerator{}, "")

	status, _ := postChat(t, app, `{"message": "hello"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestHandleChat_Success(t *testing.T) {
	catalog := &stubCatalog{products: []entity.Product{{ID: 30, Title: "Kiwi", Category: "groceries", Price: 2.49}}}
	gen := &stubGenerator{responses: []string{extractionJSON, "The Kiwi is priced at $2.49."}}
	app := newTestApp(catalog, gen, "key")

	status, raw := postChat(t, app, `{"message": "What's the price of kiwi?"}`)
	require.Equal(t, fiber.StatusOK, status)

	var chatResp entity.ChatResponse
	require.NoError(t, json.Unmarshal(raw, &chatResp))
	assert.Equal(t, "The Kiwi is priced at $2.49.", chatResp.Response)
	assert.Equal(t, 2, gen.calls)
}

func TestHandleChat_ModelFailureMapsToBadGateway(t *testing.T) {
	app := newTestApp(&stubCatalog{}, &stubGenerator{}, "key")

	status, _ := postChat(t, app, `{"message": "hello"}`)
	assert.Equal(t, fiber.StatusBadGateway, status)
}

func TestHandleChat_CatalogFailureMapsToServiceUnavailable(t *testing.T) {
	catalog := &stubCatalog{err: entity.ErrCatalogUnavailable}
	gen := &stubGenerator{responses: []string{extractionJSON}}
	app := newTestApp(catalog, gen, "key")

	status, _ := postChat(t, app, `{"message": "What's the price of kiwi?"}`)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestHandleProducts(t *testing.T) {
	catalog := &stubCatalog{products: []entity.Product{
		{ID: 1, Title: "Kiwi"},
		{ID: 2, Title: "MacBook Pro"},
	}}
	app := newTestApp(catalog, &stubGenerator{}, "key")

	req := httptest.NewRequest(fiber.MethodGet, "/api/products", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body entity.ProductsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Total)
	assert.Len(t, body.Products, 2)
}

func TestHandleProducts_CatalogUnavailable(t *testing.T) {
	app := newTestApp(&stubCatalog{err: entity.ErrCatalogUnavailable}, &stubGenerator{}, "key")

	req := httptest.NewRequest(fiber.MethodGet, "/api/products", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	app := newTestApp(&stubCatalog{}, &stubGenerator{}, "key")

	req := httptest.NewRequest(fiber.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
