package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rannaghore/internal/application/catalog/usecases"
	"rannaghore/internal/interfaces/http/handlers/testutil"
	"rannaghore/internal/shared/errors"
)

type mockListProductsUC struct {
	result   *usecases.ListProductsResult
	err      error
	gotQuery usecases.ListProductsQuery
}

func (m *mockListProductsUC) Execute(_ context.Context, query usecases.ListProductsQuery) (*usecases.ListProductsResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockGetProductUC struct {
	result   *usecases.GetProductResult
	err      error
	gotQuery usecases.GetProductQuery
}

func (m *mockGetProductUC) Execute(_ context.Context, query usecases.GetProductQuery) (*usecases.GetProductResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

func TestCatalogHandler_ListProducts_Success(t *testing.T) {
	mockUC := &mockListProductsUC{
		result: &usecases.ListProductsResult{
			Products: []usecases.ProductSummary{
				{ID: 7, Name: "Beef Bhuna", Category: "Curry"},
			},
			Categories: []string{"Curry"},
		},
	}
	handler := NewCatalogHandler(mockUC, &mockGetProductUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/products", nil)

	handler.ListProducts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, mockUC.gotQuery.Search)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var result usecases.ListProductsResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Beef Bhuna", result.Products[0].Name)
}

func TestCatalogHandler_ListProducts_SearchTrimmed(t *testing.T) {
	mockUC := &mockListProductsUC{result: &usecases.ListProductsResult{Search: "bhuna"}}
	handler := NewCatalogHandler(mockUC, &mockGetProductUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/products", nil)
	testutil.SetQueryParams(c, map[string]string{"search": "  bhuna  "})

	handler.ListProducts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bhuna", mockUC.gotQuery.Search)
}

func TestCatalogHandler_GetProduct_Success(t *testing.T) {
	mockUC := &mockGetProductUC{
		result: &usecases.GetProductResult{
			Product: usecases.ProductSummary{ID: 7, Name: "Beef Bhuna"},
		},
	}
	handler := NewCatalogHandler(&mockListProductsUC{}, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/products/7", nil)
	testutil.SetURLParam(c, "id", "7")

	handler.GetProduct(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), mockUC.gotQuery.ProductID)
}

func TestCatalogHandler_GetProduct_BadID(t *testing.T) {
	handler := NewCatalogHandler(&mockListProductsUC{}, &mockGetProductUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/products/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.GetProduct(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_GetProduct_NotFound(t *testing.T) {
	mockUC := &mockGetProductUC{err: errors.NewNotFoundError("product 99 not found")}
	handler := NewCatalogHandler(&mockListProductsUC{}, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/products/99", nil)
	testutil.SetURLParam(c, "id", "99")

	handler.GetProduct(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
