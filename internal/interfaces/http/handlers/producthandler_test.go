package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chefviral/internal/application/catalog/dto"
	"chefviral/internal/interfaces/http/handlers/testutil"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

type mockAddProductUC struct {
	result *dto.ProductResponse
	err    error
}

func (m *mockAddProductUC) Execute(ctx context.Context, userID uint, request dto.AddProductRequest) (*dto.ProductResponse, error) {
	return m.result, m.err
}

type mockListProductsUC struct {
	result *dto.ProductListResponse
	err    error
}

func (m *mockListProductsUC) Execute(ctx context.Context, userID uint) (*dto.ProductListResponse, error) {
	return m.result, m.err
}

type mockUpdateProductUC struct {
	result *dto.ProductResponse
	err    error
	gotSID string
}

func (m *mockUpdateProductUC) Execute(ctx context.Context, userID uint, sid string, request dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	m.gotSID = sid
	return m.result, m.err
}

type mockDeleteProductUC struct {
	err    error
	gotSID string
}

func (m *mockDeleteProductUC) Execute(ctx context.Context, userID uint, sid string) error {
	m.gotSID = sid
	return m.err
}

func newProductHandler(add *mockAddProductUC, list *mockListProductsUC, update *mockUpdateProductUC, del *mockDeleteProductUC) *ProductHandler {
	if add == nil {
		add = &mockAddProductUC{}
	}
	if list == nil {
		list = &mockListProductsUC{}
	}
	if update == nil {
		update = &mockUpdateProductUC{}
	}
	if del == nil {
		del = &mockDeleteProductUC{}
	}
	return NewProductHandler(add, list, update, del, logger.NewNopLogger())
}

func TestProductHandler_Add(t *testing.T) {
	t.Run("creates product", func(t *testing.T) {
		addUC := &mockAddProductUC{result: &dto.ProductResponse{ID: "prd_abc", Name: "X-Bacon", Price: 28.90}}
		handler := newProductHandler(addUC, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/products", gin.H{"name": "X-Bacon", "price": 28.90, "category": "Burgers"})
		testutil.SetAuthContext(c, 7, "usr_abc")
		handler.Add(c)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var got dto.ProductResponse
		require.NoError(t, json.Unmarshal(resp.Data, &got))
		assert.Equal(t, "prd_abc", got.ID)
	})

	t.Run("requires auth context", func(t *testing.T) {
		handler := newProductHandler(nil, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/products", gin.H{"name": "X-Bacon", "price": 28.90})
		handler.Add(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("maps plan limit to payment required", func(t *testing.T) {
		addUC := &mockAddProductUC{err: errors.NewPlanLimitError("limite de 10 produtos atingido no seu plano", "FREE")}
		handler := newProductHandler(addUC, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/products", gin.H{"name": "X-Bacon", "price": 28.90})
		testutil.SetAuthContext(c, 7, "usr_abc")
		handler.Add(c)

		assert.Equal(t, http.StatusPaymentRequired, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "FREE", resp.Error.Details)
	})

	t.Run("rejects body without name", func(t *testing.T) {
		handler := newProductHandler(nil, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/products", gin.H{"price": 10.0})
		testutil.SetAuthContext(c, 7, "usr_abc")
		handler.Add(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_List(t *testing.T) {
	listUC := &mockListProductsUC{result: &dto.ProductListResponse{
		Products:    []dto.ProductResponse{{ID: "prd_a"}, {ID: "prd_b"}},
		Count:       2,
		MaxProducts: 10,
	}}
	handler := newProductHandler(nil, listUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/products", nil)
	testutil.SetAuthContext(c, 7, "usr_abc")
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var got dto.ProductListResponse
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, 10, got.MaxProducts)
}

func TestProductHandler_Update(t *testing.T) {
	t.Run("updates by sid", func(t *testing.T) {
		updateUC := &mockUpdateProductUC{result: &dto.ProductResponse{ID: "prd_abc", Name: "X-Tudo"}}
		handler := newProductHandler(nil, nil, updateUC, nil)

		c, w := testutil.NewTestContext(http.MethodPut, "/products/prd_abc", gin.H{"name": "X-Tudo", "price": 30.0})
		testutil.SetAuthContext(c, 7, "usr_abc")
		testutil.SetURLParam(c, "sid", "prd_abc")
		handler.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "prd_abc", updateUC.gotSID)
	})

	t.Run("not found for foreign product", func(t *testing.T) {
		updateUC := &mockUpdateProductUC{err: errors.NewNotFoundError("produto não encontrado")}
		handler := newProductHandler(nil, nil, updateUC, nil)

		c, w := testutil.NewTestContext(http.MethodPut, "/products/prd_zzz", gin.H{"name": "X", "price": 1.0})
		testutil.SetAuthContext(c, 7, "usr_abc")
		testutil.SetURLParam(c, "sid", "prd_zzz")
		handler.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductHandler_Delete(t *testing.T) {
	deleteUC := &mockDeleteProductUC{}
	handler := newProductHandler(nil, nil, nil, deleteUC)

	c, w := testutil.NewTestContext(http.MethodDelete, "/products/prd_abc", nil)
	testutil.SetAuthContext(c, 7, "usr_abc")
	testutil.SetURLParam(c, "sid", "prd_abc")
	handler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "prd_abc", deleteUC.gotSID)
}
