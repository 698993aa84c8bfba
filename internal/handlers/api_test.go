package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/himalayanharvest/storefront/internal/config"
	"github.com/himalayanharvest/storefront/internal/models"
	"github.com/himalayanharvest/storefront/internal/router"
	"github.com/himalayanharvest/storefront/internal/store"
)

type APITestSuite struct {
	suite.Suite
	store  *store.Store
	router *gin.Engine
}

func (suite *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment: "test",
		Payment: config.PaymentConfig{
			RazorpayKeyID:     "rzp_test_key",
			RazorpayKeySecret: "test_secret",
			Currency:          "INR",
		},
		Frontend: config.FrontendConfig{BaseURL: "http://localhost:5173"},
		Site:     config.SiteConfig{BaseURL: "https://himalayanharvest.in"},
	}

	suite.store = store.New()
	suite.router = router.Initialize(suite.store, cfg)
}

func (suite *APITestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) TestGetProducts() {
	w := suite.request("GET", "/api/products", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var products []models.Product
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(suite.T(), products, 3)
	assert.Equal(suite.T(), "himalayan-raw-honey", products[0].Slug)
}

func (suite *APITestSuite) TestGetProductBySlugNotFound() {
	w := suite.request("GET", "/api/products/no-such-product", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), "Product not found", body["error"])
}

func (suite *APITestSuite) TestPatchProductMergesOnlyPatchedFields() {
	w := suite.request("PATCH", "/api/products/1", map[string]interface{}{"inStock": 0})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var p models.Product
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(suite.T(), 0, p.InStock)
	assert.Equal(suite.T(), "599.00", p.Price)
	assert.Equal(suite.T(), "himalayan-raw-honey", p.Slug)
}

func (suite *APITestSuite) TestPatchProductIgnoresIdentityFields() {
	w := suite.request("PATCH", "/api/products/1", map[string]interface{}{
		"id":    "999",
		"slug":  "hijacked",
		"price": "649.00",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var p models.Product
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(suite.T(), "1", p.ID)
	assert.Equal(suite.T(), "himalayan-raw-honey", p.Slug)
	assert.Equal(suite.T(), "649.00", p.Price)
}

func (suite *APITestSuite) TestCreateAndDeleteProduct() {
	w := suite.request("POST", "/api/products", map[string]interface{}{
		"name":     "Wild Pickle",
		"slug":     "wild-pickle",
		"price":    "249.00",
		"category": "Pickle",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var created models.Product
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(suite.T(), created.ID)

	w = suite.request("DELETE", "/api/products/"+created.ID, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("DELETE", "/api/products/"+created.ID, nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestCartAddMergeAndJoin() {
	w := suite.request("POST", "/api/cart/add", map[string]interface{}{
		"productId": "1", "sessionId": "abc", "quantity": 2,
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var first models.CartItem
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &first))

	w = suite.request("POST", "/api/cart/add", map[string]interface{}{
		"productId": "1", "sessionId": "abc", "quantity": 1,
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var second models.CartItem
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(suite.T(), first.ID, second.ID)
	assert.Equal(suite.T(), 3, second.Quantity)

	w = suite.request("GET", "/api/cart/abc", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var items []models.CartItemWithProduct
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &items))
	suite.Require().Len(items, 1)
	assert.Equal(suite.T(), 3, items[0].Quantity)
	suite.Require().NotNil(items[0].Product)
	assert.Equal(suite.T(), "Himalayan Raw Honey", items[0].Product.Name)
}

func (suite *APITestSuite) TestCartAddDefaultsQuantityToOne() {
	w := suite.request("POST", "/api/cart/add", map[string]interface{}{
		"productId": "2", "sessionId": "abc",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var item models.CartItem
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(suite.T(), 1, item.Quantity)
}

func (suite *APITestSuite) TestCartAddValidation() {
	w := suite.request("POST", "/api/cart/add", map[string]interface{}{
		"quantity": 2,
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), "Validation failed", body["error"])
	assert.NotEmpty(suite.T(), body["details"])
}

func (suite *APITestSuite) TestCartJoinWithDanglingProduct() {
	suite.request("POST", "/api/cart/add", map[string]interface{}{
		"productId": "1", "sessionId": "abc", "quantity": 1,
	})
	suite.request("DELETE", "/api/products/1", nil)

	w := suite.request("GET", "/api/cart/abc", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var items []models.CartItemWithProduct
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &items))
	suite.Require().Len(items, 1)
	assert.Nil(suite.T(), items[0].Product)
}

func (suite *APITestSuite) TestClearCart() {
	suite.request("POST", "/api/cart/add", map[string]interface{}{
		"productId": "1", "sessionId": "abc", "quantity": 1,
	})
	suite.request("POST", "/api/cart/add", map[string]interface{}{
		"productId": "1", "sessionId": "other", "quantity": 1,
	})

	w := suite.request("POST", "/api/cart/abc/clear", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var items []models.CartItemWithProduct
	w = suite.request("GET", "/api/cart/abc", nil)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &items))
	assert.Empty(suite.T(), items)

	w = suite.request("GET", "/api/cart/other", nil)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(suite.T(), items, 1)
}

func (suite *APITestSuite) TestRemoveCartItemIdempotent() {
	w := suite.request("POST", "/api/cart/add", map[string]interface{}{
		"productId": "1", "sessionId": "abc", "quantity": 1,
	})
	var item models.CartItem
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &item))

	w = suite.request("DELETE", "/api/cart/"+item.ID, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	// second delete still succeeds
	w = suite.request("DELETE", "/api/cart/"+item.ID, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *APITestSuite) TestReviews() {
	w := suite.request("POST", "/api/reviews", map[string]interface{}{
		"productId":    "1",
		"customerName": "Ravi",
		"rating":       5,
		"title":        "Excellent",
		"content":      "Best honey I have had",
		"sessionId":    "abc",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/api/reviews/1", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var reviews []models.Review
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &reviews))
	suite.Require().Len(reviews, 1)
	assert.Equal(suite.T(), "Ravi", reviews[0].CustomerName)
}

func (suite *APITestSuite) TestWishlistFlow() {
	w := suite.request("POST", "/api/wishlist", map[string]interface{}{
		"productId": "1", "sessionId": "abc",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var entry models.WishlistItem
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &entry))

	// duplicate add returns the same entry
	w = suite.request("POST", "/api/wishlist", map[string]interface{}{
		"productId": "1", "sessionId": "abc",
	})
	var dup models.WishlistItem
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &dup))
	assert.Equal(suite.T(), entry.ID, dup.ID)

	w = suite.request("GET", "/api/wishlist/check/1/abc", nil)
	var check map[string]bool
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &check))
	assert.True(suite.T(), check["inWishlist"])

	w = suite.request("DELETE", "/api/wishlist/"+entry.ID, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/api/wishlist/check/1/abc", nil)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &check))
	assert.False(suite.T(), check["inWishlist"])
}

func (suite *APITestSuite) TestOrdersAndAnalytics() {
	w := suite.request("GET", "/api/analytics", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var a models.Analytics
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &a))
	assert.Zero(suite.T(), a.TotalOrders)
	assert.Zero(suite.T(), a.TotalRevenue)
	assert.Zero(suite.T(), a.TotalCost)

	w = suite.request("POST", "/api/orders", map[string]interface{}{
		"customerName":    "Asha",
		"customerEmail":   "asha@example.com",
		"customerPhone":   "9876543210",
		"customerAddress": "Manali, HP",
		"items":           `[{"productId":"1","quantity":2}]`,
		"totalPrice":      "1198.00",
	})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var order models.Order
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(suite.T(), models.OrderStatusPending, order.Status)

	w = suite.request("PATCH", "/api/orders/"+order.ID, map[string]interface{}{"status": "dispatched"})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("PATCH", "/api/orders/"+order.ID, map[string]interface{}{"status": "lost"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.request("GET", "/api/analytics", nil)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &a))
	assert.Equal(suite.T(), 1, a.TotalOrders)
	assert.InDelta(suite.T(), 1198.0, a.TotalRevenue, 0.001)
	assert.InDelta(suite.T(), 479.2, a.TotalCost, 0.001)
}

func (suite *APITestSuite) TestOrderValidation() {
	w := suite.request("POST", "/api/orders", map[string]interface{}{
		"customerName":  "Asha",
		"customerEmail": "not-an-email",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestRazorpayOrderValidation() {
	// a malformed body must fail before any gateway call is attempted
	w := suite.request("POST", "/api/razorpay/order", map[string]interface{}{
		"sessionId": "abc",
	})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestSitemapAndRobots() {
	w := suite.request("GET", "/sitemap.xml", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "/products/himalayan-raw-honey")

	w = suite.request("GET", "/robots.txt", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Sitemap:")
}

func (suite *APITestSuite) TestHealth() {
	w := suite.request("GET", "/health", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
