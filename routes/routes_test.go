package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GodfreySilungwe/Quantic/configs"
	"github.com/GodfreySilungwe/Quantic/entity"
)

const testSecret = "s3cret"

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *configs.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))

	cfg := &configs.Config{
		AdminSecret: testSecret,
		ImagesDir:   t.TempDir(),
	}

	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r, db, cfg
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func adminHeader() map[string]string {
	return map[string]string{"X-Admin-Secret": testSecret}
}

func TestMenuListing(t *testing.T) {
	r, db, _ := setupRouter(t)
	require.NoError(t, configs.SeedMenu(db))

	w := doJSON(t, r, http.MethodGet, "/menu", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cats []struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Items []struct {
			Name       string `json:"name"`
			PriceCents int    `json:"price_cents"`
			Available  bool   `json:"available"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cats))
	require.Len(t, cats, 2)
	require.Equal(t, "Coffee", cats[0].Name)
	require.Equal(t, "Pastries", cats[1].Name)
	require.Equal(t, 250, cats[0].Items[0].PriceCents)
}

func TestCheckoutEndpoint(t *testing.T) {
	r, db, _ := setupRouter(t)
	require.NoError(t, configs.SeedMenu(db))

	var espresso entity.MenuItem
	require.NoError(t, db.Where("name = ?", "Espresso").First(&espresso).Error)

	w := doJSON(t, r, http.MethodPost, "/cart/checkout", gin.H{
		"items":         []gin.H{{"menu_item_id": espresso.ID, "qty": 2}},
		"customer_name": "Bo",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	require.Equal(t, "pending", body["status"])
	require.NotZero(t, body["order_id"])

	var order entity.Order
	require.NoError(t, db.First(&order, uint(body["order_id"].(float64))).Error)
	require.Equal(t, 500, order.TotalCents)

	// missing customer name
	w = doJSON(t, r, http.MethodPost, "/cart/checkout", gin.H{
		"items": []gin.H{{"menu_item_id": espresso.ID}},
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// unknown menu item aborts and reports the id
	w = doJSON(t, r, http.MethodPost, "/cart/checkout", gin.H{
		"items":         []gin.H{{"menu_item_id": 424242}},
		"customer_name": "Bo",
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, decode(t, w)["error"], "424242")
}

func TestReservationEndpoint(t *testing.T) {
	r, db, _ := setupRouter(t)

	payload := gin.H{
		"name":      "Ana",
		"email":     "Ana@X.com",
		"time_slot": "2025-11-25T18:30:00",
		"guests":    2,
	}

	w1 := doJSON(t, r, http.MethodPost, "/reservations", payload, nil)
	require.Equal(t, http.StatusCreated, w1.Code)
	first := decode(t, w1)

	w2 := doJSON(t, r, http.MethodPost, "/reservations", payload, nil)
	require.Equal(t, http.StatusCreated, w2.Code)
	second := decode(t, w2)

	t1 := int(first["table_number"].(float64))
	t2 := int(second["table_number"].(float64))
	require.NotEqual(t, t1, t2)
	for _, n := range []int{t1, t2} {
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 30)
	}

	var customers int64
	require.NoError(t, db.Model(&entity.Customer{}).
		Where("email = ?", "ana@x.com").
		Count(&customers).Error)
	require.EqualValues(t, 1, customers)

	// malformed input
	w := doJSON(t, r, http.MethodPost, "/reservations", gin.H{"name": "Ana"}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/reservations", gin.H{
		"name": "Ana", "email": "ana@x.com", "time_slot": "tonight-ish",
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReservationNewsletterOptIn(t *testing.T) {
	r, db, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/reservations", gin.H{
		"name":       "Ana",
		"email":      "ana@x.com",
		"time_slot":  "2025-11-25T18:30:00",
		"newsletter": true,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var sub entity.Subscriber
	require.NoError(t, db.Where("email = ?", "ana@x.com").First(&sub).Error)

	var cust entity.Customer
	require.NoError(t, db.Where("email = ?", "ana@x.com").First(&cust).Error)
	require.True(t, cust.Newsletter)
}

func TestNewsletterEndpoint(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/newsletter", gin.H{"email": "fan@cafe.com"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "subscribed", decode(t, w)["status"])

	w = doJSON(t, r, http.MethodPost, "/newsletter", gin.H{"email": "Fan@Cafe.com"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "already_subscribed", decode(t, w)["status"])

	w = doJSON(t, r, http.MethodPost, "/newsletter", gin.H{"email": "nope"}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminAuthGate(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/admin/orders", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin/orders", nil, map[string]string{"X-Admin-Secret": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin/orders", nil, adminHeader())
	require.Equal(t, http.StatusOK, w.Code)

	// query parameter transport
	w = doJSON(t, r, http.MethodGet, "/admin/orders?admin_secret="+testSecret, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminCategoryCRUD(t *testing.T) {
	r, db, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/admin/categories", gin.H{"name": "Teas", "position": 3}, adminHeader())
	require.Equal(t, http.StatusCreated, w.Code)
	catID := uint(decode(t, w)["id"].(float64))

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/admin/categories/%d", catID), gin.H{"position": 1}, adminHeader())
	require.Equal(t, http.StatusOK, w.Code)

	var cat entity.Category
	require.NoError(t, db.First(&cat, catID).Error)
	require.Equal(t, "Teas", cat.Name)
	require.Equal(t, 1, cat.Position)

	// attach an item: delete is now refused
	item := entity.MenuItem{Name: "Sencha", PriceCents: 400, CategoryID: catID}
	require.NoError(t, db.Create(&item).Error)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/admin/categories/%d", catID), nil, adminHeader())
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "menu_item_ids")

	require.NoError(t, db.Delete(&entity.MenuItem{}, item.ID).Error)
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/admin/categories/%d", catID), nil, adminHeader())
	require.Equal(t, http.StatusOK, w.Code)
}

func TestMenuItemDeleteGuard(t *testing.T) {
	r, db, _ := setupRouter(t)
	require.NoError(t, configs.SeedMenu(db))

	var espresso entity.MenuItem
	require.NoError(t, db.Where("name = ?", "Espresso").First(&espresso).Error)

	w := doJSON(t, r, http.MethodPost, "/cart/checkout", gin.H{
		"items":         []gin.H{{"menu_item_id": espresso.ID}},
		"customer_name": "Bo",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(decode(t, w)["order_id"].(float64))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/admin/menu_items/%d", espresso.ID), nil, adminHeader())
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	ids, ok := body["order_ids"].([]any)
	require.True(t, ok)
	require.Contains(t, ids, float64(orderID))

	// the row is untouched
	require.NoError(t, db.First(&entity.MenuItem{}, espresso.ID).Error)

	// an unreferenced item deletes cleanly
	var muffin entity.MenuItem
	require.NoError(t, db.Where("name = ?", "Blueberry Muffin").First(&muffin).Error)
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/admin/menu_items/%d", muffin.ID), nil, adminHeader())
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminMenuItemMultipartCreate(t *testing.T) {
	r, db, cfg := setupRouter(t)
	require.NoError(t, configs.SeedMenu(db))

	var cat entity.Category
	require.NoError(t, db.Where("name = ?", "Coffee").First(&cat).Error)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Flat White"))
	require.NoError(t, mw.WriteField("price_cents", "380"))
	require.NoError(t, mw.WriteField("category_id", fmt.Sprint(cat.ID)))
	fw, err := mw.CreateFormFile("image", "flatwhite.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("not really a jpeg"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/menu_items", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Admin-Secret", testSecret)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	filename, _ := body["image_filename"].(string)
	require.True(t, strings.HasSuffix(filename, "_flatwhite.jpg"), "got %q", filename)

	saved, err := os.ReadFile(filepath.Join(cfg.ImagesDir, filename))
	require.NoError(t, err)
	require.Equal(t, "not really a jpeg", string(saved))
}

func TestGalleryAndImageServing(t *testing.T) {
	r, _, cfg := setupRouter(t)

	require.NoError(t, os.WriteFile(filepath.Join(cfg.ImagesDir, "b.jpg"), []byte("bbb"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ImagesDir, "a.jpg"), []byte("aaa"), 0o644))

	w := doJSON(t, r, http.MethodGet, "/gallery", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var names []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &names))
	require.Equal(t, []string{"a.jpg", "b.jpg"}, names)

	w = doJSON(t, r, http.MethodGet, "/images/a.jpg", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "aaa", w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/images/missing.jpg", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
