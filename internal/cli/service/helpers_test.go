package service

import (
	"ShopFront/internal/cli/api"
	fsrepo "ShopFront/internal/cli/repo/fs"
	reposqlite "ShopFront/internal/cli/repo/sqlite"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
)

// newLocalCart - локальная корзина в temp-каталоге
func newLocalCart(t *testing.T) *reposqlite.CartRepositorySQLite {
	t.Helper()
	r, err := reposqlite.Open(filepath.Join(t.TempDir(), "cart.sqlite"))
	if err != nil {
		t.Fatalf("open local cart: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	if err := r.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return r
}

func newStore(t *testing.T) fsrepo.AuthFSStore {
	t.Helper()
	return fsrepo.AuthFSStore{TokenFile: filepath.Join(t.TempDir(), "auth_token")}
}

// fakeCartServer принимает POST /api/cart и запоминает тела запросов.
// failOn задаёт item_id, на котором сервер отвечает ошибкой со статусом failStatus.
type fakeCartServer struct {
	mu         sync.Mutex
	posted     []map[string]any
	auth       []string
	failOn     int64
	failStatus int
}

func (f *fakeCartServer) start(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/cart" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.auth = append(f.auth, r.Header.Get("Authorization"))
		f.mu.Unlock()
		if id, _ := body["item_id"].(float64); f.failOn != 0 && int64(id) == f.failOn {
			w.WriteHeader(f.failStatus)
			_, _ = w.Write([]byte(`{"error":"nope"}`))
			return
		}
		f.mu.Lock()
		f.posted = append(f.posted, body)
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Item added to cart","cart_item":{"id":1}}`))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func shopFor(ts *httptest.Server, token string) *ShopService {
	return NewShopService(api.NewClient(ts.URL, token))
}
