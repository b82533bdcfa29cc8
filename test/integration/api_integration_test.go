package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockroom/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, server http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func TestProductAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := SetupTestServer(t, testDB)

	t.Run("Empty store lists an empty array", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/api/products", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
		assert.Equal(t, "public, s-maxage=60, stale-while-revalidate=300", w.Header().Get("Cache-Control"))
	})

	t.Run("Create then get round trip", func(t *testing.T) {
		w := doJSON(t, server, http.MethodPost, "/api/products", `{"name":"Widget","quantity":5}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var created model.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotZero(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())

		w = doJSON(t, server, http.MethodGet, fmt.Sprintf("/api/products/%d", created.ID), "")
		require.Equal(t, http.StatusOK, w.Code)

		var fetched model.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
		assert.Equal(t, "Widget", fetched.Name)
		assert.Equal(t, 5, fetched.Quantity)
		assert.Nil(t, fetched.Description)
		assert.Nil(t, fetched.ImageURL)

		w = doJSON(t, server, http.MethodGet, "/api/products", "")
		require.Equal(t, http.StatusOK, w.Code)
		var listed []model.ProductSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))

		found := false
		for _, p := range listed {
			if p.ID == created.ID {
				found = true
			}
		}
		assert.True(t, found, "created product should appear in the list")
	})

	t.Run("Created IDs are never reused", func(t *testing.T) {
		seen := map[int64]bool{}
		for i := 0; i < 3; i++ {
			w := doJSON(t, server, http.MethodPost, "/api/products", `{"name":"Clone","quantity":1}`)
			require.Equal(t, http.StatusCreated, w.Code)

			var created model.Product
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
			assert.False(t, seen[created.ID])
			seen[created.ID] = true
		}
	})

	t.Run("Quantity zero is accepted, missing name is not", func(t *testing.T) {
		w := doJSON(t, server, http.MethodPost, "/api/products", `{"name":"Empty Shelf","quantity":0}`)
		assert.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, server, http.MethodPost, "/api/products", `{"quantity":5}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodeValidation, resp.Error)
		assert.Equal(t, "Name and quantity are required", resp.Message)
		assert.Equal(t, 400, resp.StatusCode)
		assert.NotEmpty(t, resp.CorrelationID)
	})

	t.Run("Form-style string quantity is coerced", func(t *testing.T) {
		w := doJSON(t, server, http.MethodPost, "/api/products", `{"name":"From Form","quantity":"17"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var created model.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, 17, created.Quantity)
	})

	t.Run("Unparsable IDs are 400 on every id-scoped endpoint", func(t *testing.T) {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			body := ""
			if method == http.MethodPut {
				body = `{"name":"Widget","quantity":5}`
			}
			w := doJSON(t, server, method, "/api/products/abc", body)
			assert.Equalf(t, http.StatusBadRequest, w.Code, "%s /api/products/abc", method)

			var resp model.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, model.ErrCodeValidation, resp.Error)
			assert.Equal(t, "Invalid product ID", resp.Message)
		}
	})

	t.Run("Parsable but absent IDs are 404", func(t *testing.T) {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			body := ""
			if method == http.MethodPut {
				body = `{"name":"Widget","quantity":5}`
			}
			w := doJSON(t, server, method, "/api/products/999999", body)
			assert.Equalf(t, http.StatusNotFound, w.Code, "%s /api/products/999999", method)
		}
	})

	t.Run("Update replaces every field and get reflects it", func(t *testing.T) {
		w := doJSON(t, server, http.MethodPost, "/api/products",
			`{"name":"Original","description":"old text","quantity":3,"imageUrl":"https://images.example.com/old.jpg"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var created model.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		w = doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/products/%d", created.ID),
			`{"name":"Replaced","quantity":8}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, server, http.MethodGet, fmt.Sprintf("/api/products/%d", created.ID), "")
		require.Equal(t, http.StatusOK, w.Code)

		var fetched model.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
		assert.Equal(t, "Replaced", fetched.Name)
		assert.Equal(t, 8, fetched.Quantity)
		// Full replacement: omitted fields are not preserved.
		assert.Nil(t, fetched.Description)
		assert.Nil(t, fetched.ImageURL)
		assert.Equal(t, created.ID, fetched.ID)
	})

	t.Run("Delete succeeds once then 404s", func(t *testing.T) {
		w := doJSON(t, server, http.MethodPost, "/api/products", `{"name":"Doomed","quantity":1}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var created model.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		path := fmt.Sprintf("/api/products/%d", created.ID)

		w = doJSON(t, server, http.MethodDelete, path, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Product deleted successfully"}`, w.Body.String())

		w = doJSON(t, server, http.MethodDelete, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = doJSON(t, server, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("List orders most recently created first", func(t *testing.T) {
		w := doJSON(t, server, http.MethodPost, "/api/products", `{"name":"Marker Product","quantity":1}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, server, http.MethodGet, "/api/products", "")
		require.Equal(t, http.StatusOK, w.Code)

		var listed []model.ProductSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
		require.NotEmpty(t, listed)
		assert.Equal(t, "Marker Product", listed[0].Name)
	})

	t.Run("Health endpoint", func(t *testing.T) {
		w := doJSON(t, server, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
