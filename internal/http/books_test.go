package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/shelf/internal/database/books"
	"github.com/mrlokans/shelf/internal/services"
)

func setupBooksRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := setupTestDB(t)
	controller := NewBooksController(services.NewBookService(books.NewRepository(db.DB)))

	router := gin.New()
	controller.RegisterRoutes(router.Group("/api/books"))
	return router
}

func doJSON(router *gin.Engine, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBooksController_GetAllBooks(t *testing.T) {
	t.Run("returns empty array when no books", func(t *testing.T) {
		router := setupBooksRouter(t)

		w := doJSON(router, "GET", "/api/books", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("returns created books", func(t *testing.T) {
		router := setupBooksRouter(t)
		doJSON(router, "POST", "/api/books", `{"title":"Book 1","author":"Author 1"}`)
		doJSON(router, "POST", "/api/books", `{"title":"Book 2","author":"Author 2"}`)

		w := doJSON(router, "GET", "/api/books", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var response []services.BookDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 2)
		assert.Equal(t, "Book 1", response[0].Title)
		assert.Equal(t, "Author 2", response[1].Author)
	})
}

func TestBooksController_CreateBook(t *testing.T) {
	t.Run("returns 201 with location", func(t *testing.T) {
		router := setupBooksRouter(t)

		w := doJSON(router, "POST", "/api/books", `{"title":"Dune","author":"Frank Herbert"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var created services.BookDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Dune", created.Title)
		assert.Equal(t, "Frank Herbert", created.Author)
		assert.Equal(t, "/api/books?id=1", w.Header().Get("Location"))
	})

	t.Run("ignores client supplied id", func(t *testing.T) {
		router := setupBooksRouter(t)
		doJSON(router, "POST", "/api/books", `{"title":"First","author":"A"}`)

		w := doJSON(router, "POST", "/api/books", `{"id":1,"title":"Second","author":"B"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var created services.BookDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, uint(2), created.ID)
	})

	t.Run("returns 400 on missing fields", func(t *testing.T) {
		router := setupBooksRouter(t)

		w := doJSON(router, "POST", "/api/books", `{"title":""}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response ValidationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Errors, 2)
	})
}

func TestBooksController_UpdateBook(t *testing.T) {
	t.Run("returns 404 with empty body for unknown id", func(t *testing.T) {
		router := setupBooksRouter(t)

		w := doJSON(router, "PUT", "/api/books/99", `{"title":"T","author":"A"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("returns 400 for non-numeric id", func(t *testing.T) {
		router := setupBooksRouter(t)

		w := doJSON(router, "PUT", "/api/books/abc", `{"title":"T","author":"A"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBooksController_DeleteBook(t *testing.T) {
	router := setupBooksRouter(t)
	doJSON(router, "POST", "/api/books", `{"title":"Gone","author":"A"}`)

	w := doJSON(router, "DELETE", "/api/books/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, "DELETE", "/api/books/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestBooksController_NoSingleBookRoute(t *testing.T) {
	router := setupBooksRouter(t)
	doJSON(router, "POST", "/api/books", `{"title":"Dune","author":"Frank Herbert"}`)

	w := doJSON(router, "GET", "/api/books/1", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// failingBookService returns err from every call.
type failingBookService struct {
	err error
}

func (s failingBookService) GetAll() ([]services.BookDTO, error) { return nil, s.err }
func (s failingBookService) Create(services.CreateBookDTO) (*services.BookDTO, error) {
	return nil, s.err
}
func (s failingBookService) Update(uint, services.CreateBookDTO) (*services.BookDTO, error) {
	return nil, s.err
}
func (s failingBookService) Delete(uint) (bool, error) { return false, s.err }

func TestBooksController_StoreFailure(t *testing.T) {
	controller := NewBooksController(failingBookService{err: errors.New("database is locked")})
	router := gin.New()
	controller.RegisterRoutes(router.Group("/api/books"))

	requests := []struct {
		method, path, body string
	}{
		{"GET", "/api/books", ""},
		{"POST", "/api/books", `{"title":"T","author":"A"}`},
		{"PUT", "/api/books/1", `{"title":"T","author":"A"}`},
		{"DELETE", "/api/books/1", ""},
	}

	for _, r := range requests {
		w := doJSON(router, r.method, r.path, r.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, "%s %s", r.method, r.path)
		assert.NotContains(t, w.Body.String(), "locked")
	}
}
