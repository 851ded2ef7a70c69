package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/shelf/internal/database"
	"github.com/mrlokans/shelf/internal/services"
)

// BookService is what the books controller needs from the service layer.
type BookService interface {
	GetAll() ([]services.BookDTO, error)
	Create(input services.CreateBookDTO) (*services.BookDTO, error)
	Update(id uint, input services.CreateBookDTO) (*services.BookDTO, error)
	Delete(id uint) (bool, error)
}

type BooksController struct {
	service BookService
}

func NewBooksController(service BookService) *BooksController {
	return &BooksController{
		service: service,
	}
}

// RegisterRoutes mounts the book endpoints. There is no single-book GET;
// the Location header of a create points at the list filtered by id.
func (controller *BooksController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", controller.GetAllBooks)
	group.POST("", controller.CreateBook)
	group.PUT("/:id", controller.UpdateBook)
	group.DELETE("/:id", controller.DeleteBook)
}

func (controller *BooksController) GetAllBooks(c *gin.Context) {
	books, err := controller.service.GetAll()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, books)
}

func (controller *BooksController) CreateBook(c *gin.Context) {
	var input services.CreateBookDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	book, err := controller.service.Create(input)
	if err != nil {
		respondInternalError(c, err, "create book")
		return
	}

	c.Header("Location", c.FullPath()+"?id="+strconv.FormatUint(uint64(book.ID), 10))
	c.JSON(http.StatusCreated, book)
}

func (controller *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input services.CreateBookDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	book, err := controller.service.Update(id, input)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c)
			return
		}
		respondInternalError(c, err, "update book")
		return
	}

	c.JSON(http.StatusOK, book)
}

func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := controller.service.Delete(id)
	if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	if !deleted {
		respondNotFound(c)
		return
	}

	c.Status(http.StatusNoContent)
}
