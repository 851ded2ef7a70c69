package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/shelf/internal/database"
	"github.com/mrlokans/shelf/internal/services"
)

// QuotationService is what the quotations controller needs from the service layer.
type QuotationService interface {
	GetAll() ([]services.QuotationDTO, error)
	GetByID(id uint) (*services.QuotationDTO, error)
	Create(input services.CreateQuotationDTO) (*services.QuotationDTO, error)
	Update(id uint, input services.CreateQuotationDTO) (*services.QuotationDTO, error)
	Delete(id uint) (bool, error)
}

// QuotationsController serves quotations. Every route sits behind the
// bearer middleware.
type QuotationsController struct {
	service QuotationService
}

func NewQuotationsController(service QuotationService) *QuotationsController {
	return &QuotationsController{service: service}
}

func (controller *QuotationsController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", controller.GetAllQuotations)
	group.GET("/:id", controller.GetQuotation)
	group.POST("", controller.CreateQuotation)
	group.PUT("/:id", controller.UpdateQuotation)
	group.DELETE("/:id", controller.DeleteQuotation)
}

func (controller *QuotationsController) GetAllQuotations(c *gin.Context) {
	quotations, err := controller.service.GetAll()
	if err != nil {
		respondInternalError(c, err, "list quotations")
		return
	}
	c.JSON(http.StatusOK, quotations)
}

func (controller *QuotationsController) GetQuotation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	quotation, err := controller.service.GetByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c)
			return
		}
		respondInternalError(c, err, "get quotation")
		return
	}

	c.JSON(http.StatusOK, quotation)
}

func (controller *QuotationsController) CreateQuotation(c *gin.Context) {
	var input services.CreateQuotationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	quotation, err := controller.service.Create(input)
	if err != nil {
		respondInternalError(c, err, "create quotation")
		return
	}

	c.Header("Location", c.FullPath()+"/"+strconv.FormatUint(uint64(quotation.ID), 10))
	c.JSON(http.StatusCreated, quotation)
}

func (controller *QuotationsController) UpdateQuotation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input services.CreateQuotationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	quotation, err := controller.service.Update(id, input)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c)
			return
		}
		respondInternalError(c, err, "update quotation")
		return
	}

	c.JSON(http.StatusOK, quotation)
}

func (controller *QuotationsController) DeleteQuotation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := controller.service.Delete(id)
	if err != nil {
		respondInternalError(c, err, "delete quotation")
		return
	}
	if !deleted {
		respondNotFound(c)
		return
	}

	c.Status(http.StatusNoContent)
}
