package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/address-query/app/requests"
	"github.com/address-query/app/responses"
	"github.com/address-query/app/services"
	"github.com/address-query/helpers/utils"
	"github.com/address-query/internal/addressquery"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QueryController controller xử lý các request biên dịch truy vấn
type QueryController struct {
	queryService *services.QueryService
	logger       *zap.Logger
}

// NewQueryController tạo mới QueryController
func NewQueryController(queryService *services.QueryService, logger *zap.Logger) *QueryController {
	return &QueryController{
		queryService: queryService,
		logger:       logger,
	}
}

// CompileAddressQuery biên dịch địa chỉ có cấu trúc thành truy vấn DSL.
// The query is returned, never executed.
func (qc *QueryController) CompileAddressQuery(c *gin.Context) {
	var req requests.CompileQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "Request không hợp lệ: " + err.Error(),
		})
		return
	}

	startTime := time.Now()
	requestID := utils.GenerateRequestID()

	compiled, err := qc.queryService.Compile(req.Components(), services.CompileOptions{
		Language: req.Language,
		Lenient:  req.Lenient,
	})
	switch {
	case errors.Is(err, services.ErrEmptyAddress):
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "EMPTY_ADDRESS",
			Message: "Địa chỉ không có thành phần nào",
		})
		return
	case errors.Is(err, addressquery.ErrUnsupportedLanguage):
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "UNSUPPORTED_LANGUAGE",
			Message: err.Error(),
		})
		return
	case err != nil:
		qc.logger.Error("Failed to compile address query", zap.String("request_id", requestID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "COMPILE_ERROR",
			Message: "Lỗi biên dịch truy vấn: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.CompileQueryResponse{
		RequestID:        requestID,
		Language:         compiled.Language,
		Lenient:          compiled.Lenient,
		Query:            compiled.Source,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	})
}

// HealthCheck kiểm tra trạng thái service
func (qc *QueryController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthResponse{
		Status:    "healthy",
		Languages: qc.queryService.Languages(),
	})
}
