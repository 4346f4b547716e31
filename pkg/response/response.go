package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Accepted acknowledges a webhook delivery that will be processed later.
func Accepted(c *gin.Context, deliveryID string) {
	c.JSON(http.StatusOK, AckResp{
		Status:     StatusAccepted,
		DeliveryID: deliveryID,
	})
}

// Error sends 400 with the error message and optional details.
func Error(c *gin.Context, err error, errs any) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ValidationErrorCode,
		Message:   err.Error(),
		Errors:    errs,
	})
}

// InternalError sends 500 without leaking err.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}
