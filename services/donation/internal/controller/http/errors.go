package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	"lucky-money/pkg/logger"
	"lucky-money/services/donation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// respondError maps use case errors to HTTP responses. Unknown errors are
// logged and answered with the generic message only.
func respondError(c *gin.Context, log *logger.Logger, err error, message string) {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": verr.Fields})
	case errors.Is(err, usecase.ErrDonationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
	case errors.Is(err, usecase.ErrGoalNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
	case errors.Is(err, usecase.ErrDonationAlreadyProcessed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrMemoNotRecognized):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error("%s: %v", message, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// respondBindError answers a body that could not be decoded. A value of the
// wrong JSON type is reported against its field like any other invalid input.
func respondBindError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid input",
			"details": []usecase.FieldError{{Field: typeErr.Field, Message: "must be " + jsonTypeName(typeErr.Type)}},
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}

func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	if t == decimalType {
		return "a number"
	}
	switch t.Kind() {
	case reflect.Bool:
		return "true or false"
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "a list"
	case reflect.Struct, reflect.Map:
		return "an object"
	}
	return "a valid value"
}

// jsonAmount decodes like decimal.Decimal but reports malformed input as a
// type error, so the field name reaches the response.
type jsonAmount struct {
	decimal.Decimal
}

func (a *jsonAmount) UnmarshalJSON(data []byte) error {
	if err := a.Decimal.UnmarshalJSON(data); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: decimalType}
	}
	return nil
}
