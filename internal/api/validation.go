package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/guttosm/conversor/internal/domain/models"
)

var registerOnce sync.Once

// RegisterValidators adds the "currency" tag to gin's binding engine. It is
// safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("currency", validCurrency)
		}
	})
}

// validCurrency accepts catalogue codes in any case, surrounding spaces allowed.
func validCurrency(fl validator.FieldLevel) bool {
	return models.NormalizeCurrency(fl.Field().String()).IsSupported()
}

// pairQuery carries the de/para query parameters every endpoint shares.
type pairQuery struct {
	De   string `form:"de" binding:"required,currency"`
	Para string `form:"para" binding:"required,currency"`
}

func (q pairQuery) pair() (models.Currency, models.Currency) {
	return models.NormalizeCurrency(q.De), models.NormalizeCurrency(q.Para)
}

type historyQuery struct {
	pairQuery
	Periodo string `form:"periodo"`
}

type amountQuery struct {
	pairQuery
	Valor float64 `form:"valor,default=1" binding:"gte=0"`
}

type panelQuery struct {
	pairQuery
	Periodo string  `form:"periodo"`
	Valor   float64 `form:"valor,default=1" binding:"gte=0"`
}

type recentQuery struct {
	pairQuery
	Limite int `form:"limite,default=20" binding:"gte=1,lte=100"`
}
