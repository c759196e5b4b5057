package orderControllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/suraj-naithani/ecart-api/errs"
)

type PaymentIntentRequest struct {
	Amount float64 `json:"amount"`
}

// POST /orders/create-payment-intent
// Converts the amount to the smallest currency unit and returns the opaque
// client secret. Settlement is confirmed client-side; the server never polls
// the processor before order creation.
func CreatePaymentIntentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Amount == 0 {
			errs.Respond(c, errs.BadRequest("Please enter an amount"))
			return
		}

		stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(int64(req.Amount * 100)),
			Currency: stripe.String(string(stripe.CurrencyINR)),
		}
		intent, err := paymentintent.New(params)
		if err != nil {
			errs.Respond(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "clientSecret": intent.ClientSecret})
	}
}
