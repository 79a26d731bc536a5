package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"horizon_booking/config"
	"horizon_booking/model"
	"horizon_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/checkout/session"
	"github.com/stripe/stripe-go/v84/webhook"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

func getRedis() *redis.Client {
	redisOnce.Do(func() {
		addr := config.Config("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		redisClient = redis.NewClient(&redis.Options{Addr: addr})
	})
	return redisClient
}

// CreateCheckoutSession hands the total and the booking intent to the payment
// provider. The intent rides in the session metadata and comes back verbatim
// on the webhook.
func CreateCheckoutSession(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateCheckoutInput)

	successData, err := json.Marshal(input.BookingData)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create checkout session.", err)
	}

	stripe.Key = config.Config("STRIPE_SECRET_KEY")

	frontend := config.Config("FRONTEND_URL")
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("inr"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String("Train Ticket"),
					Description: stripe.String("Inclusive GST price"),
				},
				UnitAmount: stripe.Int64(int64(math.Round(input.Total * 100))),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL:        stripe.String(frontend + "/success"),
		CancelURL:         stripe.String(frontend + "/cancel"),
		ClientReferenceID: stripe.String(uuid.New().String()),
		Metadata: map[string]string{
			"base":        strconv.FormatFloat(input.Base, 'f', 2, 64),
			"gst":         strconv.FormatFloat(input.GST, 'f', 2, 64),
			"total":       strconv.FormatFloat(input.Total, 'f', 2, 64),
			"successData": string(successData),
		},
	}

	s, err := session.New(params)
	if err != nil {
		log.Printf("stripe session creation failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create checkout session.", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"sessionId": s.ID})
}

// StripeWebhook verifies the provider signature over the raw body, dedupes
// retried deliveries by event id, and on completed checkout posts the booking
// intent to the internal booking endpoint with the shared webhook token.
func StripeWebhook(c *fiber.Ctx) error {
	endpointSecret := config.Config("STRIPE_WEBHOOK_SECRET")
	if endpointSecret == "" {
		log.Println("STRIPE_WEBHOOK_SECRET is not configured")
		return c.Status(fiber.StatusInternalServerError).SendString("Server configuration error.")
	}

	event, err := webhook.ConstructEvent(c.Body(), c.Get("Stripe-Signature"), endpointSecret)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(fmt.Sprintf("Webhook error: %s", err.Error()))
	}

	// The provider retries deliveries; claim the event id before acting.
	ctx := context.Background()
	claimed, err := getRedis().SetNX(ctx, "stripe:event:"+event.ID, 1, 24*time.Hour).Result()
	if err != nil {
		log.Printf("webhook dedup check failed: %v", err)
	} else if !claimed {
		return c.Status(fiber.StatusOK).SendString("Event already processed.")
	}

	switch event.Type {
	case "checkout.session.completed":
		var checkoutSession stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &checkoutSession); err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("Invalid event payload.")
		}

		successData := checkoutSession.Metadata["successData"]
		if !json.Valid([]byte(successData)) {
			return c.Status(fiber.StatusBadRequest).SendString("Invalid metadata format.")
		}

		if err := postBooking(successData); err != nil {
			log.Printf("booking after payment failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).SendString("Error booking ticket after payment.")
		}

		return c.Status(fiber.StatusOK).SendString("Payment processed and ticket booked.")

	default:
		return c.Status(fiber.StatusOK).SendString("Event received.")
	}
}

func postBooking(successData string) error {
	body, err := json.Marshal(fiber.Map{"successData": json.RawMessage(successData)})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost,
		config.Config("BACKEND_URL")+"/api/bookTrainTickets/bookTrainTickets", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+config.Config("WEBHOOK_API_TOKEN"))

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("booking endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
