package router

import (
	"horizon_booking/handler"
	"horizon_booking/middleware"
	"horizon_booking/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	auth := api.Group("/auth")
	auth.Post("/signup", validate.Signup(), handler.Signup)
	auth.Post("/verify-otp", validate.VerifyOtp(), handler.VerifyOtp)
	auth.Post("/send-otp", validate.ResendOtp(), handler.ResendOtp)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Get("/getUserById/:id", middleware.Protected(), validate.GetById("id"), handler.GetUserById)
	auth.Get("/getUserBookingById/:userId", middleware.Protected(), validate.GetById("userId"), handler.GetUserBookingById)

	trains := api.Group("/trains", middleware.Protected())
	trains.Post("/addTrain", middleware.AdminOnly(), validate.CreateTrain(), handler.AddTrain)
	trains.Get("/getTrains", handler.GetTrains)
	trains.Get("/getTrainById/:trainId", validate.GetById("trainId"), handler.GetTrainById)
	trains.Put("/updateTrain/:id", middleware.AdminOnly(), validate.UpdateTrain("id"), handler.UpdateTrain)
	trains.Delete("/trains/:id", middleware.AdminOnly(), validate.GetById("id"), handler.DeleteTrain)
	trains.Post("/scheduleTrain/:trainId", middleware.AdminOnly(), validate.ScheduleTrain("trainId"), handler.ScheduleTrain)
	trains.Get("/getTrainSchedules/:trainId", validate.GetById("trainId"), handler.GetTrainSchedules)
	trains.Post("/addRoute", middleware.AdminOnly(), validate.CreateRoute(), handler.AddRoute)
	trains.Get("/getRoutes", handler.GetRoutes)
	trains.Delete("/deleteRoute/:id", middleware.AdminOnly(), validate.GetById("id"), handler.DeleteRoute)
	trains.Get("/getCities", handler.GetCities)
	trains.Get("/searchTrains", handler.SearchTrains)
	trains.Get("/getBookingById", handler.GetBookingById)
	trains.Post("/checkUserBooking", validate.CheckUserBooking(), handler.CheckUserBooking)

	// Called by the payment webhook with a service bearer token, so it sits
	// outside the Protected group; the handler enforces the token itself.
	bookings := api.Group("/bookTrainTickets")
	bookings.Post("/bookTrainTickets", handler.BookTrainTickets)

	payments := api.Group("/payments")
	payments.Post("/create-checkout-session", middleware.Protected(), validate.CreateCheckoutSession(), handler.CreateCheckoutSession)

	webhooks := api.Group("/webhooks")
	webhooks.Post("/webhook-catcher", handler.StripeWebhook)
}
