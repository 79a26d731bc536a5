package constants

// Roles
const (
	ROLE_ADMIN = "admin"
	ROLE_USER  = "user"
)

// Generic
const (
	ERROR_INTERNAL_ERROR     = "Internal server error"
	DATA_INPUT_IS_NOT_NUMBER = "Id param must be a number"
)

// Auth
const (
	MISSING_AUTH_TOKEN  = "Authentication required"
	INVALID_AUTH_TOKEN  = "Invalid or expired token"
	ADMIN_ONLY          = "Access denied, admin only"
	USER_ALREADY_EXISTS = "Account already exists. Kindly login"
	USER_NOT_FOUND      = "User not found"
	USER_NOT_VERIFIED   = "User is not verified"
	USER_VERIFIED       = "User is already verified. Please log in."
	INVALID_CREDENTIALS = "Invalid Credentials"
	INVALID_OTP         = "Invalid OTP"
	OTP_EXPIRED         = "OTP has expired"
	OTP_SEND_FAILED     = "Failed to send OTP."
	OTP_VERIFIED        = "OTP verified successfully. User is now verified."
	OTP_RESENT          = "A new OTP has been sent to your email."
	SIGNUP_INITIATED    = "Signup initiated. OTP sent to your email. Please verify the OTP."
	LOGIN_SUCCESS       = "Login successful"
	ADMIN_LOGIN_SUCCESS = "Admin login successful"
)

// Trains, routes, schedules
const (
	TRAIN_NOT_FOUND      = "Train not found"
	TRAIN_DELETED        = "Train deleted successfully"
	ROUTE_NOT_FOUND      = "Route not found"
	ROUTE_DELETED        = "Route deleted successfully"
	ROUTE_INPUT_REQUIRED = "Route name and at least one station are required."
	SCHEDULES_NOT_FOUND  = "No schedules found for this train"
)

// Search failure taxonomy. The client matches on these strings.
const (
	SEARCH_PARAMS_REQUIRED = "Source, destination, and date are required."
	NO_ROUTE_FOR_SOURCE    = "No route found for the source station."
	NO_VALID_ROUTE         = "No valid route between the source and destination."
	NO_TRAINS_ON_ROUTE     = "No trains available on this route."
	NO_TRAINS_FOR_DATE     = "No trains available for the selected source, destination, and date."
	TRAINS_FOUND           = "Trains found"
)

// Bookings
const (
	BOOKING_FIELDS_REQUIRED = "All fields are required."
	PASSENGERS_REQUIRED     = "Passenger details are required."
	COMPARTMENT_NOT_FOUND   = "Compartment type not found."
	DUPLICATE_BOOKING       = "You have already booked a ticket for this train on this date."
	NO_EXISTING_BOOKING     = "No existing booking found. You can proceed with booking."
	BOOKING_SUCCESSFUL      = "Booking successful."
	BOOKING_NOT_FOUND       = "Booking not found."
	BOOKING_ID_REQUIRED     = "Booking ID is required."
	NO_BOOKINGS_FOUND       = "No bookings found"
	FARE_MISMATCH           = "Submitted fare does not match the computed fare."
	SEGMENT_NOT_ON_ROUTE    = "The requested segment is not on the train's route."
	WEBHOOK_TOKEN_MISSING   = "Authorization token is missing."
	WEBHOOK_TOKEN_INVALID   = "Invalid authorization token."
)
