package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required
)

// EndpointSecurityConfig maps methods to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Health
	"/grpc.health.v1.Health/Check": SecurityPublic,

	// BookingService - Access Protected
	"/emprius.api.v1.BookingService/CreateBooking":            SecurityAccess,
	"/emprius.api.v1.BookingService/AcceptBooking":            SecurityAccess,
	"/emprius.api.v1.BookingService/DenyBooking":              SecurityAccess,
	"/emprius.api.v1.BookingService/CancelBooking":            SecurityAccess,
	"/emprius.api.v1.BookingService/PickBooking":              SecurityAccess,
	"/emprius.api.v1.BookingService/ReturnBooking":            SecurityAccess,
	"/emprius.api.v1.BookingService/GetBooking":               SecurityAccess,
	"/emprius.api.v1.BookingService/ListPetitions":            SecurityAccess,
	"/emprius.api.v1.BookingService/ListRequests":             SecurityAccess,
	"/emprius.api.v1.BookingService/GetBookingActions":        SecurityAccess,
	"/emprius.api.v1.BookingService/CheckEligibility":         SecurityAccess,
	"/emprius.api.v1.BookingService/SubmitRating":             SecurityAccess,
	"/emprius.api.v1.BookingService/GetRating":                SecurityAccess,
	"/emprius.api.v1.BookingService/RequestRatingImageUpload": SecurityAccess,
	"/emprius.api.v1.BookingService/GetRatingImageUrl":        SecurityAccess,

	// ToolService
	"/emprius.api.v1.ToolService/GetReservedDates":   SecurityPublic,
	"/emprius.api.v1.ToolService/GetTool":            SecurityAccess,
	"/emprius.api.v1.ToolService/ListCommunityTools": SecurityAccess,
	"/emprius.api.v1.ToolService/ListMyTools":        SecurityAccess,
	"/emprius.api.v1.ToolService/SetAvailability":    SecurityAccess,

	// UserService
	"/emprius.api.v1.UserService/GetProfile":        SecurityAccess,
	"/emprius.api.v1.UserService/UpdateLocation":    SecurityAccess,
	"/emprius.api.v1.UserService/RegisterPushToken": SecurityAccess,

	// NotificationService
	"/emprius.api.v1.NotificationService/ListNotifications":    SecurityAccess,
	"/emprius.api.v1.NotificationService/MarkNotificationRead": SecurityAccess,
}

// GetSecurityLevel returns the security level for a given method
func GetSecurityLevel(method string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[method]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAccess
}
