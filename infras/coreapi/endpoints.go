package coreapi

// Endpoint paths on the core API. The split between the generic booking endpoint and
// the ticket-specific one mirrors the upstream contract; see DESIGN.md.
const (
	EndpointLogin     = "/login"
	EndpointSendOTP   = "/send-otp"
	EndpointVerifyOTP = "/verify-otp"

	EndpointBookings      = "/bookings"
	EndpointTicketBooking = "/booking/ticket"

	EndpointClientRooms      = "/client/rooms"
	EndpointClientApartments = "/client/apartments"
	EndpointClientJourneys   = "/client/journeys"
	EndpointClientRetreats   = "/client/retreats"
	EndpointExchangeRates    = "/client/exchange-rates"

	EndpointFlutterwaveVerify = "/flutterwave/verify"

	EndpointAdmins          = "/admin"
	EndpointHotels          = "/hotels"
	EndpointRooms           = "/rooms"
	EndpointApartments      = "/apartments"
	EndpointApartmentOwners = "/apartment-owners"
	EndpointBuses           = "/buses"
	EndpointSeatTypes       = "/seat-types"
	EndpointAgencies        = "/agencies"
	EndpointJourneys        = "/journeys"
	EndpointRetreats        = "/retreats"
	EndpointPayments        = "/payments"
	EndpointAdminRates      = "/exchange-rates"
	EndpointPhotos          = "/photos"
)
