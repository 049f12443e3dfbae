// internal/handlers/ws_codes.go
package handlers

// Custom WebSocket close codes used by the game handlers. These give
// clients a more specific close reason than the standard codes.
const (
	BadSubprotocolError   = 3000 // Client connected with an unsupported subprotocol.
	InvalidAuthTokenError = 3001 // Provided auth token was invalid or expired.
	InvalidGameIDError    = 3002 // Target game ID in the WS URL does not exist or is malformed.
)
