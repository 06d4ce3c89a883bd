package dto

// Mensajes públicos del sobre de error. Forman parte del contrato HTTP con el frontend.
const (
	MsgUnauthorized        = "Unauthorized"
	MsgMissingFields       = "Missing required fields"
	MsgInvalidPrice        = "Invalid price"
	MsgInvalidBody         = "Invalid JSON body"
	MsgNotFound            = "Not found"
	MsgMethodNotAllowed    = "Method not allowed"
	MsgInternalServerError = "Internal server error"
)

// Envelope es el sobre uniforme de todas las respuestas JSON: {success, error?, data?}.
type Envelope struct {
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK construye un sobre de éxito.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail construye un sobre de error.
func Fail(message string) Envelope {
	return Envelope{Success: false, Error: message}
}
