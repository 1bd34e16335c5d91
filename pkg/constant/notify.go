package constant

const (
	CHANNEL_CONNECTED    = "WhatsApp channel connected successfully"
	CHANNEL_DISCONNECTED = "WhatsApp channel disconnected successfully"
	QR_CODE_GENERATED    = "QR code generated successfully"
	STATUS_RETRIEVED     = "Status retrieved successfully"
	INVALID_PHONE_NUMBER = "Invalid phone number format"
)
