package server

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
)

// HTTP header names
const (
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"

	HeaderOrigin           = "Origin"
	HeaderVary             = "Vary"
	HeaderAllowOrigin      = "Access-Control-Allow-Origin"
	HeaderAllowMethods     = "Access-Control-Allow-Methods"
	HeaderAllowHeaders     = "Access-Control-Allow-Headers"
	HeaderAccessMaxAge     = "Access-Control-Max-Age"
	HeaderRequestedHeaders = "Access-Control-Request-Headers"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"

	HeaderValueAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	HeaderValueAllowHeaders = "Content-Type"
	HeaderValueMaxAge       = "300"
)

// MaxRequestBodyBytes caps a single save payload. Client saves are a few
// kilobytes; a megabyte leaves generous headroom.
const MaxRequestBodyBytes = 1 << 20
