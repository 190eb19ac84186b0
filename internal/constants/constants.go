package constants

// ContextKeyUserID is the gin context key holding the authenticated user's ID.
const ContextKeyUserID = "user_id"

// AppVersion is reported by the health endpoint.
const AppVersion = "1.0.0"
