package domain

// AuthUser is the identity resolved from the Supabase session token.
// There is no local users table; the token claims are the source of truth.
type AuthUser struct {
	ID    string `json:"id"` // Supabase UUID
	Email string `json:"email"`
}
