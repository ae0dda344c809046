package auth

// Identity is a verified user identity as seen past the authenticator
// boundary: the durable record minus the password hash.
type Identity struct {
	ID        string
	Email     string
	FirstName *string
	LastName  *string
	Avatar    *string
}

// Session is the client-visible re-projection of the session token,
// consumed by the dashboard and API callers.
type Session struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Avatar    *string `json:"avatar"`
}

// NewClaims projects a verified identity into token claims. It is total:
// absent optional fields are carried as nil, and the password hash never
// reaches this layer.
func NewClaims(id Identity) Claims {
	return Claims{
		UserID:    id.ID,
		Email:     id.Email,
		FirstName: id.FirstName,
		LastName:  id.LastName,
		Avatar:    id.Avatar,
	}
}

// Session re-projects token claims into the client-visible session shape.
// Field values are copied verbatim, nils included.
func (c *Claims) Session() Session {
	return Session{
		ID:        c.UserID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Avatar:    c.Avatar,
	}
}
