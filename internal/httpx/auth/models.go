package auth

// VerifyRequest carries the credential pair presented at login.
type VerifyRequest struct {
	AccessKey         string `json:"access_key"`
	DeviceFingerprint string `json:"device_fingerprint"`
}

// VerifyResponse is returned on a successful verification.
type VerifyResponse struct {
	Success   bool    `json:"success"`
	AccessKey string  `json:"access_key"`
	ExpiresAt *string `json:"expires_at,omitempty"`
}

// CheckResponse is returned by the non-mutating check endpoint.
type CheckResponse struct {
	Authenticated bool   `json:"authenticated"`
	Reason        string `json:"reason,omitempty"`
}

// AdminLoginRequest carries the console password.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminTokenResponse carries the issued console token.
type AdminTokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}
