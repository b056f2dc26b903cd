package webhook

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared token; empty disables the check
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute per source
}
