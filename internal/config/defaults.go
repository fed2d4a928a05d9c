package config

// Default gateway limits. These are consumed by the gateway, not owned by
// it; tests inject their own.
const (
	DefaultTimeoutSeconds = 300
	DefaultMaxConcurrent  = 5
)

// DefaultConfig returns a Config with all defaults populated.
//
// Security philosophy for the allow-list: only the session/identity
// commands and the vault, secret, key, certificate, and access-policy verbs
// the client actually issues. Broad prefixes like a bare "az" are
// intentionally excluded; every family is listed explicitly so that new
// command surfaces require a deliberate configuration change.
func DefaultConfig() *Config {
	return &Config{
		Gateway: GatewayConfig{
			TimeoutSeconds: DefaultTimeoutSeconds,
			MaxConcurrent:  DefaultMaxConcurrent,
			Allow: []AllowEntry{
				// Session and identity
				{Prefix: "az login"},
				{Prefix: "az logout"},
				{Prefix: "az account show"},
				{Prefix: "az account list"},
				{Prefix: "az account set"},
				{Prefix: "az version"},

				// Vaults
				{Prefix: "az keyvault list"},
				{Prefix: "az keyvault show"},
				{Prefix: "az keyvault create"},
				{Prefix: "az keyvault update"},
				{Prefix: "az keyvault delete"},
				{Prefix: "az keyvault purge"},
				{Prefix: "az keyvault recover"},

				// Access policies
				{Prefix: "az keyvault set-policy"},
				{Prefix: "az keyvault delete-policy"},

				// Secrets
				{Prefix: "az keyvault secret list"},
				{Prefix: "az keyvault secret show"},
				{Prefix: "az keyvault secret set"},
				{Prefix: "az keyvault secret delete"},
				{Prefix: "az keyvault secret recover"},
				{Prefix: "az keyvault secret backup"},
				{Prefix: "az keyvault secret restore"},

				// Keys
				{Prefix: "az keyvault key list"},
				{Prefix: "az keyvault key show"},
				{Prefix: "az keyvault key create"},
				{Prefix: "az keyvault key delete"},
				{Prefix: "az keyvault key recover"},

				// Certificates
				{Prefix: "az keyvault certificate list"},
				{Prefix: "az keyvault certificate show"},
				{Prefix: "az keyvault certificate create"},
				{Prefix: "az keyvault certificate delete"},
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
