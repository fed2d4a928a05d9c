package cmd

import (
	"github.com/vaultgate/vaultgate/internal/audit"
	"github.com/vaultgate/vaultgate/internal/config"
	"github.com/vaultgate/vaultgate/internal/gateway"
)

// newGateway builds a gateway from the effective configuration. The returned
// cleanup function closes the audit log and must be called when the gateway
// is no longer needed.
func newGateway(cfg *config.Config) (gateway.Gateway, func(), error) {
	auditPath := cfg.Log.AuditFile
	if auditPath == "" {
		auditPath = audit.DefaultPath()
	}

	f, err := audit.OpenFile(auditPath)
	if err != nil {
		return nil, nil, err
	}

	gw := gateway.New(gateway.Config{
		Allow:         cfg.Gateway.AllowPrefixes(),
		Timeout:       cfg.Gateway.Timeout(),
		MaxConcurrent: cfg.Gateway.MaxConcurrent,
		ToolPath:      cfg.Gateway.ToolPath,
		Audit:         audit.NewLogger(f),
	})

	cleanup := func() { f.Close() }
	return gw, cleanup, nil
}
