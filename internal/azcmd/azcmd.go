// Package azcmd builds Azure CLI command strings from structured
// parameters. Every parameter is validated before the string is assembled,
// so malformed input fails fast and never reaches the command gateway, and
// free-form values are escaped so they reach the tool as single arguments.
package azcmd

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/vaultgate/vaultgate/internal/validate"
)

var lowerAlnumPattern = regexp.MustCompile(`^[a-z0-9]+$`)

// validateLocation checks an Azure region short name (e.g. "westeurope").
func validateLocation(location string) error {
	if !lowerAlnumPattern.MatchString(location) {
		return errors.New("location must be a lowercase region name")
	}
	return nil
}

// AccountShow returns the command for the current session's account.
func AccountShow() string {
	return "az account show"
}

// AccountList returns the command listing available subscriptions.
func AccountList() string {
	return "az account list"
}

// AccountSet builds the command selecting the active subscription.
func AccountSet(subscriptionID string) (string, error) {
	if err := validate.SubscriptionID(subscriptionID); err != nil {
		return "", err
	}
	return "az account set --subscription " + subscriptionID, nil
}

// VaultList returns the command listing all vaults in the active
// subscription.
func VaultList() string {
	return "az keyvault list"
}

// VaultListIn builds the command listing vaults in a resource group.
func VaultListIn(resourceGroup string) (string, error) {
	if err := validate.ResourceGroup(resourceGroup); err != nil {
		return "", err
	}
	return "az keyvault list --resource-group " + resourceGroup, nil
}

// VaultShow builds the command describing one vault.
func VaultShow(name string) (string, error) {
	if err := validate.ResourceName(name); err != nil {
		return "", err
	}
	return "az keyvault show --name " + name, nil
}

// VaultCreate builds the command creating a vault.
func VaultCreate(name, resourceGroup, location string) (string, error) {
	if err := validate.ResourceName(name); err != nil {
		return "", err
	}
	if err := validate.ResourceGroup(resourceGroup); err != nil {
		return "", err
	}
	if err := validateLocation(location); err != nil {
		return "", err
	}
	return fmt.Sprintf("az keyvault create --name %s --resource-group %s --location %s",
		name, resourceGroup, location), nil
}

// VaultDelete builds the command deleting a vault.
func VaultDelete(name string) (string, error) {
	if err := validate.ResourceName(name); err != nil {
		return "", err
	}
	return "az keyvault delete --name " + name, nil
}

// SecretList builds the command listing a vault's secrets.
func SecretList(vault string) (string, error) {
	if err := validate.ResourceName(vault); err != nil {
		return "", err
	}
	return "az keyvault secret list --vault-name " + vault, nil
}

// SecretShow builds the command fetching one secret.
func SecretShow(vault, name string) (string, error) {
	if err := validate.ResourceName(vault); err != nil {
		return "", err
	}
	if err := validate.ResourceName(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("az keyvault secret show --vault-name %s --name %s", vault, name), nil
}

// SecretShowByID builds the command fetching a secret by its full
// identifier URL.
func SecretShowByID(id string) (string, error) {
	if err := validate.URL(id); err != nil {
		return "", err
	}
	return "az keyvault secret show --id " + validate.EscapeShellArgument(id), nil
}

// SecretSet builds the command storing a secret value. The value is
// free-form and therefore escaped; it reaches the tool as one argument
// regardless of its content.
func SecretSet(vault, name, value string) (string, error) {
	if err := validate.ResourceName(vault); err != nil {
		return "", err
	}
	if err := validate.ResourceName(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("az keyvault secret set --vault-name %s --name %s --value %s",
		vault, name, validate.EscapeShellArgument(value)), nil
}

// SecretDelete builds the command deleting a secret.
func SecretDelete(vault, name string) (string, error) {
	if err := validate.ResourceName(vault); err != nil {
		return "", err
	}
	if err := validate.ResourceName(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("az keyvault secret delete --vault-name %s --name %s", vault, name), nil
}

// SecretRecover builds the command recovering a soft-deleted secret.
func SecretRecover(vault, name string) (string, error) {
	if err := validate.ResourceName(vault); err != nil {
		return "", err
	}
	if err := validate.ResourceName(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("az keyvault secret recover --vault-name %s --name %s", vault, name), nil
}

// KeyList builds the command listing a vault's keys.
func KeyList(vault string) (string, error) {
	if err := validate.ResourceName(vault); err != nil {
		return "", err
	}
	return "az keyvault key list --vault-name " + vault, nil
}

// KeyShow builds the command describing one key.
func KeyShow(vault, name string) (string, error) {
	if err := validate.ResourceName(vault); err != nil {
		return "", err
	}
	if err := validate.ResourceName(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("az keyvault key show --vault-name %s --name %s", vault, name), nil
}

// KeyCreate builds the command creating a key.
func KeyCreate(vault, name string) (string, error) {
	if err := validate.ResourceName(vault); err != nil {
		return "", err
	}
	if err := validate.ResourceName(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("az keyvault key create --vault-name %s --name %s", vault, name), nil
}

// KeyDelete builds the command deleting a key.
func KeyDelete(vault, name string) (string, error) {
	if err := validate.ResourceName(vault); err != nil {
		return "", err
	}
	if err := validate.ResourceName(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("az keyvault key delete --vault-name %s --name %s", vault, name), nil
}

// CertificateList builds the command listing a vault's certificates.
func CertificateList(vault string) (string, error) {
	if err := validate.ResourceName(vault); err != nil {
		return "", err
	}
	return "az keyvault certificate list --vault-name " + vault, nil
}

// CertificateShow builds the command describing one certificate.
func CertificateShow(vault, name string) (string, error) {
	if err := validate.ResourceName(vault); err != nil {
		return "", err
	}
	if err := validate.ResourceName(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("az keyvault certificate show --vault-name %s --name %s", vault, name), nil
}

// CertificateCreate builds the command creating a certificate from a policy
// document. The policy is validated as JSON and escaped as a single
// argument.
func CertificateCreate(vault, name, policyJSON string) (string, error) {
	if err := validate.ResourceName(vault); err != nil {
		return "", err
	}
	if err := validate.ResourceName(name); err != nil {
		return "", err
	}
	if err := validate.JSON(policyJSON); err != nil {
		return "", err
	}
	return fmt.Sprintf("az keyvault certificate create --vault-name %s --name %s --policy %s",
		vault, name, validate.EscapeShellArgument(policyJSON)), nil
}

// CertificateDelete builds the command deleting a certificate.
func CertificateDelete(vault, name string) (string, error) {
	if err := validate.ResourceName(vault); err != nil {
		return "", err
	}
	if err := validate.ResourceName(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("az keyvault certificate delete --vault-name %s --name %s", vault, name), nil
}

// SetPolicy builds the command granting a user secret permissions on a
// vault. The user is identified by email (user principal name).
func SetPolicy(vault, upn string, secretPermissions []string) (string, error) {
	if err := validate.ResourceName(vault); err != nil {
		return "", err
	}
	if err := validate.Email(upn); err != nil {
		return "", err
	}
	if len(secretPermissions) == 0 {
		return "", errors.New("at least one secret permission is required")
	}
	for _, p := range secretPermissions {
		if !lowerAlnumPattern.MatchString(p) {
			return "", fmt.Errorf("invalid secret permission %q", p)
		}
	}
	return fmt.Sprintf("az keyvault set-policy --name %s --upn %s --secret-permissions %s",
		vault, upn, strings.Join(secretPermissions, " ")), nil
}

// DeletePolicy builds the command revoking a user's access policy.
func DeletePolicy(vault, upn string) (string, error) {
	if err := validate.ResourceName(vault); err != nil {
		return "", err
	}
	if err := validate.Email(upn); err != nil {
		return "", err
	}
	return fmt.Sprintf("az keyvault delete-policy --name %s --upn %s", vault, upn), nil
}
