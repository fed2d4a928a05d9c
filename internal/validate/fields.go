package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// Field validators return nil on success or a specific error on failure.
// They are invoked by the command builders (internal/azcmd) before a
// command string is ever constructed, so malformed structured parameters
// fail fast and never reach the gateway.

var (
	resourceNamePattern  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	resourceGroupPattern = regexp.MustCompile(`^[A-Za-z0-9._()-]+$`)
)

// ResourceName validates an Azure resource name: 3-24 characters, letters,
// digits, hyphens and underscores only, and no leading or trailing hyphen.
func ResourceName(name string) error {
	if len(name) < 3 || len(name) > 24 {
		return fmt.Errorf("resource name must be 3-24 characters, got %d", len(name))
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		return errors.New("resource name may not start or end with a hyphen")
	}
	if !resourceNamePattern.MatchString(name) {
		return errors.New("resource name may only contain letters, digits, hyphens, and underscores")
	}
	return nil
}

// ResourceGroup validates an Azure resource group name: at most 90
// characters, drawn from the resource group character set, and not ending
// with a period.
func ResourceGroup(name string) error {
	if name == "" {
		return errors.New("resource group name cannot be empty")
	}
	if len(name) > 90 {
		return fmt.Errorf("resource group name must be 90 characters or fewer, got %d", len(name))
	}
	if strings.HasSuffix(name, ".") {
		return errors.New("resource group name may not end with a period")
	}
	if !resourceGroupPattern.MatchString(name) {
		return errors.New("resource group name contains invalid characters")
	}
	return nil
}

// SubscriptionID validates that id is in the canonical 8-4-4-4-12
// hexadecimal grouped form, case-insensitive.
func SubscriptionID(id string) error {
	// uuid.Parse also accepts braced, URN, and undashed forms; the length
	// check pins it to the canonical grouped form.
	if len(id) != 36 {
		return errors.New("subscription id must be in the form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx")
	}
	if _, err := uuid.Parse(id); err != nil {
		return errors.New("subscription id must be in the form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx")
	}
	return nil
}

// JSON validates that text parses as a JSON value of any kind (object,
// array, string, number, boolean, or null).
func JSON(text string) error {
	if strings.TrimSpace(text) == "" || !gjson.Valid(text) {
		return errors.New("invalid JSON")
	}
	return nil
}

// Email validates standard email address syntax. Display names are not
// accepted; the text must be a bare address.
func Email(text string) error {
	addr, err := mail.ParseAddress(text)
	if err != nil || addr.Address != text {
		return errors.New("invalid email address")
	}
	return nil
}

// URL validates that text is an absolute URL with both a scheme and a host.
func URL(text string) error {
	u, err := url.Parse(text)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("invalid URL: scheme and host are required")
	}
	return nil
}
