package domain

import "time"

type ApiKeyPermission string

const (
	ApiKeyPermissionRead  ApiKeyPermission = "read"
	ApiKeyPermissionWrite ApiKeyPermission = "write"
	ApiKeyPermissionLogin ApiKeyPermission = "login"
)

func (p ApiKeyPermission) Valid() bool {
	switch p {
	case ApiKeyPermissionRead, ApiKeyPermissionWrite, ApiKeyPermissionLogin:
		return true
	}
	return false
}

// ApiKey is an external bearer credential. Only the SHA-256 digest of the
// secret is stored, plus a short prefix for identification; the plaintext is
// shown once at creation and never retrievable again. A nil PartnerID means
// the key is platform-wide.
type ApiKey struct {
	ID          int32              `json:"id"`
	Name        string             `json:"name"`
	KeyHash     string             `json:"-"`
	KeyPrefix   string             `json:"key_prefix"`
	Permissions []ApiKeyPermission `json:"permissions"`
	PartnerID   *int32             `json:"partner_id,omitempty"`
	ExpiresAt   *time.Time         `json:"expires_at,omitempty"`
	Active      bool               `json:"active"`
	LastUsedAt  *time.Time         `json:"last_used_at,omitempty"`
	CreatedOn   time.Time          `json:"created_on"`
}

func (k *ApiKey) HasPermission(p ApiKeyPermission) bool {
	for _, perm := range k.Permissions {
		if perm == p {
			return true
		}
	}
	return false
}

func (k *ApiKey) Expired(now time.Time) bool {
	return k.ExpiresAt != nil && k.ExpiresAt.Before(now)
}
