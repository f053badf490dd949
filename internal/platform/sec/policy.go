// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Access Policy

// AccessPolicy decides who may mutate an identity-owned resource.
//
// There is exactly one privileged account. Everyone else may only touch the
// resource whose owner id matches their own.
type AccessPolicy struct {
	// AdminAccount is the username granted unrestricted mutation rights.
	AdminAccount string
}

// NewAccessPolicy creates a policy whose privileged account is adminAccount.
func NewAccessPolicy(adminAccount string) AccessPolicy {
	return AccessPolicy{AdminAccount: adminAccount}
}

// CanMutate reports whether the acting identity may update or delete the
// resource owned by ownerID. A missing identity is always denied.
func (p AccessPolicy) CanMutate(actor *AuthClaims, ownerID string) bool {
	if actor == nil {
		return false
	}

	if actor.UserID != "" && actor.UserID == ownerID {
		return true
	}

	return p.AdminAccount != "" && actor.Username == p.AdminAccount
}
