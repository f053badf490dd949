// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"log/slog"

	"github.com/arokeji/library-api/internal/platform/apperr"
	"github.com/arokeji/library-api/internal/platform/collection"
	"github.com/arokeji/library-api/internal/platform/ctxutil"
	"github.com/arokeji/library-api/internal/platform/dberr"
	"github.com/arokeji/library-api/internal/platform/sec"
	"github.com/arokeji/library-api/internal/platform/validate"
)

// TokenIssuer signs access tokens for authenticated authors.
type TokenIssuer interface {
	GenerateAccessToken(userID, username string) (string, error)
}

// ErrInvalidCredentials is returned for every failed login, whether the
// account is unknown or the password is wrong.
var ErrInvalidCredentials = apperr.Unauthorized("Invalid login credentials")

// DeleteHook prepares for an author removal. The func it returns, when not
// nil, runs after the author row is gone.
type DeleteHook func(ctx context.Context, authorID string) (func(ctx context.Context), error)

// Service adds sign-in on top of the author collection.
type Service struct {
	*collection.Service[Author, string]

	accounts Store
	tokens   TokenIssuer

	// decoyHash is compared against when the account does not exist, so both
	// failure paths cost one bcrypt comparison.
	decoyHash string
}

// NewService builds the author service.
//
// # Parameters
//   - records: the store the CRUD operations go through (possibly cached).
//   - accounts: the store used for login; it must return password hashes.
//   - onDelete: resources whose rows reference authors and must be refreshed
//     when one is removed (cached books).
func NewService(records collection.Store[Author, string], accounts Store, tokens TokenIssuer, policy sec.AccessPolicy, onDelete ...DeleteHook) (*Service, error) {
	decoyHash, err := sec.HashPassword("decoy-password-for-unknown-accounts")
	if err != nil {
		return nil, err
	}

	resource := Resource()
	if len(onDelete) > 0 {
		resource.BeforeDelete = chainDeleteHooks(onDelete)
	}

	return &Service{
		Service:   collection.NewService(records, resource, policy),
		accounts:  accounts,
		tokens:    tokens,
		decoyHash: decoyHash,
	}, nil
}

// Login verifies credentials and returns a signed token carrying the
// author's id and account name.
func (service *Service) Login(ctx context.Context, credentials Credentials) (*Token, error) {
	if err := validate.Struct(&credentials); err != nil {
		return nil, err
	}

	account, err := service.accounts.FindByUser(ctx, normalizeUser(credentials.User))
	if err != nil {
		if dberr.Classify(err).Kind != dberr.KindNotFound {
			return nil, dberr.Wrap(err, "login")
		}

		sec.CheckPasswordHash(credentials.Password, service.decoyHash)
		return nil, ErrInvalidCredentials
	}

	if !sec.CheckPasswordHash(credentials.Password, account.PasswordHash) {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "login_failed", slog.String("author_id", account.ID))
		return nil, ErrInvalidCredentials
	}

	token, err := service.tokens.GenerateAccessToken(account.ID, account.User)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "login_succeeded", slog.String("author_id", account.ID))
	return &Token{Token: token}, nil
}

func chainDeleteHooks(hooks []DeleteHook) func(ctx context.Context, authorID string) (func(ctx context.Context), error) {
	return func(ctx context.Context, authorID string) (func(ctx context.Context), error) {
		followUps := make([]func(ctx context.Context), 0, len(hooks))
		for _, hook := range hooks {
			followUp, err := hook(ctx, authorID)
			if err != nil {
				return nil, err
			}
			if followUp != nil {
				followUps = append(followUps, followUp)
			}
		}

		return func(ctx context.Context) {
			for _, followUp := range followUps {
				followUp(ctx)
			}
		}, nil
	}
}
