// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arokeji/library-api/internal/core/author"
	"github.com/arokeji/library-api/internal/platform/apperr"
	"github.com/arokeji/library-api/internal/platform/collection/memstore"
	"github.com/arokeji/library-api/internal/platform/sec"
	"github.com/arokeji/library-api/pkg/pointer"
	"github.com/arokeji/library-api/pkg/uuid"
)

type memoryStore struct {
	*memstore.Store[author.Author, string]
}

func (m memoryStore) FindByUser(_ context.Context, user string) (*author.Author, error) {
	return m.FindFirst(func(item *author.Author) bool { return item.User == user })
}

func newMemoryStore() memoryStore {
	return memoryStore{memstore.New(memstore.Accessors[author.Author, string]{
		IDOf: func(item *author.Author) string { return item.ID },
		Assign: func(item *author.Author, _ int) {
			item.ID = uuid.New()
			item.CreatedAt = time.Now()
			item.UpdatedAt = item.CreatedAt
		},
		NameOf: func(item *author.Author) string { return item.Name },
	})}
}

type fixture struct {
	store   memoryStore
	tokens  *sec.TokenService
	service *author.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	store := newMemoryStore()
	tokens, err := sec.NewTokenService("test-secret", "library-api", time.Hour)
	require.NoError(t, err)

	service, err := author.NewService(store, store, tokens, sec.NewAccessPolicy("admin@gmail.com"))
	require.NoError(t, err)

	return fixture{store: store, tokens: tokens, service: service}
}

func (f fixture) register(t *testing.T, user, password string) *author.Author {
	t.Helper()
	created, err := f.service.Create(context.Background(), &author.Author{
		User:     user,
		Password: password,
		Name:     "Jane Austen",
		Country:  "England",
	})
	require.NoError(t, err)
	return created
}

func TestCreate_HashesPassword(t *testing.T) {
	f := newFixture(t)

	created := f.register(t, "  Jane@Mail.com ", "pride-and-prejudice")

	assert.Equal(t, "jane@mail.com", created.User)
	assert.Empty(t, created.Password)
	assert.NotEqual(t, "pride-and-prejudice", created.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("pride-and-prejudice", created.PasswordHash))
}

func TestCreate_RequiresPassword(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Create(context.Background(), &author.Author{User: "jane@mail.com", Name: "Jane Austen"})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, apperr.CodeValidation, appError.Code)
	assert.Equal(t, "password", appError.Details[0].Field)
}

func TestCreate_RejectsInvalidEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Create(context.Background(), &author.Author{User: "jane", Password: "long-enough", Name: "Jane Austen"})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	created := f.register(t, "jane@mail.com", "pride-and-prejudice")
	ctx := context.Background()

	t.Run("valid_credentials", func(t *testing.T) {
		token, err := f.service.Login(ctx, author.Credentials{User: "jane@mail.com", Password: "pride-and-prejudice"})
		require.NoError(t, err)

		claims, err := f.tokens.VerifyToken(token.Token)
		require.NoError(t, err)
		assert.Equal(t, created.ID, claims.UserID)
		assert.Equal(t, "jane@mail.com", claims.Username)
	})

	t.Run("failures_are_indistinguishable", func(t *testing.T) {
		_, wrongPassword := f.service.Login(ctx, author.Credentials{User: "jane@mail.com", Password: "sense-and-sensibility"})
		_, unknownUser := f.service.Login(ctx, author.Credentials{User: "nobody@mail.com", Password: "pride-and-prejudice"})

		require.Error(t, wrongPassword)
		require.Error(t, unknownUser)
		assert.Equal(t, wrongPassword, unknownUser)
		assert.True(t, apperr.HasCode(wrongPassword, apperr.CodeUnauthorized))
	})

	t.Run("missing_fields", func(t *testing.T) {
		_, err := f.service.Login(ctx, author.Credentials{User: "jane@mail.com"})
		assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
	})
}

type failingAccounts struct {
	memoryStore
}

func (failingAccounts) FindByUser(context.Context, string) (*author.Author, error) {
	return nil, errors.New("connection reset")
}

func TestLogin_StorageFailureIsNotACredentialError(t *testing.T) {
	store := newMemoryStore()
	tokens, err := sec.NewTokenService("test-secret", "library-api", time.Hour)
	require.NoError(t, err)
	service, err := author.NewService(store, failingAccounts{store}, tokens, sec.NewAccessPolicy("admin@gmail.com"))
	require.NoError(t, err)

	_, err = service.Login(context.Background(), author.Credentials{User: "jane@mail.com", Password: "x"})
	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
}

func TestUpdate_Guard(t *testing.T) {
	f := newFixture(t)
	jane := f.register(t, "jane@mail.com", "pride-and-prejudice")
	ctx := context.Background()

	_, err := f.service.Update(ctx, jane.ID, &sec.AuthClaims{UserID: uuid.New(), Username: "joe@mail.com"},
		&author.Patch{Name: pointer.To("Mallory")})
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))

	updated, err := f.service.Update(ctx, jane.ID, &sec.AuthClaims{UserID: jane.ID, Username: jane.User},
		&author.Patch{Country: pointer.To("United Kingdom")})
	require.NoError(t, err)
	assert.Equal(t, "United Kingdom", updated.Country)
	assert.Equal(t, "Jane Austen", updated.Name)

	updated, err = f.service.Update(ctx, jane.ID, &sec.AuthClaims{UserID: uuid.New(), Username: "admin@gmail.com"},
		&author.Patch{Name: pointer.To("J. Austen")})
	require.NoError(t, err)
	assert.Equal(t, "J. Austen", updated.Name)
}

func TestUpdate_PasswordIsRehashed(t *testing.T) {
	f := newFixture(t)
	jane := f.register(t, "jane@mail.com", "pride-and-prejudice")
	ctx := context.Background()
	owner := &sec.AuthClaims{UserID: jane.ID, Username: jane.User}

	_, err := f.service.Update(ctx, jane.ID, owner, &author.Patch{Password: pointer.To("emma-woodhouse")})
	require.NoError(t, err)

	_, err = f.service.Login(ctx, author.Credentials{User: "jane@mail.com", Password: "pride-and-prejudice"})
	assert.ErrorIs(t, err, author.ErrInvalidCredentials)

	_, err = f.service.Login(ctx, author.Credentials{User: "jane@mail.com", Password: "emma-woodhouse"})
	assert.NoError(t, err)
}

func TestDelete_Guard(t *testing.T) {
	f := newFixture(t)
	jane := f.register(t, "jane@mail.com", "pride-and-prejudice")
	ctx := context.Background()

	_, err := f.service.Delete(ctx, jane.ID, nil)
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))

	deleted, err := f.service.Delete(ctx, jane.ID, &sec.AuthClaims{UserID: jane.ID})
	require.NoError(t, err)
	assert.Equal(t, jane.ID, deleted.ID)
	assert.Zero(t, f.store.Len())
}

func TestCreate_ServerAssignedFieldsRejected(t *testing.T) {
	tests := []struct {
		name   string
		author author.Author
		fields []string
	}{
		{"id_without_password", author.Author{ID: "client-supplied", User: "jane@mail.com", Name: "Jane Austen"}, []string{"id"}},
		{"id_with_password", author.Author{ID: uuid.New(), User: "jane@mail.com", Password: "pride-and-prejudice", Name: "Jane Austen"}, []string{"id"}},
		{"timestamps", author.Author{User: "jane@mail.com", Password: "pride-and-prejudice", Name: "Jane Austen", CreatedAt: time.Now(), UpdatedAt: time.Now()}, []string{"createdAt", "updatedAt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.service.Create(context.Background(), &tt.author)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, apperr.CodeValidation, appError.Code)

			fields := make([]string, 0, len(appError.Details))
			for _, detail := range appError.Details {
				fields = append(fields, detail.Field)
			}
			assert.Equal(t, tt.fields, fields)
			assert.Zero(t, f.store.Len())
		})
	}
}

func TestDelete_RunsDeleteHooks(t *testing.T) {
	store := newMemoryStore()
	tokens, err := sec.NewTokenService("test-secret", "library-api", time.Hour)
	require.NoError(t, err)

	var events []string
	recording := func(ctx context.Context, authorID string) (func(context.Context), error) {
		events = append(events, "before:"+authorID)
		return func(context.Context) { events = append(events, "after:"+authorID) }, nil
	}
	failing := func(context.Context, string) (func(context.Context), error) {
		return nil, errors.New("connection reset")
	}

	service, err := author.NewService(store, store, tokens, sec.NewAccessPolicy("admin@gmail.com"), recording)
	require.NoError(t, err)
	ctx := context.Background()

	jane, err := service.Create(ctx, &author.Author{User: "jane@mail.com", Password: "pride-and-prejudice", Name: "Jane Austen"})
	require.NoError(t, err)

	_, err = service.Delete(ctx, jane.ID, &sec.AuthClaims{UserID: jane.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"before:" + jane.ID, "after:" + jane.ID}, events)

	blocked, err := author.NewService(store, store, tokens, sec.NewAccessPolicy("admin@gmail.com"), recording, failing)
	require.NoError(t, err)

	emma, err := blocked.Create(ctx, &author.Author{User: "emma@mail.com", Password: "pride-and-prejudice", Name: "Emma Woodhouse"})
	require.NoError(t, err)

	events = nil
	_, err = blocked.Delete(ctx, emma.ID, &sec.AuthClaims{UserID: emma.ID})
	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
	assert.Equal(t, []string{"before:" + emma.ID}, events)
	assert.Equal(t, 1, store.Len())
}
