package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	valid := &Identity{AccountID: "65f0a1b2c3d4e5f6a7b8c9d0", Name: "Luigi's Trattoria", ExpiresAt: now.Add(time.Hour).Unix()}

	tests := []struct {
		name    string
		target  string
		ident   *Identity
		now     time.Time
		wantErr bool
	}{
		{
			name:   "valid session for own resource",
			target: valid.AccountID,
			ident:  valid,
			now:    now,
		},
		{
			name:    "no session",
			target:  valid.AccountID,
			ident:   nil,
			now:     now,
			wantErr: true,
		},
		{
			name:    "another owner's resource with a valid session",
			target:  "65f0a1b2c3d4e5f6a7b8c9d1",
			ident:   valid,
			now:     now,
			wantErr: true,
		},
		{
			name:    "empty account id never matches",
			target:  "",
			ident:   &Identity{AccountID: "", ExpiresAt: now.Add(time.Hour).Unix()},
			now:     now,
			wantErr: true,
		},
		{
			name:    "one second past the deadline",
			target:  valid.AccountID,
			ident:   &Identity{AccountID: valid.AccountID, Name: valid.Name, ExpiresAt: now.Unix() - 1},
			now:     now,
			wantErr: true,
		},
		{
			// A record exactly at its deadline is still valid.
			name:   "deadline boundary is inclusive",
			target: valid.AccountID,
			ident:  &Identity{AccountID: valid.AccountID, Name: valid.Name, ExpiresAt: now.Unix()},
			now:    now,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Authorize(tt.target, tt.ident, tt.now)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnauthorized)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, got.OwnerID)
			assert.Equal(t, tt.ident.Name, got.Name)
		})
	}
}

func TestAuthorizeDoesNotMutateIdentity(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	ident := &Identity{AccountID: "abc", Name: "Chez Test", ExpiresAt: now.Unix() + 30}
	before := *ident

	_, err := Authorize("abc", ident, now)
	require.NoError(t, err)
	assert.Equal(t, before, *ident, "Authorize must not extend or alter the session record")

	// A second check later within the window still succeeds off the
	// same unchanged deadline: no sliding renewal.
	_, err = Authorize("abc", ident, now.Add(30*time.Second))
	require.NoError(t, err)
	_, err = Authorize("abc", ident, now.Add(31*time.Second))
	require.ErrorIs(t, err, ErrUnauthorized)
}
