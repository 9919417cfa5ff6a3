package profile_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentdir/internal/credential"
	"studentdir/internal/domain"
	"studentdir/internal/services/profile"
	"studentdir/internal/store"
)

func hasher(t *testing.T) *credential.Bcrypt {
	t.Helper()
	h, err := credential.NewBcrypt(credential.MinCost)
	require.NoError(t, err)
	return h
}

func newService(t *testing.T) (*profile.Service, *store.ProfileFileStore) {
	t.Helper()
	h := hasher(t)
	fs := store.NewProfileFileStore(t.TempDir(), h, nil)
	svc := profile.New(fs, h, nil)
	require.NoError(t, svc.Load())
	return svc, fs
}

func registerAlice(t *testing.T, svc *profile.Service) {
	t.Helper()
	_, err := svc.Register("alice", "pass1234", "pass1234", domain.Fields{FirstName: "Alice"})
	require.NoError(t, err)
}

// flakyStore wraps a store and fails saves on demand.
type flakyStore struct {
	domain.ProfileStore
	fail bool
}

func (f *flakyStore) SaveProfiles(p map[domain.Username]domain.Profile) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.ProfileStore.SaveProfiles(p)
}

func TestRegister_ThenGet(t *testing.T) {
	svc, _ := newService(t)
	registerAlice(t, svc)

	p, err := svc.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.FirstName)
	assert.Equal(t, domain.Username("alice"), p.Username)
	assert.NotEqual(t, "pass1234", p.PasswordHash)
}

func TestRegister_Duplicate(t *testing.T) {
	svc, fs := newService(t)
	registerAlice(t, svc)

	_, err := svc.Register("alice", "other-pass", "other-pass", domain.Fields{FirstName: "Mallory"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 1, svc.Len())

	p, err := svc.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.FirstName)

	onDisk, err := fs.LoadProfiles()
	require.NoError(t, err)
	assert.Len(t, onDisk, 1)
}

func TestRegister_ValidationErrors(t *testing.T) {
	svc, _ := newService(t)
	registerAlice(t, svc)

	cases := []struct {
		name              string
		username          domain.Username
		password, confirm string
		want              error
	}{
		{"empty username", "", "pass1234", "pass1234", domain.ErrEmptyUsername},
		{"space", "bob smith", "pass1234", "pass1234", domain.ErrWhitespaceInUsername},
		{"tab", "bob\tsmith", "pass1234", "pass1234", domain.ErrWhitespaceInUsername},
		{"duplicate wins over bad password", "alice", "x", "y", domain.ErrDuplicateUsername},
		{"mismatch", "bob", "pass1234", "pass1235", domain.ErrPasswordMismatch},
		{"too short", "bob", "abc", "abc", domain.ErrPasswordTooShort},
		{"username checked first", "", "abc", "abc", domain.ErrEmptyUsername},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Register(c.username, c.password, c.confirm, domain.Fields{})
			assert.ErrorIs(t, err, c.want)
			assert.Equal(t, 1, svc.Len())
		})
	}
}

func TestRegister_Uniqueness(t *testing.T) {
	svc, _ := newService(t)

	names := []domain.Username{"a", "b", "a", "c", "b", "a", "d"}
	ok := map[domain.Username]int{}
	for _, n := range names {
		if _, err := svc.Register(n, "pass1234", "pass1234", domain.Fields{}); err == nil {
			ok[n]++
		} else {
			assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
		}
	}
	for n, count := range ok {
		assert.Equal(t, 1, count, "username %s", n)
	}
	assert.Equal(t, 4, svc.Len())
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newService(t)
	registerAlice(t, svc)

	_, err := svc.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrWrongPassword)
	assert.ErrorIs(t, err, domain.ErrAuth)

	_, err = svc.Authenticate("bob", "pass1234")
	assert.ErrorIs(t, err, domain.ErrNoSuchUser)

	for _, pw := range []string{"PASS1234", " pass1234", "pass1234 ", "pass123"} {
		_, err = svc.Authenticate("alice", pw)
		assert.ErrorIs(t, err, domain.ErrWrongPassword, "password %q", pw)
	}
	_, err = svc.Authenticate("Alice", "pass1234")
	assert.ErrorIs(t, err, domain.ErrNoSuchUser)

	p, err := svc.Authenticate("alice", "pass1234")
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.FirstName)
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Get("ghost")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateFields_BlankMeansKeep(t *testing.T) {
	svc, _ := newService(t)
	registerAlice(t, svc)

	_, err := svc.UpdateFields("alice", domain.Fields{Phone: "555-0100"})
	require.NoError(t, err)

	p, err := svc.UpdateFields("alice", domain.Fields{Email: "a@x.com", Phone: ""})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", p.Email)
	assert.Equal(t, "555-0100", p.Phone)
	assert.Equal(t, "Alice", p.FirstName)

	stored, err := svc.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, p, stored)
}

func TestUpdateFields_NeverSetStaysEmpty(t *testing.T) {
	svc, _ := newService(t)
	registerAlice(t, svc)

	p, err := svc.UpdateFields("alice", domain.Fields{Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "", p.Phone)
}

func TestUpdateFields_EmptyIsNoop(t *testing.T) {
	svc, _ := newService(t)
	registerAlice(t, svc)
	before, err := svc.Get("alice")
	require.NoError(t, err)

	after, err := svc.UpdateFields("alice", domain.Fields{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateFields_NotFound(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.UpdateFields("ghost", domain.Fields{Email: "g@x.com"})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.Equal(t, 0, svc.Len())
}

func TestChangePassword(t *testing.T) {
	svc, _ := newService(t)
	registerAlice(t, svc)

	require.NoError(t, svc.ChangePassword("alice", "pass1234", "newpass1", "newpass1"))

	_, err := svc.Authenticate("alice", "pass1234")
	assert.ErrorIs(t, err, domain.ErrWrongPassword)
	_, err = svc.Authenticate("alice", "newpass1")
	assert.NoError(t, err)
}

func TestChangePassword_FailuresLeaveCredential(t *testing.T) {
	svc, _ := newService(t)
	registerAlice(t, svc)
	before, err := svc.Get("alice")
	require.NoError(t, err)

	cases := []struct {
		name               string
		old, next, confirm string
		want               error
	}{
		{"wrong old", "nope", "newpass1", "newpass1", domain.ErrWrongOldPassword},
		{"wrong old checked first", "nope", "a", "b", domain.ErrWrongOldPassword},
		{"mismatch", "pass1234", "newpass1", "newpass2", domain.ErrPasswordMismatch},
		{"too short", "pass1234", "abc", "abc", domain.ErrPasswordTooShort},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := svc.ChangePassword("alice", c.old, c.next, c.confirm)
			assert.ErrorIs(t, err, c.want)

			after, err := svc.Get("alice")
			require.NoError(t, err)
			assert.Equal(t, before.PasswordHash, after.PasswordHash)
			_, err = svc.Authenticate("alice", "pass1234")
			assert.NoError(t, err)
		})
	}

	assert.ErrorIs(t, svc.ChangePassword("ghost", "a", "bbbb", "bbbb"), domain.ErrProfileNotFound)
}

func TestSaveFailure_LeavesStateUnchanged(t *testing.T) {
	h := hasher(t)
	fs := &flakyStore{ProfileStore: store.NewProfileFileStore(t.TempDir(), h, nil)}
	svc := profile.New(fs, h, nil)
	require.NoError(t, svc.Load())
	registerAlice(t, svc)
	before, err := svc.Get("alice")
	require.NoError(t, err)

	fs.fail = true

	_, err = svc.Register("bob", "pass1234", "pass1234", domain.Fields{})
	assert.Error(t, err)
	_, err = svc.Get("bob")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	_, err = svc.UpdateFields("alice", domain.Fields{Email: "a@x.com"})
	assert.Error(t, err)

	err = svc.ChangePassword("alice", "pass1234", "newpass1", "newpass1")
	assert.Error(t, err)

	after, err := svc.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	fs.fail = false
	onDisk, err := fs.LoadProfiles()
	require.NoError(t, err)
	assert.Equal(t, map[domain.Username]domain.Profile{"alice": before}, onDisk)
}

func TestLoad_PersistsAcrossInstances(t *testing.T) {
	h := hasher(t)
	dir := t.TempDir()

	first := profile.New(store.NewProfileFileStore(dir, h, nil), h, nil)
	require.NoError(t, first.Load())
	registerAlice(t, first)
	_, err := first.UpdateFields("alice", domain.Fields{Course: "B.Tech CS"})
	require.NoError(t, err)

	second := profile.New(store.NewProfileFileStore(dir, h, nil), h, nil)
	require.NoError(t, second.Load())
	p, err := second.Authenticate("alice", "pass1234")
	require.NoError(t, err)
	assert.Equal(t, "B.Tech CS", p.Course)
}

func TestLoad_CorruptKeepsDirectory(t *testing.T) {
	h := hasher(t)
	fs := &corruptStore{}
	svc := profile.New(fs, h, nil)

	err := svc.Load()
	assert.ErrorIs(t, err, domain.ErrCorruptStore)
	assert.Equal(t, 0, svc.Len())
}

type corruptStore struct{}

func (corruptStore) LoadProfiles() (map[domain.Username]domain.Profile, error) {
	return nil, &domain.CorruptStoreError{Path: "students.json", Err: fmt.Errorf("bad json")}
}

func (corruptStore) SaveProfiles(map[domain.Username]domain.Profile) error { return nil }

func TestAuthenticate_MaxLengthPasswordMatchesExactly(t *testing.T) {
	svc, _ := newService(t)
	pw := strings.Repeat("a", domain.MaxPasswordBytes)
	_, err := svc.Register("alice", pw, pw, domain.Fields{})
	require.NoError(t, err)

	_, err = svc.Authenticate("alice", pw+"WRONG-SUFFIX")
	assert.ErrorIs(t, err, domain.ErrWrongPassword)

	err = svc.ChangePassword("alice", pw+"zzz", "newpass1", "newpass1")
	assert.ErrorIs(t, err, domain.ErrWrongOldPassword)

	_, err = svc.Authenticate("alice", pw)
	assert.NoError(t, err)
}

func TestSave_ReloadsIntoFreshInstance(t *testing.T) {
	h := hasher(t)
	dir := t.TempDir()

	first := profile.New(store.NewProfileFileStore(dir, h, nil), h, nil)
	require.NoError(t, first.Load())
	registerAlice(t, first)
	_, err := first.Register("bob", "hunter22", "hunter22", domain.Fields{Course: "B.Tech CS"})
	require.NoError(t, err)
	require.NoError(t, first.Save())

	second := profile.New(store.NewProfileFileStore(dir, h, nil), h, nil)
	require.NoError(t, second.Load())
	assert.Equal(t, first.Len(), second.Len())
	for _, name := range []domain.Username{"alice", "bob"} {
		want, err := first.Get(name)
		require.NoError(t, err)
		got, err := second.Get(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
