// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"maps"
	"slices"
)

// CredentialStore verifies a username/password pair against a fixed table.
type CredentialStore interface {
	Verify(username, password string) bool
}

// staticCredentialStore is an immutable in-memory username → password
// table. It is safe for concurrent use.
type staticCredentialStore struct {
	credentials map[string]string
	matcher     PasswordMatcher

	// decoy is matched against for unknown usernames so both failure paths
	// cost the same.
	decoy string
}

// NewCredentialStore copies credentials into a new store that compares
// passwords with matcher.
func NewCredentialStore(credentials map[string]string, matcher PasswordMatcher) CredentialStore {
	s := &staticCredentialStore{
		credentials: maps.Clone(credentials),
		matcher:     matcher,
	}
	if s.credentials == nil {
		s.credentials = map[string]string{}
	}

	if keys := slices.Sorted(maps.Keys(s.credentials)); len(keys) > 0 {
		s.decoy = s.credentials[keys[0]]
	}

	return s
}

// Verify fails closed: empty input, unknown usernames and any non-exact
// password match all return false.
func (s *staticCredentialStore) Verify(username, password string) bool {
	if username == "" || password == "" {
		return false
	}

	stored, ok := s.credentials[username]
	if !ok {
		s.matcher.Match(s.decoy, password)
		return false
	}

	return s.matcher.Match(stored, password)
}
