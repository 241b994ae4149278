package main

import (
	"roomcast/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRows(t *testing.T) {
	req := require.New(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	soon := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	snapshot := domain.NewMuteSnapshot("walter")
	snapshot.IsAdmin = true
	snapshot.PersonalMutes["zoe"] = domain.MuteRecord{TargetID: "zoe", MutedBy: "walter", MutedAt: now}
	snapshot.PersonalMutes["bob"] = domain.MuteRecord{TargetID: "bob", MutedBy: "walter", MutedAt: now, ExpiresAt: &soon}
	snapshot.ChannelMutes[domain.ChannelGlobal] = domain.ChannelMuteRecord{Channel: domain.ChannelGlobal, MutedAt: now, ExpiresAt: &past}

	res := rows(snapshot, now, false)

	req.Len(res, 4)
	req.Equal("ADMIN", res[0][1])
	// Personal mutes are sorted by target
	req.Equal("bob", res[1][2])
	req.Equal("2024-01-01 12:01:00 (in 1m0s)", res[1][5])
	req.Equal("permanent", res[2][5])
	req.Equal("expired 2024-01-01 11:59:00", res[3][5])
}
