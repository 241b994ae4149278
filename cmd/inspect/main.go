// Command inspect prints the mute snapshots stored on disk.
//
//	SNAPSHOT_DIR=./data/mutes inspect [player ...]
//
// Without arguments every stored player is listed.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"roomcast/domain"
	"roomcast/storage"
	"slices"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal("Error while reading config: ", err)
	}
	store, err := storage.NewFileSnapshotStore(cfg.SnapshotDir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		log.Fatal("Error while opening snapshot store: ", err)
	}

	ids := lo.Map(os.Args[1:], func(arg string, _ int) domain.PlayerID { return domain.PlayerID(arg) })
	if len(ids) == 0 {
		if ids, err = store.List(); err != nil {
			log.Fatal(err)
		}
	}

	table := newTable(os.Stdout)
	now := time.Now().UTC()
	for _, id := range ids {
		snapshot, err := store.Load(context.Background(), id)
		if err != nil {
			fmt.Printf("Error loading %s: %v\n", id, err)
			continue
		}
		table.AppendBulk(rows(snapshot, now, cfg.Colours))
	}
	table.Render()
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Player", "Kind", "Subject", "By", "Muted At", "Expires", "Reason"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// rows flattens one snapshot; admins get a marker row even without mutes.
func rows(s domain.MuteSnapshot, now time.Time, colours bool) [][]string {
	var res [][]string
	player := string(s.PlayerID)
	if s.IsAdmin {
		res = append(res, []string{player, "ADMIN", "", "", "", "", ""})
	}
	for _, m := range sortedByKey(s.PersonalMutes) {
		res = append(res, []string{player, "PERSONAL", string(m.TargetID), string(m.MutedBy),
			m.MutedAt.Format(time.DateTime), expiry(m.ExpiresAt, now, colours), m.Reason})
	}
	for _, m := range sortedByKey(s.ChannelMutes) {
		res = append(res, []string{player, "CHANNEL", string(m.Channel), player,
			m.MutedAt.Format(time.DateTime), expiry(m.ExpiresAt, now, colours), m.Reason})
	}
	for _, m := range sortedByKey(s.GlobalMutes) {
		res = append(res, []string{player, "GLOBAL", string(m.TargetID), string(m.MutedBy),
			m.MutedAt.Format(time.DateTime), expiry(m.ExpiresAt, now, colours), m.Reason})
	}
	if m := s.GlobalMute; m != nil && m.MutedBy != s.PlayerID {
		res = append(res, []string{player, "GLOBAL (received)", string(m.TargetID), string(m.MutedBy),
			m.MutedAt.Format(time.DateTime), expiry(m.ExpiresAt, now, colours), m.Reason})
	}
	return res
}

func sortedByKey[K ~string, V any](m map[K]V) []V {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return lo.Map(keys, func(k K, _ int) V { return m[k] })
}

func expiry(at *time.Time, now time.Time, colours bool) string {
	var text string
	var style color.Style
	switch {
	case at == nil:
		text, style = "permanent", color.New(color.FgYellow)
	case !now.Before(*at):
		text, style = "expired "+at.Format(time.DateTime), color.New(color.FgRed)
	default:
		text, style = at.Format(time.DateTime)+" (in "+at.Sub(now).Round(time.Second).String()+")",
			color.New(color.FgGreen)
	}
	if !colours {
		return text
	}
	return style.Render(text)
}
