package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/ologgo/olog"
)

func (a *App) Login(ctx context.Context) error {
	username := a.config.Username
	if username == "" {
		u, err := GetSimpleText(a.reader, "Username", a.out)
		if err != nil {
			return err
		}
		username = u
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	a.client.SetBasicAuth(username, password)
	fmt.Fprintf(a.out, "Credentials set for %s\n", username)
	return nil
}

func (a *App) Info(ctx context.Context) error {
	info, err := a.client.ServiceInfo(ctx)
	if err != nil {
		a.log.Error(ctx, "service info failed", "err", err)
		return err
	}
	for k, v := range info {
		fmt.Fprintf(a.out, "%s: %v\n", k, v)
	}
	return nil
}

func (a *App) Logbooks(ctx context.Context) error {
	lbs, err := a.client.GetLogbooks(ctx)
	if err != nil {
		a.log.Error(ctx, "listing logbooks failed", "err", err)
		return err
	}
	for _, lb := range lbs {
		fmt.Fprintf(a.out, "%s (owner: %s, %s)\n", lb.Name, lb.Owner, lb.State)
	}
	return nil
}

func (a *App) Tags(ctx context.Context) error {
	tags, err := a.client.GetTags(ctx)
	if err != nil {
		a.log.Error(ctx, "listing tags failed", "err", err)
		return err
	}
	for _, t := range tags {
		fmt.Fprintf(a.out, "%s (%s)\n", t.Name, t.State)
	}
	return nil
}

func (a *App) Levels(ctx context.Context) error {
	levels, err := a.client.GetLevels(ctx)
	if err != nil {
		a.log.Error(ctx, "listing levels failed", "err", err)
		return err
	}
	for _, l := range levels {
		if l.DefaultLevel {
			fmt.Fprintf(a.out, "%s (default)\n", l.Name)
		} else {
			fmt.Fprintln(a.out, l.Name)
		}
	}
	return nil
}

func (a *App) NewLog(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	logbooks, err := GetSimpleText(a.reader, "Logbooks (comma-separated)", a.out)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	entry := olog.LogEntry{
		Title:       title,
		Description: description,
		Logbooks:    olog.LogbookNames(splitNames(logbooks)...),
	}

	created, err := a.client.CreateLog(ctx, entry, nil)
	if err != nil {
		a.log.Error(ctx, "creating log entry failed", "err", err)
		return err
	}

	a.log.Info(ctx, "log entry created", "id", created.ID)
	fmt.Fprintf(a.out, "Created entry %d\n", created.ID)
	return nil
}

func (a *App) Show(ctx context.Context) error {
	id, err := a.promptLogID()
	if err != nil {
		return err
	}

	entry, err := a.client.GetLog(ctx, id)
	if err != nil {
		a.log.Error(ctx, "fetching log entry failed", "id", id, "err", err)
		return err
	}

	fmt.Fprintf(a.out, "#%d %s\n%s\n", entry.ID, entry.Title, entry.Description)
	for _, att := range entry.Attachments {
		fmt.Fprintf(a.out, "  attachment: %s (%s)\n", att.Filename, att.ID)
	}
	return nil
}

func (a *App) Search(ctx context.Context) error {
	text, err := GetSimpleText(a.reader, "Search text", a.out)
	if err != nil {
		return err
	}

	res, err := a.client.SearchLogs(ctx, olog.SearchQuery{Text: text, Size: 20})
	if err != nil {
		a.log.Error(ctx, "search failed", "err", err)
		return err
	}

	fmt.Fprintf(a.out, "%d hit(s)\n", res.HitCount)
	for _, entry := range res.Logs {
		fmt.Fprintf(a.out, "#%d %s\n", entry.ID, entry.Title)
	}
	return nil
}

func (a *App) Attach(ctx context.Context) error {
	id, err := a.promptLogID()
	if err != nil {
		return err
	}
	path, err := GetSimpleText(a.reader, "File path", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	entry, err := a.client.UploadAttachment(ctx, id, path, description)
	if err != nil {
		a.log.Error(ctx, "attachment upload failed", "id", id, "path", path, "err", err)
		return err
	}

	a.log.Info(ctx, "attachment uploaded", "id", id, "attachments", len(entry.Attachments))
	fmt.Fprintf(a.out, "Entry %d now has %d attachment(s)\n", entry.ID, len(entry.Attachments))
	return nil
}

func (a *App) Download(ctx context.Context) error {
	id, err := a.promptLogID()
	if err != nil {
		return err
	}
	filename, err := GetSimpleText(a.reader, "Attachment filename", a.out)
	if err != nil {
		return err
	}
	savePath, err := GetSimpleText(a.reader, "Save to (optional)", a.out)
	if err != nil {
		return err
	}

	b, err := a.client.DownloadAttachment(ctx, id, filename, savePath)
	if err != nil {
		a.log.Error(ctx, "attachment download failed", "id", id, "filename", filename, "err", err)
		return err
	}

	fmt.Fprintf(a.out, "Downloaded %d byte(s)\n", len(b))
	return nil
}

func (a *App) promptLogID() (int64, error) {
	s, err := GetSimpleText(a.reader, "Log id", a.out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid log id %q: %w", s, err)
	}
	return id, nil
}

func splitNames(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
