// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/strength"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

func writeClipboard(s string) error {
	return clipboard.WriteAll(s)
}

// getForChange loads a credential that is about to be edited or deleted. A
// password that cannot be decrypted is not an error here: the record comes
// back with its other fields and unreadable set.
func (a *App) getForChange(ctx context.Context, id string) (rec models.CredentialRecord, unreadable bool, err error) {
	rec, err = a.credentials.Get(ctx, a.ownerID, id)

	var decodeErr *service.DecodeError
	if errors.As(err, &decodeErr) {
		a.logger.Warn().
			Err(decodeErr.Err).
			Str("func", "App.getForChange").
			Str("credential_id", id).
			Msg("changing a credential with an unreadable password")
		fmt.Fprintln(a.out, tui.Warning(app.MsgPasswordUnreadable))
		return rec, true, nil
	}

	return rec, false, err
}

func (a *App) add(ctx context.Context, args []string) error {
	fs := a.newFlagSet("add")
	platform := fs.String("platform", "", "platform name")
	username := fs.String("username", "", "login on the platform")
	url := fs.String("url", "", "optional link to the platform")
	generate := fs.Bool("generate", false, "generate a random password instead of prompting")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	rec := models.CredentialRecord{
		OwnerID:  a.ownerID,
		Platform: *platform,
		Username: *username,
	}

	var err error
	if rec.Platform == "" {
		if rec.Platform, err = a.prompt.ReadLine("Platform: "); err != nil {
			return err
		}
	}
	if rec.Username == "" {
		if rec.Username, err = a.prompt.ReadLine("Username: "); err != nil {
			return err
		}
	}
	if *generate {
		if rec.Password, err = crypto.GeneratePassword(); err != nil {
			return err
		}
	} else if rec.Password, err = a.prompt.ReadSecret("Password: "); err != nil {
		return err
	}
	if *url != "" {
		rec.URL = url
	} else if rec.URL, err = a.prompt.ReadOptional("URL (optional): "); err != nil {
		return err
	}

	created, err := a.credentials.Create(ctx, rec)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "created %s %s\n", created.ID, tui.StrengthBadge(strength.Classify(created.Password)))
	if *generate {
		fmt.Fprintln(a.out, app.MsgPasswordGenerated)
	}
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := a.newFlagSet("list")
	search := fs.String("search", "", "show only platforms or usernames containing this text")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	list, err := a.credentials.List(ctx, a.ownerID)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, tui.RenderList(service.Search(list, *search)))
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	fs := a.newFlagSet("show")
	copyPassword := fs.Bool("copy", false, "copy the password to the clipboard")
	copyUsername := fs.Bool("copy-username", false, "copy the username to the clipboard")
	reveal := fs.Bool("reveal", false, "print the password")
	id, err := singleID(fs, args)
	if err != nil {
		return err
	}
	if *copyPassword && *copyUsername {
		return fmt.Errorf("%w: -copy and -copy-username are mutually exclusive", ErrUsage)
	}

	rec, err := a.credentials.Get(ctx, a.ownerID, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, tui.RenderDetail(rec, *reveal))

	if *copyPassword {
		if err = a.clipboard(rec.Password); err != nil {
			return fmt.Errorf("error copying password: %w", err)
		}
		fmt.Fprintln(a.out, app.MsgCopiedToClipboard)
	}
	if *copyUsername {
		if err = a.clipboard(rec.Username); err != nil {
			return fmt.Errorf("error copying username: %w", err)
		}
		fmt.Fprintln(a.out, app.MsgUsernameCopiedToClipboard)
	}

	return nil
}

func (a *App) edit(ctx context.Context, args []string) error {
	fs := a.newFlagSet("edit")
	generate := fs.Bool("generate", false, "replace the password with a random one")
	id, err := singleID(fs, args)
	if err != nil {
		return err
	}

	rec, unreadable, err := a.getForChange(ctx, id)
	if err != nil {
		return err
	}

	if rec.Platform, err = a.prompt.ReadDefault("Platform", rec.Platform); err != nil {
		return err
	}
	if rec.Username, err = a.prompt.ReadDefault("Username", rec.Username); err != nil {
		return err
	}

	switch {
	case *generate:
		if rec.Password, err = crypto.GeneratePassword(); err != nil {
			return err
		}
	case unreadable:
		password, err := a.prompt.ReadSecret("New password: ")
		if err != nil {
			return err
		}
		if password == "" {
			return ErrPasswordRequired
		}
		rec.Password = password
	default:
		password, err := a.prompt.ReadSecret("New password (blank keeps current): ")
		if err != nil {
			return err
		}
		if password != "" {
			rec.Password = password
		}
	}

	currentURL := ""
	if rec.URL != nil {
		currentURL = *rec.URL
	}
	url, err := a.prompt.ReadDefault("URL (- clears)", currentURL)
	if err != nil {
		return err
	}
	switch strings.TrimSpace(url) {
	case "", "-":
		rec.URL = nil
	default:
		rec.URL = &url
	}

	if _, err = a.credentials.Update(ctx, rec); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "updated %s %s\n", rec.ID, tui.StrengthBadge(strength.Classify(rec.Password)))
	if *generate {
		fmt.Fprintln(a.out, app.MsgPasswordGenerated)
	}
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := a.newFlagSet("delete")
	yes := fs.Bool("yes", false, "do not ask for confirmation")
	id, err := singleID(fs, args)
	if err != nil {
		return err
	}

	if !*yes {
		rec, _, err := a.getForChange(ctx, id)
		if err != nil {
			return err
		}

		fmt.Fprintln(a.out, tui.RenderConfirm(rec.Platform+" / "+rec.Username))
		answer, err := a.prompt.ReadLine("> ")
		if err != nil {
			return err
		}
		if !tui.IsYes(strings.TrimSpace(answer)) {
			return ErrCancelled
		}
	}

	if err = a.credentials.Delete(ctx, a.ownerID, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "deleted %s\n", id)
	return nil
}

func (a *App) summary(ctx context.Context, args []string) error {
	if err := a.newFlagSet("strength").Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	list, err := a.credentials.List(ctx, a.ownerID)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, tui.RenderSummary(service.Summarize(list)))
	return nil
}

func (a *App) version(_ context.Context, _ []string) error {
	fmt.Fprintln(a.out, tui.RenderBuildInfo(a.build.Version, a.build.Date, a.build.Commit))
	return nil
}
