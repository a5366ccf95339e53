package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// UserRegister creates a new account and persists the catalog.
func (r *Runner) UserRegister(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.loadCatalog(); err != nil {
		return err
	}

	user, err := r.service.RegisterUser(cmd.String("username"), cmd.String("email"), cmd.String("password"))
	if err != nil {
		return err
	}
	r.logger.Info("user registered", "id", user.ID, "username", user.Username)

	if cmd.Bool("save") {
		if err := r.saveSnapshot(); err != nil {
			return err
		}
	}

	r.writePlain("✓ Registered %s (%s)\n", user.Username, user.ID)
	return nil
}

// UserLogin verifies credentials against the loaded catalog.
//
// Accounts restored from a snapshot carry the placeholder password, not the
// one they registered with; snapshots never hold real credentials.
func (r *Runner) UserLogin(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.loadCatalog(); err != nil {
		return err
	}

	sess, err := r.login(cmd)
	if err != nil {
		return err
	}

	tier := "free"
	if sess.User.Premium {
		tier = "premium"
	}
	r.writePlain("✓ Logged in as %s (%s)\n", sess.User.Username, tier)
	return nil
}

// UserUpgrade switches the authenticated account to premium.
func (r *Runner) UserUpgrade(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.loadCatalog(); err != nil {
		return err
	}

	sess, err := r.login(cmd)
	if err != nil {
		return err
	}

	sess.User.UpgradeToPremium()
	r.logger.Info("account upgraded", "username", sess.User.Username)

	if cmd.Bool("save") {
		if err := r.saveSnapshot(); err != nil {
			return err
		}
	}

	r.writePlain("✓ %s is now premium\n", sess.User.Username)
	return nil
}
