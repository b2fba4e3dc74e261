package preprod

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/cloudybookclub/catalog-service/config"
	"github.com/cloudybookclub/catalog-service/internal/repository"
)

// autoLogonID marks the development auto-login user in the users fixture.
// That record only gets loaded when the config explicitly allows it.
const autoLogonID = "Dummy12345678"

// allowedProfiles is the fail-safe gate: seeding never runs outside these
// environments regardless of the reload flag.
var allowedProfiles = []string{"dev", "dev-no-auth", "ci", "container-demo"}

// DataLoader truncates and repopulates the book and user collections from
// newline-delimited JSON fixtures. It runs once at startup, before the
// service takes traffic; it is not safe against concurrent writers.
type DataLoader struct {
	store repository.Store
	cfg   config.Preprod
	log   *zap.Logger
}

func NewDataLoader(store repository.Store, cfg config.Preprod, log *zap.Logger) *DataLoader {
	return &DataLoader{
		store: store,
		cfg:   cfg,
		log:   log.Named("dataloader"),
	}
}

// Run loads books first, then users. A read or parse failure aborts the rest
// of the load and surfaces as a startup failure; there is no transaction
// spanning the two phases.
func (d *DataLoader) Run(ctx context.Context) error {
	if !profileAllowed(d.cfg.Profile) {
		d.log.Info("development data not reloaded: profile not in allow list",
			zap.String("profile", d.cfg.Profile))
		return nil
	}
	if !d.cfg.ReloadData {
		d.log.Info("development data not reloaded due to config settings")
		return nil
	}

	d.log.Warn("reloading development data: existing book and user collections will be dropped",
		zap.String("profile", d.cfg.Profile))

	if err := d.loadBooks(ctx); err != nil {
		return err
	}
	return d.loadUsers(ctx)
}

func profileAllowed(profile string) bool {
	for _, p := range allowedProfiles {
		if p == profile {
			return true
		}
	}
	return false
}

func (d *DataLoader) loadBooks(ctx context.Context) error {
	f, err := os.Open(d.cfg.BooksFile)
	if err != nil {
		return errors.Wrap(err, "open books fixture")
	}
	defer f.Close()

	// The collection is only cleared once the fixture file is known to exist.
	d.log.Info("clearing books collection and loading development data")
	if err := d.store.DropCollection(ctx, repository.BooksCollection); err != nil {
		return err
	}

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var doc bson.D
		if err := bson.UnmarshalExtJSON(scanner.Bytes(), false, &doc); err != nil {
			return errors.Wrapf(err, "parse books fixture line %d", count+1)
		}
		if err := d.store.InsertDocument(ctx, repository.BooksCollection, doc); err != nil {
			return err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read books fixture")
	}

	d.log.Info("loaded books", zap.Int("count", count))
	return nil
}

func (d *DataLoader) loadUsers(ctx context.Context) error {
	f, err := os.Open(d.cfg.UsersFile)
	if err != nil {
		return errors.Wrap(err, "open users fixture")
	}
	defer f.Close()

	d.log.Info("clearing users collection and loading development data")
	if err := d.store.DropCollection(ctx, repository.UsersCollection); err != nil {
		return err
	}

	count := 0
	line := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line++
		var doc bson.M
		if err := bson.UnmarshalExtJSON(scanner.Bytes(), false, &doc); err != nil {
			return errors.Wrapf(err, "parse users fixture line %d", line)
		}

		serviceID, _ := doc["authenticationServiceId"].(string)
		if strings.Contains(serviceID, autoLogonID) && !d.cfg.AutoAuthUser {
			d.log.Info("skipping auto logon user: not enabled in config")
			continue
		}

		if err := d.store.InsertDocument(ctx, repository.UsersCollection, doc); err != nil {
			return err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read users fixture")
	}

	d.log.Info("loaded users", zap.Int("count", count))
	return nil
}
