package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/cloudybookclub/catalog-service/internal/errs"
	"github.com/cloudybookclub/catalog-service/internal/model"
)

type UserRepository interface {
	FindByAuthID(ctx context.Context, serviceID, provider string) ([]model.User, error)
	Insert(ctx context.Context, user model.User) (model.User, error)
	UpdateUserRoles(ctx context.Context, roles model.ClientRoles) (int64, error)
	Delete(ctx context.Context, id string) error
}

// RolesFor computes the full replacement role list for a role update.
// Ordering is a contract: ROLE_ADMIN always precedes ROLE_EDITOR.
func RolesFor(cr model.ClientRoles) []model.Role {
	roles := make([]model.Role, 0, 2)
	if cr.Admin {
		roles = append(roles, model.RoleAdmin)
	}
	if cr.Editor {
		roles = append(roles, model.RoleEditor)
	}
	return roles
}

type userRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewUserRepository(db *mongo.Database, log *zap.Logger) *userRepository {
	return &userRepository{
		col: db.Collection(UsersCollection),
		log: log.Named("user-repo"),
	}
}

// FindByAuthID returns every user matching the external identity. Uniqueness
// of (authenticationServiceId, authProvider) is application discipline, not a
// constraint here, so zero or many results are both possible.
func (r *userRepository) FindByAuthID(ctx context.Context, serviceID, provider string) ([]model.User, error) {
	cur, err := r.col.Find(ctx, bson.M{
		"authenticationServiceId": serviceID,
		"authProvider":            provider,
	})
	if err != nil {
		return nil, errors.Wrap(err, "find users")
	}
	users := make([]model.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "decode users")
	}
	return users, nil
}

func (r *userRepository) Insert(ctx context.Context, user model.User) (model.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.FirstLogon.IsZero() {
		user.FirstLogon = time.Now().UTC()
	}
	if user.Roles == nil {
		user.Roles = []model.Role{}
	}
	if _, err := r.col.InsertOne(ctx, user); err != nil {
		return model.User{}, errors.Wrap(err, "insert user")
	}
	return user, nil
}

// UpdateUserRoles replaces the target user's role list and reports how many
// records matched. An unknown id is a 0-count no-op, not an error.
func (r *userRepository) UpdateUserRoles(ctx context.Context, roles model.ClientRoles) (int64, error) {
	res, err := r.col.UpdateByID(ctx, roles.ID, bson.M{
		"$set": bson.M{"roles": RolesFor(roles)},
	})
	if err != nil {
		r.log.Error("update user roles", zap.String("id", roles.ID), zap.Error(err))
		return 0, errors.Wrap(err, "update user roles")
	}
	return res.MatchedCount, nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "delete user")
	}
	if res.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}
