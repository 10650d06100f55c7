package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vytor/nerdeck/internal/logger"
	"github.com/vytor/nerdeck/internal/models"
	"github.com/vytor/nerdeck/internal/repository"
)

type userRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewUserRepository creates a new UserRepository implementation
func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: wrap(db), now: time.Now}
}

const userColumns = `id, username, api_token, created_at`

func (r *userRepository) Create(ctx context.Context, username, apiToken string) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("creating user: username=%s", username)

	u := models.User{
		Username:  username,
		APIToken:  apiToken,
		CreatedAt: utc(r.now()),
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO users (username, api_token, created_at)
VALUES (?, ?, ?)
`, u.Username, u.APIToken, u.CreatedAt)
	if err != nil {
		log.Error("failed to create user: %v", err)
		return nil, err
	}
	if u.ID, err = res.LastInsertId(); err != nil {
		log.Error("failed to get user id: %v", err)
		return nil, err
	}
	log.Debug("user created: id=%d", u.ID)
	return &u, nil
}

func (r *userRepository) GetByToken(ctx context.Context, apiToken string) (*models.User, error) {
	return r.getBy(ctx, "api_token", apiToken)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *userRepository) getBy(ctx context.Context, column string, value string) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")

	var u models.User
	err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE `+column+` = ?`, value)
	if notFound(err) {
		log.Debug("user not found by %s", column)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get user by %s: %v", column, err)
		return nil, err
	}
	return &u, nil
}
