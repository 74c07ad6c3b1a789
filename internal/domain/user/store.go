package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("user not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) ListAll(ctx context.Context) ([]User, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, firstname, lastname, username, email, role, status, created_at, updated_at
    FROM users
    ORDER BY created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Firstname, &u.Lastname, &u.Username, &u.Email, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *Store) GetOne(ctx context.Context, id int64) (User, error) {
	var u User
	err := s.DB.QueryRow(ctx, `
    SELECT id, firstname, lastname, username, email, role, status, created_at, updated_at
    FROM users
    WHERE id = $1
  `, id).Scan(&u.ID, &u.Firstname, &u.Lastname, &u.Username, &u.Email, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return u, err
}

func (s *Store) FindByUsername(ctx context.Context, username string) (Credential, error) {
	var c Credential
	err := s.DB.QueryRow(ctx, `
    SELECT id, firstname, lastname, username, password, email, role, status, created_at, updated_at
    FROM users
    WHERE username = $1
  `, username).Scan(&c.User.ID, &c.User.Firstname, &c.User.Lastname, &c.User.Username, &c.PasswordHash,
		&c.User.Email, &c.User.Role, &c.User.Status, &c.User.CreatedAt, &c.User.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Credential{}, ErrNotFound
	}
	return c, err
}

func (s *Store) Create(ctx context.Context, input Input, passwordHash string) (User, error) {
	var u User
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (firstname, lastname, username, password, email, role, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id, firstname, lastname, username, email, role, status, created_at, updated_at
  `, input.Firstname, input.Lastname, input.Username, passwordHash, input.Email, input.Role, input.Status,
	).Scan(&u.ID, &u.Firstname, &u.Lastname, &u.Username, &u.Email, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Update writes the profile fields; the password changes only when a new
// hash is supplied.
func (s *Store) Update(ctx context.Context, id int64, input Input, passwordHash string) error {
	var tag pgconn.CommandTag
	var err error
	if passwordHash != "" {
		tag, err = s.DB.Exec(ctx, `
      UPDATE users
      SET firstname = $1, lastname = $2, username = $3, password = $4, email = $5, role = $6, status = $7, updated_at = now()
      WHERE id = $8
    `, input.Firstname, input.Lastname, input.Username, passwordHash, input.Email, input.Role, input.Status, id)
	} else {
		tag, err = s.DB.Exec(ctx, `
      UPDATE users
      SET firstname = $1, lastname = $2, username = $3, email = $4, role = $5, status = $6, updated_at = now()
      WHERE id = $7
    `, input.Firstname, input.Lastname, input.Username, input.Email, input.Role, input.Status, id)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
