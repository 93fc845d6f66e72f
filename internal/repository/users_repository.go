package repository

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/steppulse/steppulse/internal/error_values"
	"github.com/steppulse/steppulse/pkg/cleanup"
	"github.com/steppulse/steppulse/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(
		ctx,
		`INSERT INTO users (employee_id, device_id, profile_name, company, device_os, device_model, status, registration_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW());`,
		user.EmployeeID,
		user.DeviceID,
		user.ProfileName,
		user.Company,
		user.DeviceOS,
		user.DeviceModel,
		entity.StatusActive,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// Unique violation: tell the two identity constraints apart
			if pgErr.Code == "23505" {
				if strings.Contains(pgErr.ConstraintName, "device") {
					return errorvalues.ErrDeviceRegistered
				}
				return errorvalues.ErrEmployeeIDTaken
			}
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByDeviceID(ctx context.Context, deviceID string) (*entity.User, error) {
	row := ur.conn.QueryRow(
		ctx,
		`SELECT employee_id, device_id, profile_name, company, device_os, device_model, status, registration_date, created_at, updated_at
		 FROM users WHERE device_id = $1;`,
		deviceID,
	)
	return scanUser(row, "searching user by device id error: ")
}

func (ur *UsersRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*entity.User, error) {
	row := ur.conn.QueryRow(
		ctx,
		`SELECT employee_id, device_id, profile_name, company, device_os, device_model, status, registration_date, created_at, updated_at
		 FROM users WHERE employee_id = $1;`,
		employeeID,
	)
	return scanUser(row, "searching user by employee id error: ")
}

func (ur *UsersRepository) UpdateStatus(ctx context.Context, employeeID string, status entity.UserStatus) error {
	ct, err := ur.conn.Exec(
		ctx,
		`UPDATE users SET status = $1, updated_at = NOW() WHERE employee_id = $2;`,
		status,
		employeeID,
	)
	if err != nil {
		return errors.New("updating user status error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row, errPrefix string) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.EmployeeID,
		&user.DeviceID,
		&user.ProfileName,
		&user.Company,
		&user.DeviceOS,
		&user.DeviceModel,
		&user.Status,
		&user.RegistrationDate,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New(errPrefix + err.Error())
	}
	return &user, nil
}
