package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"mindwork/internal/database"
	"mindwork/internal/model"
)

// uniqueViolation is the postgres error code for unique constraint breaks.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db *database.Database
}

func NewPostgresRepository(db *database.Database) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateOrganization(ctx context.Context, params CreateOrganizationParams) (model.Organization, error) {
	organization := model.Organization{
		ID:        uuid.New(),
		Name:      params.Name,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := r.db.Pool.Exec(ctx, `INSERT INTO tbl_organization (id, name, created_at) VALUES ($1, $2, $3)`,
		organization.ID, organization.Name, organization.CreatedAt); err != nil {
		return organization, fmt.Errorf("repository: failed to insert organization (name=%s): %w", organization.Name, err)
	}
	return organization, nil
}

func (r *PostgresRepository) ListOrganizations(ctx context.Context) ([]model.Organization, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT id, name, created_at FROM tbl_organization ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list organizations: %w", err)
	}
	defer rows.Close()

	var organizations []model.Organization
	for rows.Next() {
		var organization model.Organization
		if err := rows.Scan(&organization.ID, &organization.Name, &organization.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan organization: %w", err)
		}
		organizations = append(organizations, organization)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: failed to iterate organizations: %w", err)
	}

	return organizations, nil
}

func (r *PostgresRepository) GetOrganizationByID(ctx context.Context, id uuid.UUID) (model.Organization, error) {
	var organization model.Organization

	err := r.db.Pool.QueryRow(ctx, `SELECT id, name, created_at FROM tbl_organization WHERE id = $1`, id).
		Scan(&organization.ID, &organization.Name, &organization.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization, ErrOrganizationNotFound
		}
		return organization, fmt.Errorf("repository: failed to scan organization: %w", err)
	}
	return organization, nil
}

func (r *PostgresRepository) GetOrganizationByName(ctx context.Context, name string) (model.Organization, error) {
	var organization model.Organization

	err := r.db.Pool.QueryRow(ctx, `SELECT id, name, created_at FROM tbl_organization WHERE name = $1`, name).
		Scan(&organization.ID, &organization.Name, &organization.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization, ErrOrganizationNotFound
		}
		return organization, fmt.Errorf("repository: failed to scan organization: %w", err)
	}
	return organization, nil
}

func (r *PostgresRepository) UpdateOrganization(ctx context.Context, id uuid.UUID, params UpdateOrganizationParams) error {
	tag, err := r.db.Pool.Exec(ctx, `UPDATE tbl_organization SET name = $1 WHERE id = $2`, params.Name, id)
	if err != nil {
		return fmt.Errorf("repository: failed to update organization (id=%s): %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrganizationNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteOrganization(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM tbl_organization WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete organization (id=%s): %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrganizationNotFound
	}
	return nil
}

func (r *PostgresRepository) OrganizationExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tbl_organization WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repository: failed to check organization existence (id=%s): %w", id, err)
	}
	return exists, nil
}

func (r *PostgresRepository) CountUsersByOrganization(ctx context.Context, organizationID uuid.UUID) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM tbl_user WHERE organization_id = $1`, organizationID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to count users (organization_id=%s): %w", organizationID, err)
	}
	return count, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, params CreateUserParams) (model.User, error) {
	user := model.User{
		ID:             uuid.New(),
		Name:           params.Name,
		Email:          params.Email,
		PasswordHash:   params.PasswordHash,
		Role:           params.Role,
		OrganizationID: params.OrganizationID,
		CreatedAt:      time.Now().UTC(),
	}

	if _, err := r.db.Pool.Exec(ctx, `INSERT INTO tbl_user (id, name, email, password_hash, role, organization_id, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Name, user.Email, user.PasswordHash, string(user.Role), user.OrganizationID, user.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return user, ErrDuplicateEmail
		}
		return user, fmt.Errorf("repository: failed to insert user (email=%s): %w", user.Email, err)
	}
	return user, nil
}

func (r *PostgresRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT id, name, email, password_hash, role, organization_id, created_at FROM tbl_user ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *PostgresRepository) ListUsersByOrganization(ctx context.Context, organizationID uuid.UUID) ([]model.User, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT id, name, email, password_hash, role, organization_id, created_at FROM tbl_user WHERE organization_id = $1 ORDER BY created_at DESC`, organizationID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list users (organization_id=%s): %w", organizationID, err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func scanUsers(rows pgx.Rows) ([]model.User, error) {
	var users []model.User
	for rows.Next() {
		var user model.User
		var role string
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &role, &user.OrganizationID, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan user: %w", err)
		}
		parsed, err := model.ParseRole(role)
		if err != nil {
			return nil, fmt.Errorf("repository: stored role is invalid: %w", err)
		}
		user.Role = parsed
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: failed to iterate users: %w", err)
	}

	return users, nil
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	return r.getUser(ctx, `SELECT id, name, email, password_hash, role, organization_id, created_at FROM tbl_user WHERE id = $1`, id)
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getUser(ctx, `SELECT id, name, email, password_hash, role, organization_id, created_at FROM tbl_user WHERE email = $1`, email)
}

func (r *PostgresRepository) getUser(ctx context.Context, query string, arg any) (model.User, error) {
	var user model.User
	var role string

	err := r.db.Pool.QueryRow(ctx, query, arg).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &role, &user.OrganizationID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, ErrUserNotFound
		}
		return user, fmt.Errorf("repository: failed to scan user: %w", err)
	}

	parsed, err := model.ParseRole(role)
	if err != nil {
		return user, fmt.Errorf("repository: stored role is invalid: %w", err)
	}
	user.Role = parsed
	return user, nil
}

func (r *PostgresRepository) UpdateUser(ctx context.Context, id uuid.UUID, params UpdateUserParams) error {
	tag, err := r.db.Pool.Exec(ctx, `UPDATE tbl_user SET name = $1, email = $2, password_hash = $3, role = $4, organization_id = $5 WHERE id = $6`,
		params.Name, params.Email, params.PasswordHash, string(params.Role), params.OrganizationID, id)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("repository: failed to update user (id=%s): %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM tbl_user WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete user (id=%s): %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *PostgresRepository) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tbl_user WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repository: failed to check user existence (id=%s): %w", id, err)
	}
	return exists, nil
}

func (r *PostgresRepository) CreateMoodEntry(ctx context.Context, params CreateMoodEntryParams) (model.MoodEntry, error) {
	entry := model.MoodEntry{
		ID:                uuid.New(),
		UserID:            params.UserID,
		Mood:              params.Mood,
		StressLevel:       params.StressLevel,
		SleepHours:        params.SleepHours,
		ScreenTimeMinutes: params.ScreenTimeMinutes,
		Notes:             params.Notes,
		Source:            params.Source,
		Confidence:        params.Confidence,
		CreatedAt:         time.Now().UTC(),
	}

	if _, err := r.db.Pool.Exec(ctx, `INSERT INTO tbl_mood_entry (id, user_id, mood, stress_level, sleep_hours, screen_time_minutes, notes, source, confidence, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		entry.ID, entry.UserID, string(entry.Mood), entry.StressLevel, entry.SleepHours, entry.ScreenTimeMinutes, entry.Notes, string(entry.Source), entry.Confidence, entry.CreatedAt); err != nil {
		return entry, fmt.Errorf("repository: failed to insert mood entry (user_id=%s): %w", entry.UserID, err)
	}
	return entry, nil
}

const moodEntryColumns = `id, user_id, mood, stress_level, sleep_hours, screen_time_minutes, notes, source, confidence, created_at`

func (r *PostgresRepository) ListMoodEntries(ctx context.Context) ([]model.MoodEntry, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+moodEntryColumns+` FROM tbl_mood_entry ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list mood entries: %w", err)
	}
	defer rows.Close()

	return scanMoodEntries(rows)
}

func (r *PostgresRepository) ListMoodEntriesByUser(ctx context.Context, userID uuid.UUID) ([]model.MoodEntry, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+moodEntryColumns+` FROM tbl_mood_entry WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list mood entries (user_id=%s): %w", userID, err)
	}
	defer rows.Close()

	return scanMoodEntries(rows)
}

func (r *PostgresRepository) ListMoodEntriesByOrganization(ctx context.Context, organizationID uuid.UUID) ([]model.MoodEntry, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT m.id, m.user_id, m.mood, m.stress_level, m.sleep_hours, m.screen_time_minutes, m.notes, m.source, m.confidence, m.created_at
		FROM tbl_mood_entry m
		JOIN tbl_user u ON u.id = m.user_id
		WHERE u.organization_id = $1
		ORDER BY m.created_at DESC`, organizationID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list mood entries (organization_id=%s): %w", organizationID, err)
	}
	defer rows.Close()

	return scanMoodEntries(rows)
}

func scanMoodEntries(rows pgx.Rows) ([]model.MoodEntry, error) {
	var entries []model.MoodEntry
	for rows.Next() {
		entry, err := scanMoodEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: failed to iterate mood entries: %w", err)
	}

	return entries, nil
}

func scanMoodEntry(row pgx.Row) (model.MoodEntry, error) {
	var entry model.MoodEntry
	var mood, source string

	if err := row.Scan(&entry.ID, &entry.UserID, &mood, &entry.StressLevel, &entry.SleepHours,
		&entry.ScreenTimeMinutes, &entry.Notes, &source, &entry.Confidence, &entry.CreatedAt); err != nil {
		return entry, err
	}

	parsedMood, err := model.ParseMoodState(mood)
	if err != nil {
		return entry, fmt.Errorf("repository: stored mood is invalid: %w", err)
	}
	entry.Mood = parsedMood

	parsedSource, err := model.ParseDataSource(source)
	if err != nil {
		return entry, fmt.Errorf("repository: stored data source is invalid: %w", err)
	}
	entry.Source = parsedSource

	return entry, nil
}

func (r *PostgresRepository) GetMoodEntryByID(ctx context.Context, id uuid.UUID) (model.MoodEntry, error) {
	row := r.db.Pool.QueryRow(ctx, `SELECT `+moodEntryColumns+` FROM tbl_mood_entry WHERE id = $1`, id)

	entry, err := scanMoodEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entry, ErrMoodEntryNotFound
		}
		return entry, fmt.Errorf("repository: failed to scan mood entry: %w", err)
	}
	return entry, nil
}

// WithAdvisoryLock runs fn while holding a session-level postgres advisory
// lock, serializing callers across instances.
func (r *PostgresRepository) WithAdvisoryLock(ctx context.Context, key int64, fn func(ctx context.Context) error) error {
	conn, err := r.db.Pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock($1)`, key); err != nil {
		return fmt.Errorf("repository: failed to acquire advisory lock: %w", err)
	}
	defer func() {
		_, _ = conn.Exec(ctx, `SELECT pg_advisory_unlock($1)`, key)
	}()

	return fn(ctx)
}

func (r *PostgresRepository) HealthCheck(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
